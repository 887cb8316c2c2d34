package protein

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictStructureSumsToOne(t *testing.T) {
	sequences := []Sequence{
		"M",
		"MKVL",
		"ACDEFGHIKLMNPQRSTVWY",
		"GGGGPPPPNNNNSSSS",
		"EEEEAAAAMMMMLLLL",
		"VVVVIIIIFFFFYYYY",
	}
	for _, seq := range sequences {
		comp, err := PredictStructure(seq)
		require.NoError(t, err, "sequence %s", seq)
		sum := comp.Helix + comp.Sheet + comp.Coil
		assert.InDelta(t, 1.0, sum, 1e-9, "sequence %s", seq)
		assert.GreaterOrEqual(t, comp.Helix, 0.0)
		assert.GreaterOrEqual(t, comp.Sheet, 0.0)
		assert.GreaterOrEqual(t, comp.Coil, 0.0)
	}
}

func TestPredictStructureDominantClass(t *testing.T) {
	tests := []struct {
		name string
		seq  Sequence
		pick func(StructureComposition) bool
	}{
		{
			name: "glutamate and alanine favor helix",
			seq:  "EEEEAAAAMMMM",
			pick: func(c StructureComposition) bool { return c.Helix > c.Sheet && c.Helix > c.Coil },
		},
		{
			name: "valine and isoleucine favor sheet",
			seq:  "VVVVIIIIYYYY",
			pick: func(c StructureComposition) bool { return c.Sheet > c.Helix && c.Sheet > c.Coil },
		},
		{
			name: "glycine and proline favor coil",
			seq:  "GGGGPPPPNNNN",
			pick: func(c StructureComposition) bool { return c.Coil > c.Helix && c.Coil > c.Sheet },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			comp, err := PredictStructure(tc.seq)
			require.NoError(t, err)
			assert.True(t, tc.pick(comp), "composition %+v", comp)
		})
	}
}

func TestPredictStructureDeterministic(t *testing.T) {
	seq := Sequence("MKVLAGEEDTRW")
	first, err := PredictStructure(seq)
	require.NoError(t, err)
	second, err := PredictStructure(seq)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPredictStructureEmpty(t *testing.T) {
	_, err := PredictStructure("")
	var empty *EmptySequenceError
	require.ErrorAs(t, err, &empty)
}
