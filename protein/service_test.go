package protein

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	e := NewCompositionEmbedder(time.Minute)
	entries, err := DefaultReferenceEntries(e)
	require.NoError(t, err)
	s, err := NewService(e, NewReferenceTable(entries), Config{}, nil)
	require.NoError(t, err)
	return s
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	e := NewCompositionEmbedder(0)

	_, err := NewService(nil, NewReferenceTable([]ReferenceEntry{{Label: "x", Vector: []float32{1}}}), Config{}, nil)
	require.Error(t, err)

	var emptyTable *EmptyReferenceTableError
	_, err = NewService(e, NewReferenceTable(nil), Config{}, nil)
	require.ErrorAs(t, err, &emptyTable)
	_, err = NewService(e, nil, Config{}, nil)
	require.ErrorAs(t, err, &emptyTable)
}

func TestServiceLabels(t *testing.T) {
	s := newTestService(t)
	labels := s.Labels()
	require.NotEmpty(t, labels)
	assert.Equal(t, "enzyme", labels[0])
}

func TestAnalyzeFull(t *testing.T) {
	s := newTestService(t)
	seq, err := Validate("MKVLAGEEDTRWHHPSNQCY")
	require.NoError(t, err)

	result, err := s.AnalyzeFull(seq)
	require.NoError(t, err)

	assert.Equal(t, seq, result.Sequence)
	assert.Len(t, result.Hydrophobicity.PerResidue, seq.Len())
	assert.InDelta(t, 1.0, result.Structure.Helix+result.Structure.Sheet+result.Structure.Coil, 1e-9)
	assert.NotEmpty(t, result.Function.Label)
	assert.GreaterOrEqual(t, result.Function.Confidence, 0.0)
	assert.LessOrEqual(t, result.Function.Confidence, 1.0)
	assert.NotEmpty(t, result.Domains)
}

func TestAnalyzeFullDeterministic(t *testing.T) {
	s := newTestService(t)
	seq := Sequence("MKVLAGEEDTRWHHPSNQCY")

	first, err := s.AnalyzeFull(seq)
	require.NoError(t, err)
	second, err := s.AnalyzeFull(seq)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompareIdenticalSequences(t *testing.T) {
	s := newTestService(t)
	seq := Sequence("MKVLAGEEDTRWHHPSNQCY")

	delta, err := s.Compare(seq, seq)
	require.NoError(t, err)

	assert.Zero(t, delta.HydrophobicityDelta)
	assert.Zero(t, delta.StructureDelta.Helix)
	assert.Zero(t, delta.StructureDelta.Sheet)
	assert.Zero(t, delta.StructureDelta.Coil)
	assert.False(t, delta.FunctionChanged)
	assert.Equal(t, delta.OriginalFunction, delta.MutatedFunction)
	assert.Equal(t, delta.OriginalConfidence, delta.MutatedConfidence)
}

func TestCompareDifferentLengths(t *testing.T) {
	s := newTestService(t)

	// Deletion mutation: the sequences differ in length and the
	// comparison must still produce aggregate deltas.
	delta, err := s.Compare("MKVLAGEEDTRWHHPSNQCY", "MKVLAGEEDTRW")
	require.NoError(t, err)

	assert.Len(t, delta.Original.Hydrophobicity.PerResidue, 20)
	assert.Len(t, delta.Mutated.Hydrophobicity.PerResidue, 12)
	assert.InDelta(t, delta.Mutated.Hydrophobicity.Mean-delta.Original.Hydrophobicity.Mean,
		delta.HydrophobicityDelta, 1e-12)
}

func TestCompareDetectsShift(t *testing.T) {
	s := newTestService(t)

	// Hydrophilic original versus strongly hydrophobic mutant.
	delta, err := s.Compare("DDEEKKRRNNQQSS", "IIVVLLFFIIVVLL")
	require.NoError(t, err)

	assert.Greater(t, delta.HydrophobicityDelta, 0.0)
	assert.NotZero(t, delta.StructureDelta.Sheet)
}

func TestServiceConfig(t *testing.T) {
	s := newTestService(t)
	cfg := s.Config()
	assert.Equal(t, 3, cfg.TopK)

	cfg.TopK = 5
	s.UpdateConfig(cfg)
	assert.Equal(t, 5, s.Config().TopK)
}
