package protein

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedFixedLength(t *testing.T) {
	e := NewCompositionEmbedder(0)
	for _, seq := range []Sequence{"M", "MKVL", "ACDEFGHIKLMNPQRSTVWYACDEFGHIKLMNPQRSTVWY"} {
		vec, err := e.Embed(seq)
		require.NoError(t, err)
		assert.Len(t, vec, EmbedDim, "sequence %s", seq)
	}
}

func TestEmbedHistogram(t *testing.T) {
	e := NewCompositionEmbedder(0)
	vec, err := e.Embed("AACC")
	require.NoError(t, err)

	assert.InDelta(t, 0.5, float64(vec[residueIndex['A']]), 1e-6)
	assert.InDelta(t, 0.5, float64(vec[residueIndex['C']]), 1e-6)

	var histSum float64
	for i := 0; i < len(Alphabet); i++ {
		assert.GreaterOrEqual(t, vec[i], float32(0))
		histSum += float64(vec[i])
	}
	assert.InDelta(t, 1.0, histSum, 1e-5)
}

func TestEmbedDerivedFeatures(t *testing.T) {
	e := NewCompositionEmbedder(0)

	// All-isoleucine peptide: mean hydropathy 4.5 rescales to 1.
	vec, err := e.Embed("IIII")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, float64(vec[len(Alphabet)+1]), 1e-6)
	assert.Equal(t, float32(0), vec[len(Alphabet)], "short peptide lands in the first length bucket")

	// All-arginine: mean -4.5 rescales to 0.
	vec, err = e.Embed("RRRR")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, float64(vec[len(Alphabet)+1]), 1e-6)
}

func TestLengthBucket(t *testing.T) {
	tests := []struct {
		n    int
		want float32
	}{
		{1, 0},
		{50, 0},
		{51, 0.25},
		{150, 0.25},
		{500, 0.5},
		{2000, 0.75},
		{2001, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, lengthBucket(tc.n), "length %d", tc.n)
	}
}

func TestEmbedDeterministicAndCached(t *testing.T) {
	e := NewCompositionEmbedder(time.Minute)
	seq := Sequence("MKVLAGEEDTRW")

	first, err := e.Embed(seq)
	require.NoError(t, err)
	second, err := e.Embed(seq)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Mutating the returned vector must not poison the cache.
	first[0] = 42
	third, err := e.Embed(seq)
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestEmbedEmpty(t *testing.T) {
	e := NewCompositionEmbedder(0)
	_, err := e.Embed("")
	var empty *EmptySequenceError
	require.ErrorAs(t, err, &empty)
}
