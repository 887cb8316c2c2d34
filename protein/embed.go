package protein

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// EmbedDim is the fixed length of every embedding vector: the
// 20-entry residue frequency histogram plus two derived features
// (length bucket, rescaled mean hydrophobicity).
const EmbedDim = len(Alphabet) + 2

// Embedder converts a validated sequence into a fixed-length feature
// vector. All entries are non-negative, which keeps cosine similarity
// between embeddings inside [0,1].
type Embedder interface {
	Embed(seq Sequence) ([]float32, error)
}

// CompositionEmbedder is the deterministic embedder: a normalized
// residue frequency histogram concatenated with a length-bucket
// feature and the mean Kyte–Doolittle score rescaled to [0,1].
// Embeddings are memoized by sequence hash.
type CompositionEmbedder struct {
	cache *gocache.Cache
}

// NewCompositionEmbedder constructs an embedder whose memoized
// vectors expire after ttl. A non-positive ttl keeps them forever.
func NewCompositionEmbedder(ttl time.Duration) *CompositionEmbedder {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &CompositionEmbedder{
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

// Embed returns the feature vector for seq. Repeated calls with the
// same sequence hit the memoization cache and return an equal vector.
func (e *CompositionEmbedder) Embed(seq Sequence) ([]float32, error) {
	if seq.Len() == 0 {
		return nil, &EmptySequenceError{}
	}
	key := embedKey(seq)
	if v, ok := e.cache.Get(key); ok {
		if vec, ok := v.([]float32); ok {
			return cloneVector(vec), nil
		}
	}
	vec := embedSequence(seq)
	e.cache.Set(key, cloneVector(vec), gocache.DefaultExpiration)
	return vec, nil
}

func embedSequence(seq Sequence) []float32 {
	vec := make([]float32, EmbedDim)
	n := float64(seq.Len())
	for i := 0; i < seq.Len(); i++ {
		vec[residueIndex[seq[i]]] += float32(1 / n)
	}
	vec[len(Alphabet)] = lengthBucket(seq.Len())
	profile, _ := AnalyzeHydrophobicity(seq)
	vec[len(Alphabet)+1] = rescaleHydropathy(profile.Mean)
	return vec
}

var residueIndex = func() map[byte]int {
	m := make(map[byte]int, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = i
	}
	return m
}()

// lengthBucketBounds separates peptides, small proteins, typical
// single-domain proteins and large multi-domain proteins.
var lengthBucketBounds = []int{50, 150, 500, 2000}

func lengthBucket(n int) float32 {
	bucket := len(lengthBucketBounds)
	for i, bound := range lengthBucketBounds {
		if n <= bound {
			bucket = i
			break
		}
	}
	return float32(bucket) / float32(len(lengthBucketBounds))
}

// rescaleHydropathy maps the Kyte–Doolittle range [-4.5, 4.5] onto
// [0,1] so the feature stays non-negative.
func rescaleHydropathy(mean float64) float32 {
	v := (mean + 4.5) / 9.0
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return float32(v)
}

func embedKey(seq Sequence) string {
	h := sha1.Sum([]byte(seq))
	return hex.EncodeToString(h[:])
}

func cloneVector(vec []float32) []float32 {
	out := make([]float32, len(vec))
	copy(out, vec)
	return out
}
