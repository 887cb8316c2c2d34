package protein

import (
	"math"
	"sort"
)

// PredictFunction ranks every reference function by cosine similarity
// to the query embedding. Candidates come back in descending
// similarity order with ties broken by reference-table insertion
// order; the top candidate's similarity, clipped to [0,1], is the
// reported confidence.
func PredictFunction(embedding []float32, table *ReferenceTable) (FunctionPrediction, error) {
	if table.Len() == 0 {
		return FunctionPrediction{}, &EmptyReferenceTableError{}
	}
	candidates := make([]FunctionCandidate, len(table.entries))
	for i, entry := range table.entries {
		candidates[i] = FunctionCandidate{
			Label:      entry.Label,
			Similarity: cosineSimilarity(embedding, entry.Vector),
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})
	for i := range candidates {
		candidates[i].Rank = i + 1
	}
	top := candidates[0]
	return FunctionPrediction{
		Candidates: candidates,
		Label:      top.Label,
		Confidence: clip01(top.Similarity),
	}, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		fa := float64(a[i])
		fb := float64(b[i])
		dot += fa * fb
		na += fa * fa
		nb += fb * fb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
