package protein

// kyteDoolittle is the Kyte–Doolittle hydropathy scale. Positive
// values are hydrophobic, negative hydrophilic; the scale spans
// -4.5 (Arg) to +4.5 (Ile).
var kyteDoolittle = map[byte]float64{
	'A': 1.8, 'C': 2.5, 'D': -3.5, 'E': -3.5, 'F': 2.8,
	'G': -0.4, 'H': -3.2, 'I': 4.5, 'K': -3.9, 'L': 3.8,
	'M': 1.9, 'N': -3.5, 'P': -1.6, 'Q': -3.5, 'R': -4.5,
	'S': -0.8, 'T': -0.7, 'V': 4.2, 'W': -0.9, 'Y': -1.3,
}

// AnalyzeHydrophobicity scores each residue on the Kyte–Doolittle
// scale and reports the per-residue profile plus its arithmetic mean.
func AnalyzeHydrophobicity(seq Sequence) (HydrophobicityProfile, error) {
	if seq.Len() == 0 {
		return HydrophobicityProfile{}, &EmptySequenceError{}
	}
	scores := make([]float64, seq.Len())
	var sum float64
	for i := 0; i < seq.Len(); i++ {
		v := kyteDoolittle[seq[i]]
		scores[i] = v
		sum += v
	}
	return HydrophobicityProfile{
		PerResidue: scores,
		Mean:       sum / float64(seq.Len()),
	}, nil
}
