package protein

type propensity struct {
	Helix float64
	Sheet float64
	Coil  float64
}

// chouFasman holds the Chou–Fasman conformational propensities
// (P-alpha, P-beta, P-turn) for each residue. Values above 1 mean the
// residue favors that conformation relative to the database average.
var chouFasman = map[byte]propensity{
	'A': {1.42, 0.83, 0.66},
	'C': {0.70, 1.19, 1.19},
	'D': {1.01, 0.54, 1.46},
	'E': {1.51, 0.37, 0.74},
	'F': {1.13, 1.38, 0.60},
	'G': {0.57, 0.75, 1.56},
	'H': {1.00, 0.87, 0.95},
	'I': {1.08, 1.60, 0.47},
	'K': {1.16, 0.74, 1.01},
	'L': {1.21, 1.30, 0.59},
	'M': {1.45, 1.05, 0.60},
	'N': {0.67, 0.89, 1.56},
	'P': {0.57, 0.55, 1.52},
	'Q': {1.11, 1.10, 0.98},
	'R': {0.98, 0.93, 0.95},
	'S': {0.77, 0.75, 1.43},
	'T': {0.83, 1.19, 0.96},
	'V': {1.06, 1.70, 0.50},
	'W': {1.08, 1.37, 0.96},
	'Y': {0.69, 1.47, 1.14},
}

// PredictStructure accumulates per-residue propensities and normalizes
// the three class sums so the reported proportions add up to 1.
func PredictStructure(seq Sequence) (StructureComposition, error) {
	if seq.Len() == 0 {
		return StructureComposition{}, &EmptySequenceError{}
	}
	var helix, sheet, coil float64
	for i := 0; i < seq.Len(); i++ {
		p := chouFasman[seq[i]]
		helix += p.Helix
		sheet += p.Sheet
		coil += p.Coil
	}
	total := helix + sheet + coil
	if total == 0 {
		// Unreachable with the fixed table, but an all-zero sum must
		// not turn into a division by zero.
		third := 1.0 / 3.0
		return StructureComposition{Helix: third, Sheet: third, Coil: third}, nil
	}
	return StructureComposition{
		Helix: helix / total,
		Sheet: sheet / total,
		Coil:  coil / total,
	}, nil
}
