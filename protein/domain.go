package protein

var (
	hydrophobicSet = residueSet("VILMFYW")
	polarSet       = residueSet("STNQ")
	chargedSet     = residueSet("DEKR")
)

func residueSet(residues string) map[byte]bool {
	m := make(map[byte]bool, len(residues))
	for i := 0; i < len(residues); i++ {
		m[residues[i]] = true
	}
	return m
}

type motif struct {
	Name        string
	Pattern     string
	Description string
}

// knownMotifs are exact-match signature patterns. A hit scores 95.
var knownMotifs = []motif{
	{
		Name:        "Insulin/IGF/Relaxin",
		Pattern:     "FVNQHLCGSHLVEAL",
		Description: "Hormone involved in glucose regulation",
	},
	{
		Name:        "Transmembrane domain",
		Pattern:     "LLLLLLFFFF",
		Description: "Membrane-spanning region",
	},
	{
		Name:        "DNA-binding motif",
		Pattern:     "KKRRH",
		Description: "DNA-binding motif",
	},
}

const (
	domainWindow         = 10
	hydrophobicWindowMin = 7
	chargedWindowMin     = 5
)

// AnalyzeComposition reports what fraction of residues is
// hydrophobic, polar or charged.
func AnalyzeComposition(seq Sequence) Composition {
	if seq.Len() == 0 {
		return Composition{}
	}
	var hydro, polar, charged int
	for i := 0; i < seq.Len(); i++ {
		switch {
		case hydrophobicSet[seq[i]]:
			hydro++
		case polarSet[seq[i]]:
			polar++
		case chargedSet[seq[i]]:
			charged++
		}
	}
	n := float64(seq.Len())
	return Composition{
		Hydrophobic: float64(hydro) / n,
		Polar:       float64(polar) / n,
		Charged:     float64(charged) / n,
	}
}

// ScanDomains flags candidate functional regions: exact signature
// motifs, hydrophobic stretches (potential transmembrane segments)
// and charged stretches (potential binding sites). When nothing is
// flagged, a whole-sequence composition call is reported instead, so
// the scan never returns an empty result. Coordinates are 1-based
// inclusive.
func ScanDomains(seq Sequence) []DomainHit {
	var hits []DomainHit
	s := seq.String()
	for _, m := range knownMotifs {
		for start := 0; ; {
			idx := indexFrom(s, m.Pattern, start)
			if idx < 0 {
				break
			}
			hits = append(hits, DomainHit{
				Name:        m.Name,
				Start:       idx + 1,
				End:         idx + len(m.Pattern),
				Score:       95.0,
				Description: m.Description,
			})
			start = idx + 1
		}
	}

	hits = append(hits, scanWindows(seq, hydrophobicSet, hydrophobicWindowMin,
		"Transmembrane domain", "Potential membrane-spanning region")...)
	hits = append(hits, scanWindows(seq, chargedSet, chargedWindowMin,
		"Charged domain", "Potential binding or interaction site")...)

	if len(hits) == 0 {
		hits = append(hits, fallbackDomain(seq))
	}
	return hits
}

func indexFrom(s, pattern string, start int) int {
	if start >= len(s) {
		return -1
	}
	for i := start; i+len(pattern) <= len(s); i++ {
		if s[i:i+len(pattern)] == pattern {
			return i
		}
	}
	return -1
}

// scanWindows slides a fixed window over the sequence and merges
// overlapping qualifying windows into maximal regions. The score is
// the fraction of matching residues inside the merged region.
func scanWindows(seq Sequence, set map[byte]bool, minCount int, name, description string) []DomainHit {
	if seq.Len() < domainWindow {
		return nil
	}
	count := 0
	for i := 0; i < domainWindow; i++ {
		if set[seq[i]] {
			count++
		}
	}
	var hits []DomainHit
	regionStart := -1
	regionEnd := 0
	flush := func() {
		if regionStart < 0 {
			return
		}
		matched := 0
		for i := regionStart; i < regionEnd; i++ {
			if set[seq[i]] {
				matched++
			}
		}
		hits = append(hits, DomainHit{
			Name:        name,
			Start:       regionStart + 1,
			End:         regionEnd,
			Score:       100 * float64(matched) / float64(regionEnd-regionStart),
			Description: description,
		})
		regionStart = -1
	}
	for i := 0; ; i++ {
		if count >= minCount {
			if regionStart < 0 {
				regionStart = i
			}
			regionEnd = i + domainWindow
		} else if regionStart >= 0 && i >= regionEnd {
			flush()
		}
		if i+domainWindow >= seq.Len() {
			break
		}
		if set[seq[i]] {
			count--
		}
		if set[seq[i+domainWindow]] {
			count++
		}
	}
	flush()
	return hits
}

func fallbackDomain(seq Sequence) DomainHit {
	comp := AnalyzeComposition(seq)
	hit := DomainHit{Start: 1, End: seq.Len()}
	switch {
	case comp.Hydrophobic > 0.4:
		hit.Name = "Hydrophobic region"
		hit.Score = comp.Hydrophobic * 100
		hit.Description = "Region rich in hydrophobic amino acids"
	case comp.Charged > 0.3:
		hit.Name = "Charged region"
		hit.Score = comp.Charged * 100
		hit.Description = "Region rich in charged amino acids"
	default:
		hit.Name = "Mixed region"
		hit.Score = 50.0
		hit.Description = "Region with mixed amino acid properties"
	}
	return hit
}
