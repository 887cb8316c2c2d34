package protein

import "encoding/json"

// Alphabet lists the 20 canonical amino-acid one-letter codes in the
// order used by the frequency histogram.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// Sequence is a validated protein sequence. It is only constructed by
// Validate and never mutated afterwards.
type Sequence string

// Len returns the number of residues.
func (s Sequence) Len() int { return len(s) }

func (s Sequence) String() string { return string(s) }

// HydrophobicityProfile holds per-residue Kyte–Doolittle scores and
// their arithmetic mean. PerResidue always has one entry per residue.
type HydrophobicityProfile struct {
	PerResidue []float64 `json:"perResidue"`
	Mean       float64   `json:"mean"`
}

// StructureComposition gives the predicted secondary-structure
// proportions. The three values sum to 1.
type StructureComposition struct {
	Helix float64 `json:"helix"`
	Sheet float64 `json:"sheet"`
	Coil  float64 `json:"coil"`
}

// FunctionCandidate is one reference function ranked by similarity.
type FunctionCandidate struct {
	Label      string  `json:"label"`
	Similarity float64 `json:"similarity"`
	Rank       int     `json:"rank"`
}

// FunctionPrediction holds all candidates in descending similarity
// order. Label and Confidence repeat the top candidate for callers
// that only want the headline answer.
type FunctionPrediction struct {
	Candidates []FunctionCandidate `json:"candidates"`
	Label      string              `json:"label"`
	Confidence float64             `json:"confidence"`
}

// DomainHit is a region of the sequence flagged by the domain scan.
// Start and End are 1-based inclusive residue positions.
type DomainHit struct {
	Name        string  `json:"name"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// Composition summarizes the fraction of residues that are
// hydrophobic, polar or charged.
type Composition struct {
	Hydrophobic float64 `json:"hydrophobic"`
	Polar       float64 `json:"polar"`
	Charged     float64 `json:"charged"`
}

// AnalysisResult aggregates every prediction for a single sequence.
type AnalysisResult struct {
	Sequence       Sequence              `json:"sequence"`
	Hydrophobicity HydrophobicityProfile `json:"hydrophobicity"`
	Structure      StructureComposition  `json:"structure"`
	Function       FunctionPrediction    `json:"function"`
	Domains        []DomainHit           `json:"domains"`
	Composition    Composition           `json:"composition"`
}

// StructureDelta holds per-class proportion differences
// (mutated minus original).
type StructureDelta struct {
	Helix float64 `json:"helix"`
	Sheet float64 `json:"sheet"`
	Coil  float64 `json:"coil"`
}

// MutationDelta pairs two full analyses with their aggregate-level
// differences. Per-position diffs are deliberately not computed, so
// sequences of different lengths compare cleanly.
type MutationDelta struct {
	Original AnalysisResult `json:"original"`
	Mutated  AnalysisResult `json:"mutated"`

	HydrophobicityDelta float64        `json:"hydrophobicityDelta"`
	StructureDelta      StructureDelta `json:"structureDelta"`

	FunctionChanged    bool    `json:"functionChanged"`
	OriginalFunction   string  `json:"originalFunction"`
	MutatedFunction    string  `json:"mutatedFunction"`
	OriginalConfidence float64 `json:"originalConfidence"`
	MutatedConfidence  float64 `json:"mutatedConfidence"`
}

// Config aggregates runtime settings persisted to config.json.
type Config struct {
	// TopK limits how many function candidates the CLI prints; the
	// engine always ranks the full reference table.
	TopK int `json:"topK"`
	// ReferencePath points at a TOML reference-table file. Empty means
	// the compiled-in default table.
	ReferencePath string `json:"referencePath"`
	// CacheTTLMinutes bounds how long embeddings stay memoized.
	CacheTTLMinutes int `json:"cacheTtlMinutes"`
}

// Clone creates a deep copy of the configuration so callers can mutate safely.
func (c Config) Clone() Config {
	buf, _ := json.Marshal(c)
	var out Config
	_ = json.Unmarshal(buf, &out)
	return out
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.TopK <= 0 {
		c.TopK = 3
	}
	if c.CacheTTLMinutes <= 0 {
		c.CacheTTLMinutes = 30
	}
}
