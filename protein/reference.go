package protein

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ReferenceEntry pairs a function label with its reference embedding.
type ReferenceEntry struct {
	Label  string
	Vector []float32
}

// ReferenceTable is the read-only set of reference function
// embeddings. It is built once at startup and never mutated, so
// concurrent reads need no locking. Insertion order is preserved and
// breaks similarity ties during ranking.
type ReferenceTable struct {
	entries []ReferenceEntry
}

// NewReferenceTable copies the given entries into an immutable table.
func NewReferenceTable(entries []ReferenceEntry) *ReferenceTable {
	out := make([]ReferenceEntry, len(entries))
	for i, e := range entries {
		out[i] = ReferenceEntry{Label: e.Label, Vector: cloneVector(e.Vector)}
	}
	return &ReferenceTable{entries: out}
}

// Len returns the number of reference functions.
func (t *ReferenceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Labels returns the known function labels in insertion order, for
// display purposes.
func (t *ReferenceTable) Labels() []string {
	if t == nil {
		return nil
	}
	labels := make([]string, len(t.entries))
	for i, e := range t.entries {
		labels[i] = e.Label
	}
	return labels
}

// defaultExemplars are representative sequences per function family.
// The default table embeds them with the same embedder used for
// queries, so a query identical to an exemplar scores cosine 1.
var defaultExemplars = []struct {
	Label    string
	Sequence Sequence
}{
	{"enzyme", "MGSHHGDSAGHSEDTGHKSDGLVHGDSGHSE"},
	{"transport", "MALVILGAVLVTALIAGFAVSLKPGKTLVAG"},
	{"signaling", "MSTYRSPSGRSTYKEDSYTRSGSYRSTPSED"},
	{"membrane", "MLLVFLLIVALFLWLVVFLAILLFVWLIVLF"},
	{"dna-binding", "MKKRRHKRKSGKKRAHEKKRRGKSKKHRRAG"},
}

// DefaultReferenceEntries builds the compiled-in reference table by
// running each exemplar sequence through the provided embedder.
func DefaultReferenceEntries(e Embedder) ([]ReferenceEntry, error) {
	entries := make([]ReferenceEntry, len(defaultExemplars))
	for i, ex := range defaultExemplars {
		vec, err := e.Embed(ex.Sequence)
		if err != nil {
			return nil, fmt.Errorf("embed exemplar %q: %w", ex.Label, err)
		}
		entries[i] = ReferenceEntry{Label: ex.Label, Vector: vec}
	}
	return entries, nil
}

type referenceFile struct {
	Function []struct {
		Label  string    `toml:"label"`
		Vector []float64 `toml:"vector"`
	} `toml:"function"`
}

// LoadReferenceTable reads a TOML reference file of the form
//
//	[[function]]
//	label = "enzyme"
//	vector = [0.8, 0.2, ...]
//
// Entry order in the file fixes the tie-break order during ranking.
func LoadReferenceTable(path string) (*ReferenceTable, error) {
	var file referenceFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode reference table: %w", err)
	}
	if len(file.Function) == 0 {
		return nil, &EmptyReferenceTableError{}
	}
	entries := make([]ReferenceEntry, len(file.Function))
	for i, fn := range file.Function {
		if fn.Label == "" {
			return nil, fmt.Errorf("reference entry %d: missing label", i+1)
		}
		if len(fn.Vector) == 0 {
			return nil, fmt.Errorf("reference entry %q: empty vector", fn.Label)
		}
		vec := make([]float32, len(fn.Vector))
		for j, v := range fn.Vector {
			vec[j] = float32(v)
		}
		entries[i] = ReferenceEntry{Label: fn.Label, Vector: vec}
	}
	return NewReferenceTable(entries), nil
}
