package protein

import "fmt"

// InvalidSequenceError reports input that is not a valid protein
// sequence: either empty after whitespace stripping, or containing a
// character outside the canonical alphabet. Pos is the 1-based
// position of the first offending character, 0 for empty input.
type InvalidSequenceError struct {
	Char rune
	Pos  int
}

func (e *InvalidSequenceError) Error() string {
	if e.Pos == 0 {
		return "invalid sequence: empty input"
	}
	return fmt.Sprintf("invalid sequence: character %q at position %d is not a canonical amino acid", e.Char, e.Pos)
}

// EmptySequenceError is a defensive guard for analyzers handed a
// zero-length sequence. Validate never produces one, so under normal
// operation this error is unreachable.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "empty sequence"
}

// EmptyReferenceTableError means the reference function table has no
// entries. It is a configuration error surfaced at startup, not a
// per-request condition.
type EmptyReferenceTableError struct{}

func (e *EmptyReferenceTableError) Error() string {
	return "reference function table has no entries"
}
