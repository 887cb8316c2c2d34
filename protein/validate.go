package protein

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var validResidues = func() map[rune]bool {
	m := make(map[rune]bool, len(Alphabet))
	for _, r := range Alphabet {
		m[r] = true
	}
	return m
}()

// NormalizeRaw applies Unicode NFKC normalization, drops all
// whitespace and upper-cases the input. Fullwidth letters pasted from
// documents normalize to their ASCII forms before validation.
func NormalizeRaw(raw string) string {
	normed := norm.NFKC.String(raw)
	normed = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, normed)
	return normed
}

// Validate normalizes raw input and checks every character against the
// 20-letter canonical alphabet. It returns an InvalidSequenceError
// identifying the first offending character and its 1-based position,
// or when the input is empty after stripping.
func Validate(raw string) (Sequence, error) {
	cleaned := NormalizeRaw(raw)
	if cleaned == "" {
		return "", &InvalidSequenceError{}
	}
	pos := 0
	for _, r := range cleaned {
		pos++
		if !validResidues[r] {
			return "", &InvalidSequenceError{Char: r, Pos: pos}
		}
	}
	return Sequence(cleaned), nil
}
