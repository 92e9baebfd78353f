// Package engine implements the in-memory search engine for the storefront
// catalog: text normalization, spelling-variant expansion, multi-field
// relevance scoring with an approximate-similarity fallback, structural
// filtering, ranking, and query suggestions. It holds no state of its own;
// every function operates on a catalog snapshot passed in by the caller.
package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases the input, strips diacritic marks, replaces every
// non-letter/non-digit rune with a space, collapses whitespace runs, and
// trims. Normalize(Normalize(s)) == Normalize(s) for all s.
func Normalize(s string) string {
	s = strings.ToLower(s)

	// Decompose and drop combining marks so "kératine" and "keratine"
	// normalize to the same term.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
