// internal/words/normalize.go
//
// Text normalization shared by the word-list loader and the game engine.
//
// Normalize folds any user or dictionary text into the canonical form the
// engine compares against:
//   - surrounding whitespace trimmed
//   - upper case
//   - accents stripped ("élève" → "ELEVE")
//
// The result is always NFC and contains no non-spacing marks, so applying
// Normalize twice yields the same string.

package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical upper-case, accent-free form of s.
func Normalize(s string) string {
	// Marks are stripped on both sides of the case mapping: some letters
	// only gain an upper-case form once their accents are gone (ΐ → ι → Ι).
	s = stripMarks(strings.ToUpper(stripMarks(s)))
	return strings.TrimSpace(s)
}

// stripMarks decomposes s, drops non-spacing marks and recomposes.
func stripMarks(s string) string {
	// A transform.Chain is stateful, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// IsAlpha reports whether every rune of s is a letter.
// The empty string is not alphabetic.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
