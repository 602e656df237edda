package dedup

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// StringSimilarity returns a normalized similarity between two free-text
// descriptions in [0, 1]. Inputs are lower-cased and trimmed before
// comparing; the score is 1 - distance/maxLen over the normalized runes.
// Empty input on either side scores 0.
func StringSimilarity(a, b string) float64 {
	s1 := normalizeDescription(a)
	s2 := normalizeDescription(b)

	if s1 == "" || s2 == "" {
		return 0
	}
	if s1 == s2 {
		return 1
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	distance := levenshtein.DistanceForStrings(r1, r2, levenshtein.DefaultOptions)

	maxLen := len(r1)
	if len(r2) > maxLen {
		maxLen = len(r2)
	}

	return 1 - float64(distance)/float64(maxLen)
}

func normalizeDescription(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
