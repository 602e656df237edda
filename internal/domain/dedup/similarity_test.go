package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSimilarity_IdenticalStrings(t *testing.T) {
	assert.Equal(t, 1.0, StringSimilarity("Coffee Shop", "Coffee Shop"))
}

func TestStringSimilarity_NormalizesCaseAndWhitespace(t *testing.T) {
	assert.Equal(t, 1.0, StringSimilarity("  Coffee Shop ", "coffee shop"))
}

func TestStringSimilarity_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, StringSimilarity("", "Coffee Shop"))
	assert.Equal(t, 0.0, StringSimilarity("Coffee Shop", ""))
	assert.Equal(t, 0.0, StringSimilarity("", ""))
	// Whitespace-only normalizes to empty
	assert.Equal(t, 0.0, StringSimilarity("   ", "Coffee Shop"))
}

func TestStringSimilarity_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"Starbucks Coffee Purchase", "Starbucks Coffee"},
		{"Gas Station", "Gas Stn"},
		{"PIX TRANSF JOSE", "TED TRANSF JOSE"},
	}

	for _, p := range pairs {
		assert.Equal(t, StringSimilarity(p[0], p[1]), StringSimilarity(p[1], p[0]),
			"similarity(%q, %q) should be symmetric", p[0], p[1])
	}
}

func TestStringSimilarity_KnownDistance(t *testing.T) {
	// kitten -> sitting: 3 edits over max length 7
	assert.InDelta(t, 1.0-3.0/7.0, StringSimilarity("kitten", "sitting"), 0.0001)
}

func TestStringSimilarity_BoundedToUnitInterval(t *testing.T) {
	sim := StringSimilarity("a", "completely unrelated long description")

	assert.GreaterOrEqual(t, sim, 0.0)
	assert.LessOrEqual(t, sim, 1.0)
}
