package dedup

import (
	"fmt"
	"math"
)

// Recommend returns the suggested import action for one transaction's
// match set. Only an exact external-id match ever yields skip; fuzzy
// matches always go to review so a human confirms before data is dropped.
func Recommend(matches []Match) Recommendation {
	if len(matches) == 0 {
		return RecommendImport
	}
	for _, m := range matches {
		if m.ExactMatch {
			return RecommendSkip
		}
	}
	return RecommendReview
}

// RecommendationReason returns the human-readable explanation shown next
// to the recommendation in the import preview.
func RecommendationReason(matches []Match) string {
	if len(matches) == 0 {
		return "No duplicates found"
	}

	for _, m := range matches {
		if m.ExactMatch {
			return "Exact OFX transaction ID match found"
		}
	}

	highest := matches[0].Confidence
	for _, m := range matches[1:] {
		if m.Confidence > highest {
			highest = m.Confidence
		}
	}

	pct := int(math.Round(highest * 100))
	if highest >= HighConfidenceThreshold {
		return fmt.Sprintf("High confidence duplicate detected (%d%% match)", pct)
	}
	return fmt.Sprintf("Potential duplicate detected (%d%% match)", pct)
}
