package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fuzzyMatch(confidence float64) Match {
	return Match{
		Confidence: confidence,
		Criteria:   []string{CriterionExactDate, CriterionExactAmount},
		ExactMatch: false,
	}
}

func TestRecommend_NoMatches_Import(t *testing.T) {
	assert.Equal(t, RecommendImport, Recommend(nil))
	assert.Equal(t, "No duplicates found", RecommendationReason(nil))
}

func TestRecommend_ExactMatch_Skip(t *testing.T) {
	matches := []Match{
		{Confidence: 1.0, Criteria: []string{CriterionExternalID}, ExactMatch: true},
	}

	assert.Equal(t, RecommendSkip, Recommend(matches))
	assert.Equal(t, "Exact OFX transaction ID match found", RecommendationReason(matches))
}

func TestRecommend_FuzzyOnly_Review(t *testing.T) {
	// High confidence still means review, never skip
	matches := []Match{fuzzyMatch(0.94)}

	assert.Equal(t, RecommendReview, Recommend(matches))
	assert.Equal(t, "High confidence duplicate detected (94% match)", RecommendationReason(matches))
}

func TestRecommend_OrdinaryConfidence_Review(t *testing.T) {
	matches := []Match{fuzzyMatch(0.7)}

	assert.Equal(t, RecommendReview, Recommend(matches))
	assert.Equal(t, "Potential duplicate detected (70% match)", RecommendationReason(matches))
}

func TestRecommendationReason_UsesHighestConfidence(t *testing.T) {
	matches := []Match{fuzzyMatch(0.65), fuzzyMatch(0.88), fuzzyMatch(0.72)}

	assert.Equal(t, "High confidence duplicate detected (88% match)", RecommendationReason(matches))
}

func TestRecommend_ExactWinsOverFuzzy(t *testing.T) {
	matches := []Match{
		fuzzyMatch(0.94),
		{Confidence: 1.0, Criteria: []string{CriterionExternalID}, ExactMatch: true},
	}

	assert.Equal(t, RecommendSkip, Recommend(matches))
	assert.Equal(t, "Exact OFX transaction ID match found", RecommendationReason(matches))
}
