package dedup

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/predialis/bankimport-backend/internal/infrastructure/storage"
)

// Helpers to build test transactions

func makeIncoming(externalID string, date time.Time, amount float64, desc string) IncomingTransaction {
	return IncomingTransaction{
		ExternalID:  externalID,
		AccountID:   "acc1",
		Date:        date,
		Amount:      decimal.NewFromFloat(amount),
		Description: desc,
	}
}

func makeStored(id, externalID string, date time.Time, amount float64, desc string) *storage.Transaction {
	return &storage.Transaction{
		ID:          id,
		AccountID:   "acc1",
		ExternalID:  externalID,
		Date:        date,
		Amount:      decimal.NewFromFloat(amount),
		Description: desc,
	}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestScore_PerfectMatch(t *testing.T) {
	incoming := makeIncoming("", day(15), 25.50, "Coffee Shop")
	stored := makeStored("tx1", "", day(15), 25.50, "Coffee Shop")

	confidence, criteria := Score(incoming, stored, DefaultConfig())

	assert.InDelta(t, 1.0, confidence, 0.0001)
	assert.ElementsMatch(t, []string{CriterionExactDate, CriterionExactAmount, CriterionExactDescription}, criteria)
}

func TestScore_MonotonicInDateCloseness(t *testing.T) {
	cfg := DefaultConfig()
	incoming := makeIncoming("", day(15), 45.00, "Gas Station")

	var scores []float64
	for _, gap := range []int{0, 1, 2, 3} {
		confidence, _ := Score(incoming, makeStored("tx1", "", day(15+gap), 45.00, "Gas Station"), cfg)
		scores = append(scores, confidence)
	}

	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1], scores[i],
			"confidence must not increase as the date gap grows")
	}
}

func TestScore_OneDayGap(t *testing.T) {
	incoming := makeIncoming("", day(15), 45.00, "Gas Station")
	stored := makeStored("tx1", "", day(14), 45.00, "Gas Station")

	confidence, criteria := Score(incoming, stored, DefaultConfig())

	// 0.3*0.8 + 0.4 + 0.3
	assert.InDelta(t, 0.94, confidence, 0.0001)
	assert.Contains(t, criteria, CriterionSimilarDate)
	assert.NotContains(t, criteria, CriterionExactDate)
}

func TestScore_AmountMagnitudeIgnoresSign(t *testing.T) {
	// Statement encodes a debit as negative, store keeps it positive
	incoming := makeIncoming("", day(15), -25.50, "Coffee Shop")
	stored := makeStored("tx1", "", day(15), 25.50, "Coffee Shop")

	confidence, criteria := Score(incoming, stored, DefaultConfig())

	assert.InDelta(t, 1.0, confidence, 0.0001)
	assert.Contains(t, criteria, CriterionExactAmount)
}

func TestScore_AmountToleranceIsStrict(t *testing.T) {
	cfg := DefaultConfig()
	incoming := makeIncoming("", day(15), 10.00, "Coffee Shop")

	// Diff exactly at the tolerance does not count as equal
	_, criteria := Score(incoming, makeStored("tx1", "", day(15), 10.01, "Coffee Shop"), cfg)
	assert.NotContains(t, criteria, CriterionExactAmount)

	// Diff below the tolerance does
	_, criteria = Score(incoming, makeStored("tx2", "", day(15), 10.005, "Coffee Shop"), cfg)
	assert.Contains(t, criteria, CriterionExactAmount)
}

func TestScore_MissingDescription(t *testing.T) {
	incoming := makeIncoming("", day(15), 25.50, "")
	stored := makeStored("tx1", "", day(15), 25.50, "Coffee Shop")

	confidence, criteria := Score(incoming, stored, DefaultConfig())

	// Date and amount only: 0.3 + 0.4
	assert.InDelta(t, 0.7, confidence, 0.0001)
	assert.ElementsMatch(t, []string{CriterionExactDate, CriterionExactAmount}, criteria)
}

func TestScore_SimilarDescription(t *testing.T) {
	incoming := makeIncoming("", day(15), 4.75, "Starbucks Coffee Purchase")
	stored := makeStored("tx1", "", day(15), 4.75, "Starbucks Coffee Purchas")

	confidence, criteria := Score(incoming, stored, DefaultConfig())

	assert.Greater(t, confidence, 0.9)
	assert.Contains(t, criteria, CriterionExactDescription)
}

func TestScore_BeyondToleranceDateScoresZero(t *testing.T) {
	incoming := makeIncoming("", day(15), 45.00, "Gas Station")
	stored := makeStored("tx1", "", day(20), 45.00, "Gas Station")

	confidence, criteria := Score(incoming, stored, DefaultConfig())

	// Amount and description only: 0.4 + 0.3
	assert.InDelta(t, 0.7, confidence, 0.0001)
	assert.NotContains(t, criteria, CriterionExactDate)
	assert.NotContains(t, criteria, CriterionSimilarDate)
}
