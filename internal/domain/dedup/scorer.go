package dedup

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/predialis/bankimport-backend/internal/infrastructure/storage"
)

// Scoring weights. They sum to 1.0 so the combined score is already
// normalized.
const (
	dateWeight        = 0.30
	amountWeight      = 0.40
	descriptionWeight = 0.30
)

// Description similarity cutoffs for criteria tags
const (
	exactDescriptionThreshold   = 0.9
	similarDescriptionThreshold = 0.7
)

// Score combines date closeness, amount equality and description
// similarity into a single confidence in [0, 1], plus the list of
// criteria tags that contributed. Pure function, no I/O.
func Score(incoming IncomingTransaction, existing *storage.Transaction, cfg Config) (float64, []string) {
	days := daysBetween(incoming.Date, existing.Date)
	amountsEqual := sameMagnitude(incoming.Amount, existing.Amount, cfg.AmountTolerance)
	similarity := StringSimilarity(incoming.Description, existing.Description)

	score := dateScore(days, cfg.DateToleranceDays) * dateWeight
	if amountsEqual {
		score += amountWeight
	}
	score += similarity * descriptionWeight

	return score, matchCriteria(days, amountsEqual, similarity, cfg.DateToleranceDays)
}

// dateScore rewards calendar proximity: same day 1.0, one day apart 0.8,
// within tolerance 0.6, beyond that 0.
func dateScore(days float64, toleranceDays int) float64 {
	switch {
	case days == 0:
		return 1.0
	case days <= 1:
		return 0.8
	case days <= float64(toleranceDays):
		return 0.6
	default:
		return 0
	}
}

// sameMagnitude reports whether two amounts match regardless of sign.
// Incoming statements may encode direction differently than the store,
// so only the magnitude is compared.
func sameMagnitude(a, b, tolerance decimal.Decimal) bool {
	return a.Abs().Sub(b.Abs()).Abs().LessThan(tolerance)
}

// daysBetween returns the absolute difference between two dates in days
func daysBetween(a, b time.Time) float64 {
	return math.Abs(a.Sub(b).Hours() / 24)
}

// matchCriteria derives the criteria tags shown to the preview UI.
// Tags are independent of the weighted score and may co-occur.
func matchCriteria(days float64, amountsEqual bool, similarity float64, toleranceDays int) []string {
	var criteria []string

	if days == 0 {
		criteria = append(criteria, CriterionExactDate)
	} else if days <= float64(toleranceDays) {
		criteria = append(criteria, CriterionSimilarDate)
	}

	if amountsEqual {
		criteria = append(criteria, CriterionExactAmount)
	}

	if similarity >= exactDescriptionThreshold {
		criteria = append(criteria, CriterionExactDescription)
	} else if similarity >= similarDescriptionThreshold {
		criteria = append(criteria, CriterionSimilarDescription)
	}

	return criteria
}
