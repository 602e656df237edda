// Package dedup provides duplicate detection for bank-statement imports.
//
// An incoming transaction is a duplicate when an already-stored transaction
// carries the same issuer id (exact match) or scores high enough on a
// weighted combination of date closeness, amount equality and description
// similarity (fuzzy match).
//
// Example usage:
//
//	m := dedup.NewMatcher(dedup.DefaultConfig())
//	matches := m.MatchAgainstPool(batch, pool)
package dedup

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/predialis/bankimport-backend/internal/infrastructure/storage"
)

// Config holds duplicate matcher thresholds
type Config struct {
	DateToleranceDays int             // Days tolerance (default: 2)
	AmountTolerance   decimal.Decimal // Currency units (default: 0.01)
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		DateToleranceDays: 2,
		AmountTolerance:   decimal.NewFromFloat(0.01),
	}
}

// Confidence thresholds
const (
	ExactMatchConfidence      = 1.0
	HighConfidenceThreshold   = 0.8
	MediumConfidenceThreshold = 0.6
)

// Match criteria tags reported to the preview UI
const (
	CriterionExternalID         = "ofx_transaction_id"
	CriterionExactDate          = "exact_date"
	CriterionSimilarDate        = "similar_date"
	CriterionExactAmount        = "exact_amount"
	CriterionExactDescription   = "exact_description"
	CriterionSimilarDescription = "similar_description"
)

// IncomingTransaction is one freshly parsed statement entry. It lives for
// the duration of a single import and is never persisted by this package.
type IncomingTransaction struct {
	ExternalID  string // issuer id (OFX FITID); empty when the statement had none
	AccountID   string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Type        string // "debit" or "credit"
}

// Match couples one incoming transaction with one stored transaction.
// An exact match always has confidence 1.0 and the single external-id
// criterion; a fuzzy match only exists at or above
// MediumConfidenceThreshold.
type Match struct {
	Incoming   IncomingTransaction
	Existing   *storage.Transaction
	Confidence float64 // 0-1 score
	Criteria   []string
	ExactMatch bool
}

// Summary holds batch-level counts. Duplicates, ExactMatches and
// PotentialMatches count incoming transactions, not match rows.
type Summary struct {
	Total            int `json:"total"`
	Duplicates       int `json:"duplicates"`
	Unique           int `json:"unique"`
	ExactMatches     int `json:"exact_matches"`
	PotentialMatches int `json:"potential_matches"`
}

// DetectionResult is the outcome of matching one import batch
type DetectionResult struct {
	Duplicates []Match
	Unique     []IncomingTransaction
	Summary    Summary
}

// Recommendation is the suggested import action for one transaction
type Recommendation string

const (
	RecommendSkip   Recommendation = "skip"
	RecommendImport Recommendation = "import"
	RecommendReview Recommendation = "review"
)

// Preview pairs one incoming transaction with its matches and the
// recommended import action
type Preview struct {
	Transaction    IncomingTransaction
	Matches        []Match
	Recommendation Recommendation
	Reason         string
}
