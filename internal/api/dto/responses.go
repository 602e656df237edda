package dto

import (
	"time"

	"github.com/predialis/bankimport-backend/internal/domain/dedup"
)

// MatchResponse describes one stored transaction matched against an
// incoming one
type MatchResponse struct {
	ExistingID          string   `json:"existing_id"`
	ExistingDate        string   `json:"existing_date"`
	ExistingAmount      string   `json:"existing_amount"`
	ExistingDescription string   `json:"existing_description"`
	Confidence          float64  `json:"confidence"`
	Criteria            []string `json:"criteria"`
	ExactMatch          bool     `json:"exact_match"`
}

// DetectResponse is the batch detection result
type DetectResponse struct {
	Summary    dedup.Summary        `json:"summary"`
	Duplicates []MatchResponse      `json:"duplicates"`
	Unique     []TransactionPayload `json:"unique"`
}

// PreviewEntryResponse is one transaction's preview row
type PreviewEntryResponse struct {
	Transaction    TransactionPayload `json:"transaction"`
	Matches        []MatchResponse    `json:"matches"`
	Recommendation string             `json:"recommendation"`
	Reason         string             `json:"reason"`
}

// PreviewResponse is the full import preview
type PreviewResponse struct {
	Previews []PreviewEntryResponse `json:"previews"`
}

// CheckResponse reports whether a single transaction is a duplicate
type CheckResponse struct {
	Duplicate bool `json:"duplicate"`
}

// CreateTransactionResponse returns the assigned transaction id
type CreateTransactionResponse struct {
	ID string `json:"id"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// NewHealthResponse builds a healthy response with the current time
func NewHealthResponse() HealthResponse {
	return HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}
}

// FromMatch converts a domain match into its response form
func FromMatch(m dedup.Match) MatchResponse {
	return MatchResponse{
		ExistingID:          m.Existing.ID,
		ExistingDate:        m.Existing.Date.Format("2006-01-02"),
		ExistingAmount:      m.Existing.Amount.String(),
		ExistingDescription: m.Existing.Description,
		Confidence:          m.Confidence,
		Criteria:            m.Criteria,
		ExactMatch:          m.ExactMatch,
	}
}

// FromIncoming converts a domain incoming transaction back into its
// payload form for echoing in responses
func FromIncoming(tx dedup.IncomingTransaction) TransactionPayload {
	return TransactionPayload{
		ExternalID:  tx.ExternalID,
		Date:        tx.Date.Format("2006-01-02"),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		Type:        tx.Type,
	}
}
