package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/predialis/bankimport-backend/internal/domain/dedup"
)

// TransactionPayload is one parsed statement entry as posted by the
// import UI.
type TransactionPayload struct {
	ExternalID  string `json:"external_id,omitempty"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD or RFC3339
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
}

// DetectRequest asks for duplicate detection over a whole batch
type DetectRequest struct {
	AccountID    string               `json:"account_id" binding:"required"`
	Transactions []TransactionPayload `json:"transactions" binding:"required"`
}

// CheckRequest asks whether a single transaction is a duplicate
type CheckRequest struct {
	AccountID   string             `json:"account_id" binding:"required"`
	Transaction TransactionPayload `json:"transaction" binding:"required"`
}

// CreateTransactionRequest persists one transaction (import execute)
type CreateTransactionRequest struct {
	AccountID   string             `json:"account_id" binding:"required"`
	Transaction TransactionPayload `json:"transaction" binding:"required"`
}

// ToIncoming converts the payload into the domain representation
func (p TransactionPayload) ToIncoming(accountID string) (dedup.IncomingTransaction, error) {
	date, err := parseDate(p.Date)
	if err != nil {
		return dedup.IncomingTransaction{}, err
	}

	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return dedup.IncomingTransaction{}, fmt.Errorf("invalid amount %q: %w", p.Amount, err)
	}

	return dedup.IncomingTransaction{
		ExternalID:  p.ExternalID,
		AccountID:   accountID,
		Date:        date,
		Amount:      amount,
		Description: p.Description,
		Type:        p.Type,
	}, nil
}

// ToIncomingBatch converts a slice of payloads, reporting the index of the
// first invalid entry
func ToIncomingBatch(payloads []TransactionPayload, accountID string) ([]dedup.IncomingTransaction, error) {
	batch := make([]dedup.IncomingTransaction, 0, len(payloads))
	for i, p := range payloads {
		tx, err := p.ToIncoming(accountID)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		batch = append(batch, tx)
	}
	return batch, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC3339", s)
}
