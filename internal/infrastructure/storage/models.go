package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a persisted bank transaction owned by a bank account.
// Rows are created by successful imports and are read-only for duplicate
// detection.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	ExternalID  string          `json:"external_id,omitempty"` // issuer id (OFX FITID); empty when the statement had none
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Type        string          `json:"type,omitempty"` // "debit" or "credit"
	CreatedAt   time.Time       `json:"created_at"`
}
