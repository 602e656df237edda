package storage

import (
	"context"
	"time"
)

// TransactionStore defines access to persisted transactions.
// This interface allows swapping implementations (SQLite, PostgreSQL, etc.)
// and makes testing with mocks straightforward.
type TransactionStore interface {
	// CreateTransaction persists a transaction. A missing ID is assigned.
	CreateTransaction(ctx context.Context, tx *Transaction) error

	// FindByExternalIDs returns the account's transactions whose external
	// id is in the given set, in one bulk lookup.
	FindByExternalIDs(ctx context.Context, accountID string, externalIDs []string) ([]*Transaction, error)

	// FindByDateRange returns the account's transactions dated within
	// [start, end] inclusive, in one bulk lookup.
	FindByDateRange(ctx context.Context, accountID string, start, end time.Time) ([]*Transaction, error)

	// FindByExternalID returns the account's transaction with the given
	// external id, or nil when none exists.
	FindByExternalID(ctx context.Context, accountID, externalID string) (*Transaction, error)

	Close() error
}
