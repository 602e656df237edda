package storage

import (
	"context"
	"time"
)

// MockStore is an in-memory implementation of TransactionStore for testing.
// It stores all data in a slice, making tests fast and isolated.
type MockStore struct {
	transactions []*Transaction

	// Call counters for asserting the one-bulk-query-per-batch discipline
	FindByExternalIDsCalls int
	FindByDateRangeCalls   int
	FindByExternalIDCalls  int

	// Error injection for testing error paths
	CreateTransactionErr error
	FindByExternalIDsErr error
	FindByDateRangeErr   error
	FindByExternalIDErr  error

	// When true, FindByExternalIDs returns (nil, nil) regardless of data,
	// simulating a store client returning no result set without erroring
	FindByExternalIDsNil bool
}

// NewMockStore creates a new mock store for testing
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Compile-time check that MockStore implements TransactionStore
var _ TransactionStore = (*MockStore)(nil)

// Close does nothing for mock
func (m *MockStore) Close() error {
	return nil
}

// CreateTransaction appends the transaction to the in-memory slice
func (m *MockStore) CreateTransaction(_ context.Context, tx *Transaction) error {
	if m.CreateTransactionErr != nil {
		return m.CreateTransactionErr
	}
	copied := *tx
	m.transactions = append(m.transactions, &copied)
	return nil
}

// FindByExternalIDs returns transactions matching any of the given external ids
func (m *MockStore) FindByExternalIDs(_ context.Context, accountID string, externalIDs []string) ([]*Transaction, error) {
	m.FindByExternalIDsCalls++
	if m.FindByExternalIDsErr != nil {
		return nil, m.FindByExternalIDsErr
	}
	if m.FindByExternalIDsNil {
		return nil, nil
	}

	wanted := make(map[string]bool, len(externalIDs))
	for _, id := range externalIDs {
		wanted[id] = true
	}

	var result []*Transaction
	for _, tx := range m.transactions {
		if tx.AccountID == accountID && tx.ExternalID != "" && wanted[tx.ExternalID] {
			result = append(result, tx)
		}
	}
	return result, nil
}

// FindByDateRange returns transactions dated within [start, end] inclusive
func (m *MockStore) FindByDateRange(_ context.Context, accountID string, start, end time.Time) ([]*Transaction, error) {
	m.FindByDateRangeCalls++
	if m.FindByDateRangeErr != nil {
		return nil, m.FindByDateRangeErr
	}

	var result []*Transaction
	for _, tx := range m.transactions {
		if tx.AccountID != accountID {
			continue
		}
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		result = append(result, tx)
	}
	return result, nil
}

// FindByExternalID returns the single transaction with the given external id, or nil
func (m *MockStore) FindByExternalID(_ context.Context, accountID, externalID string) (*Transaction, error) {
	m.FindByExternalIDCalls++
	if m.FindByExternalIDErr != nil {
		return nil, m.FindByExternalIDErr
	}

	for _, tx := range m.transactions {
		if tx.AccountID == accountID && tx.ExternalID == externalID {
			return tx, nil
		}
	}
	return nil, nil
}

// Helper methods for test setup

// AddTransaction adds a transaction directly (for test setup)
func (m *MockStore) AddTransaction(tx *Transaction) {
	m.transactions = append(m.transactions, tx)
}

// Reset clears all data and counters (for reuse between tests)
func (m *MockStore) Reset() {
	m.transactions = nil
	m.FindByExternalIDsCalls = 0
	m.FindByDateRangeCalls = 0
	m.FindByExternalIDCalls = 0
	m.CreateTransactionErr = nil
	m.FindByExternalIDsErr = nil
	m.FindByDateRangeErr = nil
	m.FindByExternalIDErr = nil
	m.FindByExternalIDsNil = false
}
