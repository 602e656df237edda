package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// Storage provides SQLite database access for transactions.
// It implements the TransactionStore interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements TransactionStore
var _ TransactionStore = (*Storage)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
	id           TEXT PRIMARY KEY,
	account_id   TEXT NOT NULL,
	external_id  TEXT,
	date         TEXT NOT NULL,
	amount       TEXT NOT NULL,
	description  TEXT NOT NULL,
	type         TEXT,
	created_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_account_external
	ON transactions(account_id, external_id);

CREATE INDEX IF NOT EXISTS idx_transactions_account_date
	ON transactions(account_id, date);
`

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (SQLite-specific)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// CreateTransaction persists a transaction, assigning an ID when missing
func (s *Storage) CreateTransaction(ctx context.Context, tx *Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	query := `
	INSERT INTO transactions
	(id, account_id, external_id, date, amount, description, type, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.ID,
		tx.AccountID,
		tx.ExternalID,
		formatDate(tx.Date),
		tx.Amount.String(),
		tx.Description,
		tx.Type,
		tx.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// FindByExternalIDs returns transactions matching any of the given external ids
func (s *Storage) FindByExternalIDs(ctx context.Context, accountID string, externalIDs []string) ([]*Transaction, error) {
	if len(externalIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(externalIDs))
	placeholders = placeholders[:len(placeholders)-1]

	query := fmt.Sprintf(`
	SELECT id, account_id, external_id, date, amount, description, type, created_at
	FROM transactions
	WHERE account_id = ? AND external_id IN (%s)
	`, placeholders)

	args := make([]interface{}, 0, len(externalIDs)+1)
	args = append(args, accountID)
	for _, id := range externalIDs {
		args = append(args, id)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query by external ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// FindByDateRange returns transactions dated within [start, end] inclusive
func (s *Storage) FindByDateRange(ctx context.Context, accountID string, start, end time.Time) ([]*Transaction, error) {
	query := `
	SELECT id, account_id, external_id, date, amount, description, type, created_at
	FROM transactions
	WHERE account_id = ? AND date >= ? AND date <= ?
	ORDER BY date
	`

	rows, err := s.db.QueryContext(ctx, query, accountID, formatDate(start), formatDate(end))
	if err != nil {
		return nil, fmt.Errorf("failed to query by date range: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// FindByExternalID returns the single transaction with the given external id, or nil
func (s *Storage) FindByExternalID(ctx context.Context, accountID, externalID string) (*Transaction, error) {
	query := `
	SELECT id, account_id, external_id, date, amount, description, type, created_at
	FROM transactions
	WHERE account_id = ? AND external_id = ?
	LIMIT 1
	`

	row := s.db.QueryRowContext(ctx, query, accountID, externalID)
	tx, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query by external id: %w", err)
	}
	return tx, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row scanner) (*Transaction, error) {
	var (
		tx         Transaction
		externalID sql.NullString
		txType     sql.NullString
		date       string
		amount     string
		createdAt  string
	)

	err := row.Scan(
		&tx.ID,
		&tx.AccountID,
		&externalID,
		&date,
		&amount,
		&tx.Description,
		&txType,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	tx.ExternalID = externalID.String
	tx.Type = txType.String

	if tx.Date, err = time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
	}
	if tx.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", amount, err)
	}
	if tx.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("invalid stored created_at %q: %w", createdAt, err)
	}

	return &tx, nil
}

func scanTransactions(rows *sql.Rows) ([]*Transaction, error) {
	var result []*Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

// dateLayout stores dates at second precision in UTC so that
// lexicographic comparison in SQL matches chronological order.
const dateLayout = "2006-01-02T15:04:05Z"

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
