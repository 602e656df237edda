package service

import (
	"context"
	"time"

	"github.com/predialis/bankimport-backend/internal/domain/dedup"
	"github.com/predialis/bankimport-backend/internal/infrastructure/storage"
)

// fetchExactCandidates collects the distinct external ids in the batch and
// resolves them with a single bulk lookup, indexed by external id.
//
// A store error is logged and treated as "no candidates": duplicate
// detection is a convenience, the import must not fail because of it.
func (s *DuplicateDetectionService) fetchExactCandidates(ctx context.Context, batch []dedup.IncomingTransaction, accountID string) map[string]*storage.Transaction {
	seen := make(map[string]bool)
	var ids []string
	for _, tx := range batch {
		if tx.ExternalID != "" && !seen[tx.ExternalID] {
			seen[tx.ExternalID] = true
			ids = append(ids, tx.ExternalID)
		}
	}

	exactByID := make(map[string]*storage.Transaction)
	if len(ids) == 0 {
		return exactByID
	}

	found, err := s.store.FindByExternalIDs(ctx, accountID, ids)
	if err != nil {
		s.logger.Error("duplicate detection exact batch lookup failed",
			"account_id", accountID,
			"external_ids", len(ids),
			"error", err)
		return exactByID
	}

	// Some store clients report "nothing found" as a nil slice without an
	// error; when the batch carried exactly one id, fall back to a
	// single-record lookup. Best-effort only.
	if found == nil && len(ids) == 1 {
		single, err := s.store.FindByExternalID(ctx, accountID, ids[0])
		if err != nil {
			s.logger.Error("duplicate detection exact single lookup failed",
				"account_id", accountID,
				"external_id", ids[0],
				"error", err)
		} else if single != nil {
			found = []*storage.Transaction{single}
		}
	}

	for _, tx := range found {
		if tx.ExternalID != "" {
			exactByID[tx.ExternalID] = tx
		}
	}

	return exactByID
}

// fetchFuzzyPool retrieves all stored transactions within the remaining
// batch's date span, widened by the tolerance window, in one bulk lookup.
// This bounds the candidate pool by the window size instead of issuing
// one query per incoming transaction.
//
// A store error is logged and degrades to an empty pool.
func (s *DuplicateDetectionService) fetchFuzzyPool(ctx context.Context, remaining []dedup.IncomingTransaction, accountID string) []*storage.Transaction {
	minDate := remaining[0].Date
	maxDate := remaining[0].Date
	for _, tx := range remaining[1:] {
		if tx.Date.Before(minDate) {
			minDate = tx.Date
		}
		if tx.Date.After(maxDate) {
			maxDate = tx.Date
		}
	}

	start := minDate.AddDate(0, 0, -s.config.DateToleranceDays)
	end := maxDate.AddDate(0, 0, s.config.DateToleranceDays)

	pool, err := s.store.FindByDateRange(ctx, accountID, start, end)
	if err != nil {
		s.logger.Error("duplicate detection fuzzy window lookup failed",
			"account_id", accountID,
			"start", start.Format(time.RFC3339),
			"end", end.Format(time.RFC3339),
			"error", err)
		return nil
	}

	return pool
}
