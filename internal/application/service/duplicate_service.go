// Package service wires the duplicate matcher to the transaction store.
//
// DuplicateDetectionService is the entry point the import pipeline calls
// before persisting a parsed bank statement. It never writes to the store;
// store read failures degrade to "no candidates found" so a flaky database
// slows duplicate detection down to a no-op instead of failing the import.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/predialis/bankimport-backend/internal/domain/dedup"
	"github.com/predialis/bankimport-backend/internal/infrastructure/storage"
)

// DuplicateDetectionService finds already-imported transactions for an
// incoming statement batch.
type DuplicateDetectionService struct {
	store   storage.TransactionStore
	matcher *dedup.Matcher
	config  dedup.Config
	logger  *slog.Logger
}

// NewDuplicateDetectionService creates a new detection service.
func NewDuplicateDetectionService(store storage.TransactionStore, cfg dedup.Config, logger *slog.Logger) *DuplicateDetectionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &DuplicateDetectionService{
		store:   store,
		matcher: dedup.NewMatcher(cfg),
		config:  cfg,
		logger:  logger,
	}
}

// FindDuplicates matches the whole batch against the store and partitions
// it into duplicates and unique transactions with summary counts.
func (s *DuplicateDetectionService) FindDuplicates(ctx context.Context, batch []dedup.IncomingTransaction, accountID string) (*dedup.DetectionResult, error) {
	matchesByTx, err := s.findMatchesForBatch(ctx, batch, accountID)
	if err != nil {
		return nil, err
	}

	result := &dedup.DetectionResult{
		Duplicates: []dedup.Match{},
		Unique:     []dedup.IncomingTransaction{},
	}

	for i, tx := range batch {
		matches := matchesByTx[i]
		if len(matches) == 0 {
			result.Unique = append(result.Unique, tx)
			continue
		}

		result.Duplicates = append(result.Duplicates, matches...)
		result.Summary.Duplicates++
		// Matches are sorted by confidence, so the first is the best
		if matches[0].ExactMatch {
			result.Summary.ExactMatches++
		}
	}

	result.Summary.Total = len(batch)
	result.Summary.Unique = len(result.Unique)
	result.Summary.PotentialMatches = result.Summary.Duplicates - result.Summary.ExactMatches

	return result, nil
}

// CheckSingleTransaction reports whether a single transaction is a
// duplicate. It reuses the batch path so single and batch calls agree on
// thresholds.
func (s *DuplicateDetectionService) CheckSingleTransaction(ctx context.Context, tx dedup.IncomingTransaction, accountID string) (bool, error) {
	matchesByTx, err := s.findMatchesForBatch(ctx, []dedup.IncomingTransaction{tx}, accountID)
	if err != nil {
		return false, err
	}
	return len(matchesByTx[0]) > 0, nil
}

// GenerateDuplicatePreview returns one preview per incoming transaction
// with the recommended import action and a human-readable reason.
func (s *DuplicateDetectionService) GenerateDuplicatePreview(ctx context.Context, batch []dedup.IncomingTransaction, accountID string) ([]dedup.Preview, error) {
	matchesByTx, err := s.findMatchesForBatch(ctx, batch, accountID)
	if err != nil {
		return nil, err
	}

	previews := make([]dedup.Preview, 0, len(batch))
	for i, tx := range batch {
		matches := matchesByTx[i]
		previews = append(previews, dedup.Preview{
			Transaction:    tx,
			Matches:        matches,
			Recommendation: dedup.Recommend(matches),
			Reason:         dedup.RecommendationReason(matches),
		})
	}

	return previews, nil
}

// findMatchesForBatch resolves matches for every transaction in the batch
// using two bulk store reads: one by external-id set, one by date window.
// The returned slice is index-aligned with the batch; every entry is
// present, possibly empty.
func (s *DuplicateDetectionService) findMatchesForBatch(ctx context.Context, batch []dedup.IncomingTransaction, accountID string) ([][]dedup.Match, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account id is required")
	}

	results := make([][]dedup.Match, len(batch))
	if len(batch) == 0 {
		return results, nil
	}

	// Pass 1: exact external-id matches, one bulk lookup
	exactByID := s.fetchExactCandidates(ctx, batch, accountID)

	var remaining []dedup.IncomingTransaction
	var remainingIdx []int
	for i, tx := range batch {
		if tx.ExternalID != "" {
			if existing, ok := exactByID[tx.ExternalID]; ok {
				results[i] = []dedup.Match{dedup.ExactMatch(tx, existing)}
				continue
			}
		}
		remaining = append(remaining, tx)
		remainingIdx = append(remainingIdx, i)
	}

	if len(remaining) == 0 {
		return results, nil
	}

	// Pass 2: fuzzy candidates, one bulk lookup bounded by the batch's
	// date span plus tolerance
	pool := s.fetchFuzzyPool(ctx, remaining, accountID)

	matched := s.matcher.MatchAgainstPool(remaining, pool)
	for j, idx := range remainingIdx {
		results[idx] = matched[j]
	}

	return results, nil
}
