package dedup

import (
	"sort"

	"github.com/predialis/bankimport-backend/internal/infrastructure/storage"
)

// Matcher scores batches of incoming transactions against a pool of
// stored transactions. It holds no state beyond its configuration.
type Matcher struct {
	config Config
}

// NewMatcher creates a new matcher with the given config
func NewMatcher(config Config) *Matcher {
	return &Matcher{config: config}
}

// ExactMatch builds the single match recorded for an issuer external-id
// hit. It carries confidence 1.0 and only the external-id criterion,
// regardless of how far date, amount or description diverge.
func ExactMatch(incoming IncomingTransaction, existing *storage.Transaction) Match {
	return Match{
		Incoming:   incoming,
		Existing:   existing,
		Confidence: ExactMatchConfidence,
		Criteria:   []string{CriterionExternalID},
		ExactMatch: true,
	}
}

// MatchAgainstPool scores every incoming transaction against every stored
// transaction in the pool. The pool is expected to be pre-bounded by a
// date window, so the pairwise step stays O(batch x window).
//
// The returned slice is index-aligned with the batch: entry i holds the
// qualifying matches for batch[i], sorted by descending confidence.
// Matches below MediumConfidenceThreshold are discarded.
func (m *Matcher) MatchAgainstPool(batch []IncomingTransaction, pool []*storage.Transaction) [][]Match {
	results := make([][]Match, len(batch))
	tolDays := float64(m.config.DateToleranceDays)

	for i, incoming := range batch {
		var matches []Match

		for _, existing := range pool {
			if daysBetween(incoming.Date, existing.Date) > tolDays {
				continue
			}

			confidence, criteria := Score(incoming, existing, m.config)
			if confidence < MediumConfidenceThreshold {
				continue
			}

			matches = append(matches, Match{
				Incoming:   incoming,
				Existing:   existing,
				Confidence: confidence,
				Criteria:   criteria,
				ExactMatch: false,
			})
		}

		// Highest confidence first; ties keep pool order
		sort.SliceStable(matches, func(a, b int) bool {
			return matches[a].Confidence > matches[b].Confidence
		})

		results[i] = matches
	}

	return results
}
