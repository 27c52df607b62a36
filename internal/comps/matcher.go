package comps

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"appraiser/internal/appraisal/factors"
	"appraiser/pkg/domain"
	"appraiser/pkg/logger"
	"appraiser/pkg/storage"
)

const (
	// DefaultPoolSize bounds how many recent sales are pulled from storage
	// before similarity ranking.
	DefaultPoolSize = 500

	// DefaultLimit is how many ranked comparables an evaluation uses.
	DefaultLimit = 5

	// bandSpread widens the rough bracket into the price band queried from
	// storage, so evidence one bracket off is still considered.
	bandSpread = 5
)

// Matcher retrieves candidate sales and ranks them against a target domain.
type Matcher struct {
	sales    storage.SaleStorage
	poolSize uint
}

// NewMatcher creates a matcher over the given sale storage. poolSize bounds
// the candidate pool; 0 uses DefaultPoolSize. A nil sale storage ranks
// against the embedded dataset only.
func NewMatcher(sales storage.SaleStorage, poolSize uint) *Matcher {
	if poolSize == 0 {
		poolSize = DefaultPoolSize
	}

	return &Matcher{sales: sales, poolSize: poolSize}
}

// FindComparables returns up to limit historical sales ranked by similarity
// to the raw domain, most similar first. Candidates below the similarity
// floor are discarded; an unreachable sale store degrades to the embedded
// dataset rather than failing the evaluation.
func (m *Matcher) FindComparables(ctx context.Context, rawDomain string, limit int) ([]domain.ComparableSale, error) {
	key, err := factors.ParseKey(rawDomain)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	return m.rank(ctx, key, limit), nil
}

func (m *Matcher) rank(ctx context.Context, key domain.Key, limit int) []domain.ComparableSale {
	candidates := m.candidates(ctx, key)

	ranked := make([]domain.ComparableSale, 0, len(candidates))
	for _, sale := range candidates {
		candidateKey, err := factors.ParseKey(sale.Domain)
		if err != nil {
			continue
		}

		similarity := Similarity(key, candidateKey)
		if similarity < SimilarityFloor {
			continue
		}

		sale.Similarity = similarity
		ranked = append(ranked, sale)
	}

	// deterministic order: similarity, then recency, then name
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Similarity != ranked[j].Similarity {
			return ranked[i].Similarity > ranked[j].Similarity
		}
		if !ranked[i].SoldDate.Equal(ranked[j].SoldDate) {
			return ranked[i].SoldDate.After(ranked[j].SoldDate)
		}

		return ranked[i].Domain < ranked[j].Domain
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// candidates pulls the bounded candidate pool from storage, pre-filtered to
// the price band a domain of this shape plausibly trades in. Storage
// failures, empty pools and a nil sale store fall back to the embedded
// dataset.
func (m *Matcher) candidates(ctx context.Context, key domain.Key) []domain.ComparableSale {
	if m.sales == nil {
		return embeddedSales()
	}

	minPrice, maxPrice := priceBand(key)

	pool, err := m.sales.RecentSales(ctx, minPrice, maxPrice, m.poolSize)
	if err != nil {
		logger.Warn(ctx, "sale storage unavailable, using embedded dataset",
			zap.String("domain", key.String()), zap.Error(err))

		return embeddedSales()
	}

	if len(pool) == 0 {
		return embeddedSales()
	}

	return pool
}

// priceBand derives the storage pre-filter from the rough worth of the
// domain's shape (length and TLD only, nothing adapter-backed).
func priceBand(key domain.Key) (int64, int64) {
	lengthScore, _ := factors.ScoreLength(key.Name)
	tldScore, _ := factors.ScoreTLD(key, "")

	bracket := domain.BracketFor((lengthScore + tldScore) / 2)

	return bracket.Min / bandSpread, bracket.Max * bandSpread
}
