package appraisal

import (
	"context"

	"appraiser/pkg/domain"
)

// Appraiser is the valuation service consumed by the HTTP handlers and the
// CLI. Implementations own caching, persistence and the deferred WHOIS
// augmentation; callers only see completed appraisals.
type Appraiser interface {
	// Evaluate appraises a domain under the given options. Equivalent
	// requests inside the freshness window are served from the result cache
	// without re-running the evaluation.
	Evaluate(ctx context.Context, rawDomain string, opts domain.EvaluateOptions) (*domain.Appraisal, error)

	// Result fetches a stored appraisal by ID. It returns a not-found error
	// when no such appraisal exists.
	Result(ctx context.Context, id domain.AppraisalID) (*domain.Appraisal, error)

	// Comparables returns up to limit historical sales ranked by similarity
	// to the domain, most similar first, without running a full evaluation.
	Comparables(ctx context.Context, rawDomain string, limit int) ([]domain.ComparableSale, error)
}
