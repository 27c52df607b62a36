// Package appraisal implements the valuation engine: it orchestrates the
// factor scorers, external adapters and the comparable matcher into a single
// appraisal per (domain, options) request, with result caching and durable
// persistence wrapped around the expensive path.
package appraisal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"appraiser/internal/appraisal/factors"
	"appraiser/internal/comps"
	"appraiser/pkg/cache"
	"appraiser/pkg/commentary"
	"appraiser/pkg/domain"
	"appraiser/pkg/logger"
	"appraiser/pkg/metrics"
	"appraiser/pkg/serrors"
	"appraiser/pkg/storage"
	"appraiser/pkg/trademark"
	"appraiser/pkg/traffic"
	"appraiser/pkg/whois"
)

// Evaluation outcomes recorded on the metrics counter.
const (
	outcomeFresh    = "fresh"
	outcomeCacheHit = "cache_hit"
	outcomeStoreHit = "store_hit"
	outcomeInvalid  = "invalid"
	outcomeFailed   = "failed"
)

// Deps are the collaborators an evaluation may reach for. Storage and Cache
// are optional (the one-off CLI runs without either); any nil adapter client
// simply selects that factor's local estimator.
type Deps struct {
	// Storage persists completed appraisals and backs the durable result
	// lookup. Nil disables persistence and the deferred WHOIS job.
	Storage storage.Storage
	// Cache is the fast-path result cache. Nil disables caching.
	Cache *cache.ResultCache
	// Matcher ranks historical sales against the appraisal target.
	Matcher *comps.Matcher

	// Whois resolves registration data. Nil means age and availability are
	// estimated locally.
	Whois whois.Client
	// Traffic estimates monthly visits. Nil means the traffic factor uses
	// its conservative constant.
	Traffic traffic.Client
	// Trademark searches the live trademark register. Nil means the static
	// brand table is the only legal check.
	Trademark trademark.Client
	// Commentary generates appraisal prose. Nil means the engine assembles
	// a plain summary from the factor notes.
	Commentary commentary.Client

	// Metrics records evaluation outcomes and adapter fallbacks. Nil is a
	// no-op recorder.
	Metrics *metrics.Recorder
}

// service is the concrete Appraiser. It coordinates the scoring fan-out with
// the cache, the durable store and the deferred augmentation queue.
type service struct {
	deps    Deps
	options Options
	now     func() time.Time
}

// New creates an Appraiser backed by the provided collaborators.
func New(deps Deps, options Options) Appraiser {
	return &service{
		deps:    deps,
		options: options,
		now:     time.Now,
	}
}

// Evaluate appraises a domain. The request walks rate check (done by the
// HTTP layer), result cache, durable store and only then the full scoring
// fan-out; concurrent identical requests collapse onto one computation.
func (a *service) Evaluate(ctx context.Context, rawDomain string, opts domain.EvaluateOptions) (*domain.Appraisal, error) {
	started := a.now()

	name, err := NormalizeDomain(rawDomain)
	if err != nil {
		a.deps.Metrics.Evaluation(ctx, outcomeInvalid)

		return nil, err
	}

	key, err := factors.ParseKey(name)
	if err != nil {
		a.deps.Metrics.Evaluation(ctx, outcomeInvalid)

		return nil, err
	}

	opts = opts.Normalized()
	fingerprint := opts.Fingerprint()
	ctx = logger.WithFields(ctx, zap.String("domain", name))

	outcome := outcomeFresh
	compute := func(ctx context.Context) (domain.Appraisal, error) {
		if stored := a.storedResult(ctx, name, fingerprint); stored != nil {
			outcome = outcomeStoreHit

			return *stored, nil
		}

		appraisal := a.evaluate(ctx, key, opts, fingerprint)

		return a.persist(ctx, appraisal, opts), nil
	}

	var result domain.Appraisal
	if a.deps.Cache != nil {
		var hit bool
		result, hit, err = a.deps.Cache.GetOrCompute(ctx, name, fingerprint, compute)
		if hit {
			outcome = outcomeCacheHit
		}
	} else {
		result, err = compute(ctx)
	}
	if err != nil {
		a.deps.Metrics.Evaluation(ctx, outcomeFailed)

		return nil, fmt.Errorf("could not evaluate domain: %w", err)
	}

	a.deps.Metrics.Evaluation(ctx, outcome)
	a.deps.Metrics.Duration(ctx, a.now().Sub(started))

	return &result, nil
}

// Result fetches a stored appraisal by ID.
func (a *service) Result(ctx context.Context, id domain.AppraisalID) (*domain.Appraisal, error) {
	if a.deps.Storage == nil {
		return nil, serrors.With(serrors.ErrNotFound, "appraisal not found")
	}

	res, err := a.deps.Storage.AppraisalByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get appraisal: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "appraisal not found")
	}

	return res, nil
}

// Comparables ranks historical sales against the domain without running a
// full evaluation; the reporting surface uses this directly.
func (a *service) Comparables(ctx context.Context, rawDomain string, limit int) ([]domain.ComparableSale, error) {
	name, err := NormalizeDomain(rawDomain)
	if err != nil {
		return nil, err
	}

	return a.deps.Matcher.FindComparables(ctx, name, limit)
}

// storedResult looks the (domain, fingerprint) pair up in durable storage,
// bounded by the freshness window. Rows persisted before option hashing
// existed carry no hash and remain reusable. Storage trouble is a miss, not
// an error: the evaluation can always be recomputed.
func (a *service) storedResult(ctx context.Context, name string, fingerprint string) *domain.Appraisal {
	if a.deps.Storage == nil {
		return nil
	}

	since := a.now().Add(-a.options.ResultCacheTTL)

	stored, err := a.deps.Storage.LatestAppraisalByDomain(ctx, name, fingerprint, since)
	if err != nil {
		logger.Warn(ctx, "could not check stored appraisals", zap.Error(err))

		return nil
	}

	return stored
}

// persist writes the appraisal and, on the fast path, enqueues the deferred
// WHOIS augmentation in the same transaction so the row and its job land
// together. A persistence failure is logged and the freshly computed
// appraisal is served anyway.
func (a *service) persist(ctx context.Context, appraisal domain.Appraisal, opts domain.EvaluateOptions) domain.Appraisal {
	if a.deps.Storage == nil {
		return appraisal
	}

	stored := appraisal
	err := a.deps.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreAppraisal(ctx, appraisal)
		if err != nil {
			return fmt.Errorf("could not store appraisal: %w", err)
		}
		stored = res

		if opts.SkipWhois && a.deps.Whois != nil {
			_, err = tx.AddJob(ctx, WhoisAugmentArgs{
				AppraisalID: uuid.UUID(res.ID),
				Domain:      res.Domain,
				maxAttempts: a.options.WhoisJobMaxAttempts,
			}, nil)
			if err != nil {
				return fmt.Errorf("could not enqueue whois augmentation: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		logger.Warn(ctx, "could not persist appraisal, serving unsaved result", zap.Error(err))

		return appraisal
	}

	return stored
}
