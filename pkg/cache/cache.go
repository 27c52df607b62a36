// Package cache implements the content-addressed appraisal result cache.
// Entries are keyed by the normalized domain plus the fingerprint of the
// evaluation options, so two requests for the same domain with different
// options never collide. Concurrent identical requests are collapsed with
// singleflight so the expensive evaluation runs at most once per key.
package cache

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"appraiser/pkg/domain"
	"appraiser/pkg/kvstore"
	"appraiser/pkg/logger"
)

const keyPrefix = "appraisal:"

// ResultCache holds completed appraisals for a freshness window.
type ResultCache struct {
	store kvstore.Store
	ttl   time.Duration
	group singleflight.Group
}

// New creates a result cache. ttl is the freshness window after which an
// entry is no longer served, typically 24 hours.
func New(store kvstore.Store, ttl time.Duration) *ResultCache {
	return &ResultCache{store: store, ttl: ttl}
}

func cacheKey(domainName string, fingerprint string) string {
	return keyPrefix + domainName + ":" + fingerprint
}

// Lookup returns the cached appraisal for (domain, fingerprint) when one is
// still fresh. Store failures are logged and treated as a miss so an
// unavailable cache never blocks an evaluation.
func (c *ResultCache) Lookup(ctx context.Context, domainName string, fingerprint string) (domain.Appraisal, bool) {
	var cached domain.Appraisal

	found, err := c.store.GetJSON(ctx, cacheKey(domainName, fingerprint), &cached)
	if err != nil {
		logger.Warn(ctx, "result cache lookup failed", zap.String("domain", domainName), zap.Error(err))

		return domain.Appraisal{}, false
	}

	return cached, found
}

// Store writes a freshly computed appraisal. Failures are logged only; the
// appraisal has already been computed and will be returned regardless.
func (c *ResultCache) Store(ctx context.Context, domainName string, fingerprint string, appraisal domain.Appraisal) {
	if err := c.store.SetJSON(ctx, cacheKey(domainName, fingerprint), appraisal, c.ttl); err != nil {
		logger.Warn(ctx, "result cache write failed", zap.String("domain", domainName), zap.Error(err))
	}
}

// GetOrCompute returns the cached appraisal for (domain, fingerprint) or runs
// compute to produce one, collapsing concurrent callers onto a single
// computation. The boolean reports whether the result came from the cache.
func (c *ResultCache) GetOrCompute(
	ctx context.Context,
	domainName string,
	fingerprint string,
	compute func(ctx context.Context) (domain.Appraisal, error),
) (domain.Appraisal, bool, error) {
	if cached, found := c.Lookup(ctx, domainName, fingerprint); found {
		return cached, true, nil
	}

	type flight struct {
		appraisal domain.Appraisal
		hit       bool
	}

	key := cacheKey(domainName, fingerprint)

	v, err, _ := c.group.Do(key, func() (any, error) {
		// a concurrent flight may have filled the cache while this caller
		// waited its turn
		if cached, found := c.Lookup(ctx, domainName, fingerprint); found {
			return flight{appraisal: cached, hit: true}, nil
		}

		appraisal, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		c.Store(ctx, domainName, fingerprint, appraisal)

		return flight{appraisal: appraisal}, nil
	})
	if err != nil {
		return domain.Appraisal{}, false, err
	}

	result := v.(flight) //nolint: forcetypeassert

	return result.appraisal, result.hit, nil
}
