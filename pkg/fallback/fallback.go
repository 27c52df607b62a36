// Package fallback runs a chain of data-source tiers in order and returns the
// first successful result. External adapters sit at the front of a chain and
// a local estimator sits at the end, so scoring always gets a value even when
// every integration is down or unconfigured.
package fallback

import (
	"context"
	"errors"
	"time"

	"appraiser/pkg/serrors"
)

// Reasons a tier was skipped, recorded for metrics and factor annotations.
const (
	ReasonConfig   = "config"
	ReasonTimeout  = "timeout"
	ReasonUpstream = "upstream"
	ReasonError    = "error"
)

// Tier is one provider in a fallback chain. A positive Timeout bounds the
// fetch with its own deadline; the chain continues when it expires.
type Tier[T any] struct {
	Name    string
	Timeout time.Duration
	Fetch   func(ctx context.Context) (T, error)
}

// Skip records a tier that failed and why.
type Skip struct {
	Tier   string
	Reason string
}

// Outcome is a value together with the tier that produced it and the tiers
// that were skipped on the way there.
type Outcome[T any] struct {
	Value   T
	Tier    string
	Skipped []Skip
}

// FellBack reports whether the serving tier was not the first in the chain.
func (o Outcome[T]) FellBack() bool { return len(o.Skipped) > 0 }

// Run tries each tier in order and returns the first successful outcome.
// A tier failure is recorded and the next tier is tried; only parent context
// cancellation aborts the whole chain. When every tier fails, the last error
// is returned along with the skip records accumulated so far.
func Run[T any](ctx context.Context, tiers ...Tier[T]) (Outcome[T], error) {
	var (
		outcome Outcome[T]
		lastErr error
	)

	for _, tier := range tiers {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		value, err := fetch(ctx, tier)
		if err == nil {
			outcome.Value = value
			outcome.Tier = tier.Name

			return outcome, nil
		}

		if ctx.Err() != nil {
			return outcome, ctx.Err()
		}

		outcome.Skipped = append(outcome.Skipped, Skip{Tier: tier.Name, Reason: Classify(err)})
		lastErr = err
	}

	if lastErr == nil {
		lastErr = serrors.With(serrors.ErrInternal, "fallback chain has no tiers")
	}

	return outcome, lastErr
}

func fetch[T any](ctx context.Context, tier Tier[T]) (T, error) {
	if tier.Timeout <= 0 {
		return tier.Fetch(ctx)
	}

	tctx, cancel := context.WithTimeout(ctx, tier.Timeout)
	defer cancel()

	return tier.Fetch(tctx)
}

// Classify maps an error to the skip reason recorded for it.
func Classify(err error) string {
	switch {
	case errors.Is(err, serrors.ErrConfig):
		return ReasonConfig
	case errors.Is(err, serrors.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, serrors.ErrUpstream):
		return ReasonUpstream
	default:
		return ReasonError
	}
}
