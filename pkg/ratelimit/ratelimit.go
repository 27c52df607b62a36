// Package ratelimit implements a fixed-window request limiter over a
// key-value store. Each client identifier gets a counter whose window starts
// at its first request; once the window elapses the counter starts over.
package ratelimit

import (
	"context"
	"time"

	"appraiser/pkg/kvstore"
)

const keyPrefix = "ratelimit:"

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// RetryAfter returns how long the caller should wait before retrying,
// measured from now. It is only meaningful on a rejected decision.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	wait := d.ResetAt.Sub(now)
	if wait < 0 {
		return 0
	}

	return wait
}

// Limiter admits up to ceiling requests per client per window.
type Limiter struct {
	store   kvstore.Store
	ceiling int64
	window  time.Duration
	now     func() time.Time
}

// New creates a limiter using the wall clock.
func New(store kvstore.Store, ceiling int64, window time.Duration) *Limiter {
	return NewWithClock(store, ceiling, window, time.Now)
}

// NewWithClock creates a limiter with an injectable clock for tests.
func NewWithClock(store kvstore.Store, ceiling int64, window time.Duration, now func() time.Time) *Limiter {
	return &Limiter{store: store, ceiling: ceiling, window: window, now: now}
}

// Allow records one request for client and reports whether it may proceed.
// The returned decision always carries the limit, the remaining headroom and
// the time the current window resets. Store failures are returned to the
// caller, which decides whether to fail open.
func (l *Limiter) Allow(ctx context.Context, client string) (Decision, error) {
	key := keyPrefix + client

	count, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return Decision{}, err
	}

	resetAt := l.now().Add(l.window)
	if ttl, ok, err := l.store.TTL(ctx, key); err == nil && ok {
		resetAt = l.now().Add(ttl)
	}

	remaining := l.ceiling - count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= l.ceiling,
		Limit:     l.ceiling,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
