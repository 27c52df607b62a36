// Package kvstore abstracts the fast key-value layer used for result caching
// and rate-limit counters. Two implementations exist: a sharded in-process
// store for single-node deployments and tests, and a Redis-backed store for
// deployments where counters and cached results must be shared.
package kvstore

import (
	"context"
	"time"
)

// Store is the key-value surface the cache and rate limiter are built on.
// Implementations must be safe for concurrent use.
type Store interface {
	// GetJSON unmarshals the value stored under key into dest. It returns
	// false without error when the key is absent or expired.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)

	// SetJSON marshals value and stores it under key. A non-positive ttl
	// stores the value without expiry.
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error

	// Incr atomically increments the counter under key and returns the new
	// value. The ttl is applied only when the increment creates the key, so
	// a counter expires relative to its first increment.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// TTL reports the remaining lifetime of key. ok is false when the key
	// is absent, expired or has no expiry set.
	TTL(ctx context.Context, key string) (ttl time.Duration, ok bool, err error)

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
