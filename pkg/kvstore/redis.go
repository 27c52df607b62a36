package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"appraiser/pkg/serrors"
)

// Redis is a Store backed by a Redis server. All keys are namespaced with a
// prefix so several services can share one instance.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis wraps an existing go-redis client. The prefix is prepended to
// every key, typically "appraiser:".
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(key string) string { return r.prefix + key }

// GetJSON implements Store.
func (r *Redis) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, serrors.Wrap(serrors.ErrPersistence, err, "could not read key %q", key)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, serrors.Wrap(serrors.ErrPersistence, err, "could not decode cached value")
	}

	return true, nil
}

// SetJSON implements Store.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return serrors.Wrap(serrors.ErrPersistence, err, "could not encode value for caching")
	}

	if ttl < 0 {
		ttl = 0
	}

	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		return serrors.Wrap(serrors.ErrPersistence, err, "could not write key %q", key)
	}

	return nil
}

// Incr implements Store. The expiry is attached only when the key has none
// yet, so the counter window is anchored at the first increment.
func (r *Redis) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, r.key(key))
	if ttl > 0 {
		pipe.ExpireNX(ctx, r.key(key), ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, serrors.Wrap(serrors.ErrPersistence, err, "could not increment key %q", key)
	}

	return incr.Val(), nil
}

// TTL implements Store. Redis reports negative durations for keys that are
// absent or have no expiry; both map to ok=false.
func (r *Redis) TTL(ctx context.Context, key string) (time.Duration, bool, error) {
	d, err := r.client.TTL(ctx, r.key(key)).Result()
	if err != nil {
		return 0, false, serrors.Wrap(serrors.ErrPersistence, err, "could not read ttl of key %q", key)
	}

	if d <= 0 {
		return 0, false, nil
	}

	return d, true, nil
}

// Delete implements Store.
func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}

	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return serrors.Wrap(serrors.ErrPersistence, err, "could not delete keys")
	}

	return nil
}

// Ping implements Store.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return serrors.Wrap(serrors.ErrPersistence, err, "redis unreachable")
	}

	return nil
}
