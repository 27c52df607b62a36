package kvstore

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"sync"
	"time"

	"appraiser/pkg/serrors"
)

const shardCount = 32

// Memory is an in-process Store sharded across several mutex-guarded maps to
// keep contention low under concurrent appraisals. Expired entries are
// dropped lazily on access.
type Memory struct {
	shards [shardCount]*memoryShard
	now    func() time.Time
}

type memoryShard struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	count     int64
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// NewMemory creates an in-process store using the wall clock.
func NewMemory() *Memory {
	return NewMemoryWithClock(time.Now)
}

// NewMemoryWithClock creates an in-process store with an injectable clock.
// Tests use it to advance time without sleeping.
func NewMemoryWithClock(now func() time.Time) *Memory {
	m := &Memory{now: now}
	for i := range m.shards {
		m.shards[i] = &memoryShard{entries: make(map[string]memoryEntry)}
	}

	return m
}

func (m *Memory) shard(key string) *memoryShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	return m.shards[h.Sum32()%shardCount]
}

// GetJSON implements Store.
func (m *Memory) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	s := m.shard(key)

	s.mu.Lock()
	entry, ok := s.entries[key]
	if ok && entry.expired(m.now()) {
		delete(s.entries, key)
		ok = false
	}
	s.mu.Unlock()

	if !ok || entry.data == nil {
		return false, nil
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, serrors.Wrap(serrors.ErrPersistence, err, "could not decode cached value")
	}

	return true, nil
}

// SetJSON implements Store.
func (m *Memory) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return serrors.Wrap(serrors.ErrPersistence, err, "could not encode value for caching")
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = m.now().Add(ttl)
	}

	s := m.shard(key)

	s.mu.Lock()
	s.entries[key] = memoryEntry{data: data, expiresAt: expiresAt}
	s.mu.Unlock()

	return nil
}

// Incr implements Store.
func (m *Memory) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	s := m.shard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if ok && entry.expired(m.now()) {
		ok = false
	}

	if !ok {
		entry = memoryEntry{}
		if ttl > 0 {
			entry.expiresAt = m.now().Add(ttl)
		}
	}

	entry.count++
	s.entries[key] = entry

	return entry.count, nil
}

// TTL implements Store.
func (m *Memory) TTL(_ context.Context, key string) (time.Duration, bool, error) {
	s := m.shard(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || entry.expiresAt.IsZero() {
		return 0, false, nil
	}

	now := m.now()
	if entry.expired(now) {
		delete(s.entries, key)

		return 0, false, nil
	}

	return entry.expiresAt.Sub(now), true, nil
}

// Delete implements Store.
func (m *Memory) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		s := m.shard(key)

		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
	}

	return nil
}

// Ping implements Store.
func (m *Memory) Ping(_ context.Context) error { return nil }
