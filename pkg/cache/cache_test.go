package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"appraiser/pkg/cache"
	"appraiser/pkg/domain"
	"appraiser/pkg/kvstore"
	"appraiser/pkg/serrors"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func sampleAppraisal(domainName string) domain.Appraisal {
	return domain.Appraisal{
		Domain:     domainName,
		FinalScore: 72.5,
		Bracket:    "premium",
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetOrComputeComputesOncePerKey(t *testing.T) {
	ctx := context.Background()
	rc := cache.New(kvstore.NewMemory(), 24*time.Hour)

	var computations atomic.Int64
	compute := func(context.Context) (domain.Appraisal, error) {
		computations.Add(1)

		return sampleAppraisal("example.com"), nil
	}

	first, hit, err := rc.GetOrCompute(ctx, "example.com", "fp-1", compute)
	require.NoError(t, err)
	require.False(t, hit)

	second, hit, err := rc.GetOrCompute(ctx, "example.com", "fp-1", compute)
	require.NoError(t, err)
	require.True(t, hit)

	require.Equal(t, first, second)
	require.EqualValues(t, 1, computations.Load())
}

func TestDifferentFingerprintsDoNotCollide(t *testing.T) {
	ctx := context.Background()
	rc := cache.New(kvstore.NewMemory(), 24*time.Hour)

	var computations atomic.Int64
	compute := func(context.Context) (domain.Appraisal, error) {
		computations.Add(1)

		return sampleAppraisal("example.com"), nil
	}

	_, _, err := rc.GetOrCompute(ctx, "example.com", "fp-1", compute)
	require.NoError(t, err)

	_, hit, err := rc.GetOrCompute(ctx, "example.com", "fp-2", compute)
	require.NoError(t, err)
	require.False(t, hit)
	require.EqualValues(t, 2, computations.Load())
}

func TestEntriesExpireAfterFreshnessWindow(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	rc := cache.New(kvstore.NewMemoryWithClock(clock.Now), 24*time.Hour)

	var computations atomic.Int64
	compute := func(context.Context) (domain.Appraisal, error) {
		computations.Add(1)

		return sampleAppraisal("example.com"), nil
	}

	_, _, err := rc.GetOrCompute(ctx, "example.com", "fp-1", compute)
	require.NoError(t, err)

	clock.Advance(24*time.Hour + time.Minute)

	_, hit, err := rc.GetOrCompute(ctx, "example.com", "fp-1", compute)
	require.NoError(t, err)
	require.False(t, hit)
	require.EqualValues(t, 2, computations.Load())
}

func TestComputeErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	rc := cache.New(kvstore.NewMemory(), 24*time.Hour)

	var computations atomic.Int64

	_, _, err := rc.GetOrCompute(ctx, "example.com", "fp-1", func(context.Context) (domain.Appraisal, error) {
		computations.Add(1)

		return domain.Appraisal{}, serrors.With(serrors.ErrInternal, "boom")
	})
	require.Error(t, err)

	_, hit, err := rc.GetOrCompute(ctx, "example.com", "fp-1", func(context.Context) (domain.Appraisal, error) {
		computations.Add(1)

		return sampleAppraisal("example.com"), nil
	})
	require.NoError(t, err)
	require.False(t, hit)
	require.EqualValues(t, 2, computations.Load())
}

func TestConcurrentCallersCollapseToOneComputation(t *testing.T) {
	ctx := context.Background()
	rc := cache.New(kvstore.NewMemory(), 24*time.Hour)

	var computations atomic.Int64

	entered := make(chan struct{})
	release := make(chan struct{})

	compute := func(context.Context) (domain.Appraisal, error) {
		if computations.Add(1) == 1 {
			close(entered)
		}
		<-release

		return sampleAppraisal("example.com"), nil
	}

	const callers = 8

	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			appraisal, _, err := rc.GetOrCompute(ctx, "example.com", "fp-1", compute)
			require.NoError(t, err)
			require.Equal(t, "example.com", appraisal.Domain)
		}()
	}

	<-entered
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	require.EqualValues(t, 1, computations.Load())
}

func TestLookupMissOnEmptyCache(t *testing.T) {
	rc := cache.New(kvstore.NewMemory(), 24*time.Hour)

	_, found := rc.Lookup(context.Background(), "example.com", "fp-1")
	require.False(t, found)
}
