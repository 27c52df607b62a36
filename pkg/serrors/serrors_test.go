package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"appraiser/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestTaxonomyKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrValidation,
		serrors.ErrConfig,
		serrors.ErrTimeout,
		serrors.ErrUpstream,
		serrors.ErrPersistence,
		serrors.ErrRateLimited,
		serrors.ErrNotFound,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("registry down")

	e1 := serrors.With(serrors.ErrNotFound, "appraisal %d not found", 42)
	require.Equal(t, "appraisal 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrUpstream, base, "fetching whois")
	require.Equal(t, "fetching whois: registry down", e2.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrTimeout, base, "traffic lookup")

	require.ErrorIs(t, e, serrors.ErrTimeout)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUpstream, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrConfig, base, "reading credentials")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrConfig, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	e := serrors.With(serrors.ErrValidation, "bad domain")
	wrapped := fmt.Errorf("evaluate: %w", e)

	require.Equal(t, serrors.ErrValidation, serrors.KindOf(wrapped))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrPersistence, base, "storing appraisal")
	require.Equal(t, serrors.ErrPersistence, e.Kind())
	require.Equal(t, "storing appraisal", e.Message())
	require.ErrorIs(t, e, base)
}
