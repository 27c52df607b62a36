package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"appraiser/pkg/logger"
)

func TestGetReturnsDefaultWhenContextEmpty(t *testing.T) {
	l := logger.Get(context.Background())
	require.NotNil(t, l)
}

func TestWithLoggerRoundTrip(t *testing.T) {
	custom := zap.NewExample()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFieldsDerivesChildLogger(t *testing.T) {
	base := zap.NewExample()
	ctx := logger.WithLogger(context.Background(), base)

	child := logger.WithFields(ctx, zap.String("component", "test"))

	require.NotSame(t, base, logger.Get(child))
	// the parent context keeps its original logger
	require.Same(t, base, logger.Get(ctx))
}

func TestLevelHelpersDoNotPanic(t *testing.T) {
	ctx := logger.WithLogger(context.Background(), zap.NewNop())

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug")
		logger.Info(ctx, "info")
		logger.Warn(ctx, "warn")
		logger.Error(ctx, "error")
	})
}
