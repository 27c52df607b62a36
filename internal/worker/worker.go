// Package worker hosts background job processing for the appraiser: the
// deferred WHOIS augmentation that patches registration data into stored
// appraisals after the response has already been served.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"appraiser/pkg/logger"
	"appraiser/pkg/storage"
	"appraiser/pkg/whois"
)

// Start wires the augmentation worker into a river client and starts it on
// the given pool.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	strg storage.Storage,
	whoisClient whois.Client,
	whoisTimeout time.Duration,
	maxWorkers int) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewWhoisAugmentWorker(strg, whoisClient, whoisTimeout))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
