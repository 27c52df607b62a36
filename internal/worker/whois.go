package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"appraiser/internal/appraisal"
	"appraiser/pkg/domain"
	"appraiser/pkg/logger"
	"appraiser/pkg/serrors"
	"appraiser/pkg/storage"
	"appraiser/pkg/whois"
)

// WhoisAugmentWorker executes deferred WHOIS lookups and patches the result
// into the stored appraisal. The patch is fire-and-forget from the caller's
// point of view: nothing here ever reaches the original response. The work
// is idempotent: a missing row or an already-patched appraisal is a no-op,
// so river's at-least-once delivery is safe.
type WhoisAugmentWorker struct {
	river.WorkerDefaults[appraisal.WhoisAugmentArgs]

	storage storage.Storage
	whois   whois.Client
	timeout time.Duration
}

// NewWhoisAugmentWorker constructs the augmentation worker. The timeout
// bounds each WHOIS lookup, not the whole job.
func NewWhoisAugmentWorker(strg storage.Storage, whoisClient whois.Client, timeout time.Duration) *WhoisAugmentWorker {
	return &WhoisAugmentWorker{
		storage: strg,
		whois:   whoisClient,
		timeout: timeout,
	}
}

// Work processes one augmentation job.
func (w *WhoisAugmentWorker) Work(ctx context.Context, job *river.Job[appraisal.WhoisAugmentArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("domain", job.Args.Domain))

	if w.whois == nil {
		// enqueued before the integration was torn down; nothing to do
		return river.JobCancel(serrors.With(serrors.ErrConfig, "no whois client configured")) //nolint: wrapcheck
	}

	id := domain.AppraisalID(job.Args.AppraisalID)

	existing, err := w.storage.AppraisalByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not load appraisal: %w", err)
	}
	if existing == nil {
		logger.Info(ctx, "appraisal no longer exists, dropping augmentation")

		return nil
	}
	if existing.Whois != nil {
		// already patched by an earlier delivery
		return nil
	}

	lookupCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	snapshot, err := w.whois.Lookup(lookupCtx, job.Args.Domain)
	if err != nil {
		if errors.Is(err, serrors.ErrConfig) {
			// retrying cannot help until credentials change
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Warn(ctx, "whois lookup failed", zap.Error(err))

		return fmt.Errorf("could not look up whois: %w", err)
	}

	patched, err := w.storage.PatchAppraisalWhois(ctx, id, *snapshot)
	if err != nil {
		return fmt.Errorf("could not patch appraisal: %w", err)
	}
	if !patched {
		logger.Info(ctx, "appraisal vanished before patch, dropping augmentation")

		return nil
	}

	logger.Info(ctx, "appraisal augmented with whois data")

	return nil
}
