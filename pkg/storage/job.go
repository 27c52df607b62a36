package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs,
// used for the deferred WHOIS augmentation. The insert should be atomic with
// respect to any surrounding transaction when the backend supports it, so an
// appraisal row and its augmentation job land together or not at all.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean reports
	// whether the job was actually inserted (unique jobs may be skipped).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
