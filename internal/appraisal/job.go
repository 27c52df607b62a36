package appraisal

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// WhoisAugmentArgs contains the arguments for a deferred WHOIS augmentation
// job submitted to River. The appraisal ID is the unique key so at most one
// augmentation ever runs per appraisal row.
type WhoisAugmentArgs struct {
	// AppraisalID is the stored appraisal the snapshot will be patched into.
	// It is marked as unique so River can enforce one job per appraisal
	// according to InsertOpts.UniqueOpts.
	AppraisalID uuid.UUID `json:"appraisalId" river:"unique"`
	// Domain is the name to look up. Not part of the unique key: the ID
	// already pins the row.
	Domain string `json:"domain"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the
// augmentation worker.
func (args WhoisAugmentArgs) Kind() string { return "WhoisAugmentJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including the maximum retry attempts and uniqueness constraints to prevent
// duplicate augmentations for the same appraisal across job states.
func (args WhoisAugmentArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// make sure we only have one job per appraisal in any state
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
