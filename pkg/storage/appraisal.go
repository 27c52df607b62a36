package storage

import (
	"context"
	"time"

	"appraiser/pkg/domain"
)

// AppraisalStorage defines persistence operations for completed appraisals.
type AppraisalStorage interface {
	// StoreAppraisal inserts a completed appraisal and returns the stored row
	// as it exists in the database (including generated fields).
	StoreAppraisal(ctx context.Context, appraisal domain.Appraisal) (domain.Appraisal, error)

	// AppraisalByID fetches one appraisal. Returns nil when not found.
	AppraisalByID(ctx context.Context, id domain.AppraisalID) (*domain.Appraisal, error)

	// LatestAppraisalByDomain returns the most recent appraisal of the domain
	// created at or after since, restricted to rows whose recorded options
	// hash matches optionsHash or that carry no hash at all (rows written
	// before option hashing existed remain reusable). Returns nil when no
	// row qualifies.
	LatestAppraisalByDomain(ctx context.Context, domainName string, optionsHash string, since time.Time) (*domain.Appraisal, error)

	// PatchAppraisalWhois fills in the WHOIS snapshot of an existing
	// appraisal. It reports false without error when the appraisal does not
	// exist (deleted or never persisted); re-applying the same snapshot is a
	// no-op. The appraisal is otherwise immutable.
	PatchAppraisalWhois(ctx context.Context, id domain.AppraisalID, snapshot domain.WhoisSnapshot) (bool, error)
}
