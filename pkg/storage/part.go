package storage

import (
	"context"
	"estimator/pkg/domain"
	"time"
)

// ClaimAge is the minimum age a pending job needs before it can be claimed.
type ClaimAge struct {
	// Queued is measured from created_at.
	Queued time.Duration
	// Running is measured from started_at. A run younger than this is
	// assumed to be still in progress.
	Running time.Duration
}

// PartUpdates lists the part fields to change. Zero or nil fields are left
// untouched; updated_at is always refreshed.
type PartUpdates struct {
	Status      domain.PartStatus
	ModelKey    *string
	ModelFormat *string
	Geometry    *domain.Geometry
	Stock       *domain.Stock
	Operations  []domain.Operation
	Estimate    *domain.Estimate
}

// PartStorage persists uploaded parts and their analysis blobs.
type PartStorage interface {
	StorePart(ctx context.Context, part domain.Part) (*domain.Part, error)
	// PartByID returns nil when the part does not exist.
	PartByID(ctx context.Context, id domain.PartID) (*domain.Part, error)
	// Parts returns every part, newest first.
	Parts(ctx context.Context) ([]domain.PartSummary, error)
	// UpdatePart returns the updated row, or nil when the part does not exist.
	UpdatePart(ctx context.Context, id domain.PartID, updates PartUpdates) (*domain.Part, error)
	// DeletePart removes the part and its jobs and returns the deleted row,
	// or nil when it did not exist.
	DeletePart(ctx context.Context, id domain.PartID) (*domain.Part, error)
}

// AnalysisJobUpdates lists the job fields to change. Zero or nil fields are
// left untouched. An empty ErrorMessage clears the stored message.
type AnalysisJobUpdates struct {
	Status       domain.JobStatus
	ErrorMessage *string
	QueueJobID   *int64
	CompletedAt  *time.Time
}

// AnalysisJobStorage persists analysis jobs.
type AnalysisJobStorage interface {
	StoreAnalysisJob(ctx context.Context, job domain.AnalysisJob) (*domain.AnalysisJob, error)
	// AnalysisJobByID returns nil when the job does not exist.
	AnalysisJobByID(ctx context.Context, id domain.JobID) (*domain.AnalysisJob, error)
	UpdateAnalysisJob(ctx context.Context, id domain.JobID, updates AnalysisJobUpdates) (*domain.AnalysisJob, error)
	// ClaimAnalysisJob atomically moves a job to running and stamps
	// started_at. Ages are measured by the database clock. It returns nil
	// when the job is terminal, too recent, or missing.
	ClaimAnalysisJob(ctx context.Context, id domain.JobID, age ClaimAge) (*domain.AnalysisJob, error)
}
