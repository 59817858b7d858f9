package estimator

import (
	"context"
	"estimator/pkg/blobstore"
	"estimator/pkg/domain"
)

//go:generate mockgen -package mockestimator -source=interface.go -destination=mock/mockestimator.go *
type Estimator interface {
	Materials(ctx context.Context) ([]domain.Material, error)
	CreateMaterial(ctx context.Context, input domain.MaterialInput) (*domain.Material, error)
	MachineProfiles(ctx context.Context) ([]domain.MachineProfile, error)

	Upload(ctx context.Context, input UploadInput) (*domain.UploadResult, error)
	Parts(ctx context.Context) ([]domain.PartSummary, error)
	Part(ctx context.Context, id domain.PartID) (*domain.Part, error)
	DeletePart(ctx context.Context, id domain.PartID) error
	PartModel(ctx context.Context, id domain.PartID) (*blobstore.Object, error)
	PartRaw(ctx context.Context, id domain.PartID) (*RawFile, error)

	Job(ctx context.Context, id domain.JobID) (*domain.AnalysisJob, error)
	Analyze(ctx context.Context, id domain.JobID, trigger Trigger) (*domain.AnalysisJob, error)
	FailAnalysis(ctx context.Context, id domain.JobID, cause error) (*domain.AnalysisJob, error)
}

// UploadInput is a STEP file submitted for analysis.
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
	MaterialID  domain.MaterialID
	// MachineProfileID selects the machine preset; empty or unknown IDs use
	// the default profile.
	MachineProfileID string
}

// RawFile is the originally uploaded file of a part.
type RawFile struct {
	Filename string
	blobstore.Object
}

// Trigger tells what started an analysis run.
type Trigger string

const (
	// TriggerWorker is a run picked up from the job queue.
	TriggerWorker Trigger = "worker"
	// TriggerSync is a run started inline by a status poll of a stale job.
	TriggerSync Trigger = "sync"
)
