package estimator

import (
	"estimator/internal/config"
	"estimator/pkg/blobstore"
	"estimator/pkg/domain"
	"estimator/pkg/storage"
	"time"
)

// Options configure uploads and the analysis pipeline. These settings are
// typically derived from application configuration.
type Options struct {
	// RawBucket holds uploaded STEP files.
	RawBucket string
	// ModelBucket holds generated preview models.
	ModelBucket string
	// MaxAttempts is the maximum number of attempts the background worker
	// makes for an analysis job before marking it failed.
	MaxAttempts int
	// SyncFallbackAfter is how long a job may stay queued or running before
	// a status request runs the analysis inline.
	SyncFallbackAfter time.Duration
	// DefaultMachineProfile is used when an upload names no profile.
	DefaultMachineProfile string
	// MaxUploadBytes rejects larger uploads; zero disables the check.
	MaxUploadBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RawBucket:             cfg.Storage.RawBucket,
		ModelBucket:           cfg.Storage.ModelBucket,
		MaxAttempts:           cfg.Analysis.MaxAttempts,
		SyncFallbackAfter:     cfg.Analysis.SyncFallbackAfter,
		DefaultMachineProfile: cfg.Analysis.DefaultMachineProfile,
		MaxUploadBytes:        cfg.HTTP.MaxUploadBytes,
	}
}

// Deps are the collaborators of the estimator.
type Deps struct {
	Storage storage.Storage
	// Raw stores uploads, usually wrapped with blobstore.NewZstd.
	Raw blobstore.Store
	// Models stores preview models.
	Models blobstore.Store
	// Profiles is the machine profile catalog; nil uses the built-in profiles.
	Profiles []domain.MachineProfile
	// Now defaults to time.Now.
	Now func() time.Time
}

// estimator is the concrete implementation of the Estimator interface. It
// coordinates the storage layer, the object store and the job queue.
type estimator struct {
	options  Options
	storage  storage.Storage
	raw      blobstore.Store
	models   blobstore.Store
	profiles []domain.MachineProfile
	now      func() time.Time
}

// New creates a new Estimator backed by deps and configured with options.
func New(deps Deps, options Options) Estimator {
	profiles := deps.Profiles
	if len(profiles) == 0 {
		profiles = domain.DefaultMachineProfiles()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	if options.DefaultMachineProfile == "" {
		options.DefaultMachineProfile = domain.DefaultMachineProfileID
	}

	return &estimator{
		options:  options,
		storage:  deps.Storage,
		raw:      deps.Raw,
		models:   deps.Models,
		profiles: profiles,
		now:      now,
	}
}
