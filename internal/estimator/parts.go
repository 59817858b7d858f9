package estimator

import (
	"context"
	"estimator/pkg/blobstore"
	"estimator/pkg/domain"
	"estimator/pkg/logger"
	"estimator/pkg/metrics"
	"estimator/pkg/serrors"
	"estimator/pkg/storage"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultFilename    = "part.step"
	defaultContentType = "application/step"
)

// CleanFilename strips any directory part of an uploaded filename.
func CleanFilename(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return defaultFilename
	}

	return name
}

// IsStepFile reports whether filename has a .step or .stp extension.
func IsStepFile(filename string) bool {
	switch strings.ToLower(path.Ext(filename)) {
	case ".step", ".stp":
		return true
	default:
		return false
	}
}

// Upload stores the raw file, then records the part, its analysis job and
// the queue job in one transaction.
func (e *estimator) Upload(ctx context.Context, input UploadInput) (*domain.UploadResult, error) {
	material, err := e.storage.MaterialByID(ctx, input.MaterialID)
	if err != nil {
		return nil, fmt.Errorf("could not get material: %w", err)
	}
	if material == nil {
		return nil, serrors.With(serrors.ErrNotFound, "material not found")
	}

	filename := CleanFilename(input.Filename)
	if !IsStepFile(filename) {
		return nil, serrors.With(serrors.ErrBadRequest, "only .step and .stp files are accepted")
	}
	if len(input.Data) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "uploaded file is empty")
	}
	if e.options.MaxUploadBytes > 0 && int64(len(input.Data)) > e.options.MaxUploadBytes {
		return nil, serrors.With(serrors.ErrTooLarge, "uploaded file exceeds %d bytes", e.options.MaxUploadBytes)
	}

	profileID := input.MachineProfileID
	if profileID == "" {
		profileID = e.options.DefaultMachineProfile
	}
	profile := domain.MachineProfileByID(e.profiles, profileID)

	contentType := input.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = defaultContentType
	}

	partID := domain.PartID(uuid.NewString())
	rawKey := string(partID) + "/" + filename
	ctx = logger.WithFields(ctx, zap.String("partID", string(partID)))

	if err := e.raw.Put(ctx, e.options.RawBucket, rawKey, blobstore.Object{
		Data:        input.Data,
		ContentType: contentType,
	}); err != nil {
		return nil, fmt.Errorf("could not store raw file: %w", err)
	}

	var job *domain.AnalysisJob
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		part, err := tx.StorePart(ctx, domain.Part{
			PartSummary: domain.PartSummary{
				ID:         partID,
				Filename:   filename,
				Status:     domain.PartStatusQueued,
				MaterialID: material.ID,
			},
			MachineProfileID: profile.ID,
			StorageKey:       rawKey,
			ContentHash:      blobstore.ContentHash(input.Data),
			SizeBytes:        int64(len(input.Data)),
		})
		if err != nil {
			return fmt.Errorf("could not store part: %w", err)
		}

		job, err = tx.StoreAnalysisJob(ctx, domain.AnalysisJob{
			ID:     domain.JobID(uuid.NewString()),
			PartID: part.ID,
			Status: domain.JobStatusQueued,
		})
		if err != nil {
			return fmt.Errorf("could not store analysis job: %w", err)
		}

		queueID, _, err := tx.AddJob(ctx, NewAnalyzePartArgs(part.ID, job.ID, e.options.MaxAttempts), nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		updated, err := tx.UpdateAnalysisJob(ctx, job.ID, storage.AnalysisJobUpdates{QueueJobID: &queueID})
		if err != nil {
			return fmt.Errorf("could not update analysis job: %w", err)
		}
		if updated != nil {
			job = updated
		}

		return nil
	}); err != nil {
		if delErr := e.raw.Delete(ctx, e.options.RawBucket, rawKey); delErr != nil {
			logger.Warn(ctx, "could not remove orphaned raw file", zap.Error(delErr))
		}

		return nil, fmt.Errorf("could not upload part: %w", err)
	}

	metrics.RecordUpload(material.Code, profile.ID, int64(len(input.Data)))
	logger.Info(ctx, "part uploaded",
		zap.String("jobID", string(job.ID)),
		zap.String("machineProfile", profile.ID),
		zap.Int("sizeBytes", len(input.Data)))

	return &domain.UploadResult{
		PartID: partID,
		JobID:  job.ID,
		Status: job.Status,
	}, nil
}

func (e *estimator) Parts(ctx context.Context) ([]domain.PartSummary, error) {
	parts, err := e.storage.Parts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get parts: %w", err)
	}

	return parts, nil
}

func (e *estimator) Part(ctx context.Context, id domain.PartID) (*domain.Part, error) {
	part, err := e.storage.PartByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get part: %w", err)
	}
	if part == nil {
		return nil, serrors.With(serrors.ErrNotFound, "part not found")
	}

	return part, nil
}

// DeletePart removes a part with its jobs, then its stored files. A queued
// analysis of a deleted part is cancelled by the worker.
func (e *estimator) DeletePart(ctx context.Context, id domain.PartID) error {
	part, err := e.storage.DeletePart(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete part: %w", err)
	}
	if part == nil {
		return serrors.With(serrors.ErrNotFound, "part not found")
	}

	if err := e.raw.Delete(ctx, e.options.RawBucket, part.StorageKey); err != nil {
		logger.Warn(ctx, "could not delete raw file", zap.String("key", part.StorageKey), zap.Error(err))
	}
	if part.HasModel() {
		if err := e.models.Delete(ctx, e.options.ModelBucket, *part.ModelKey); err != nil {
			logger.Warn(ctx, "could not delete model", zap.String("key", *part.ModelKey), zap.Error(err))
		}
	}

	return nil
}

func (e *estimator) PartModel(ctx context.Context, id domain.PartID) (*blobstore.Object, error) {
	part, err := e.Part(ctx, id)
	if err != nil {
		return nil, err
	}
	if !part.HasModel() {
		return nil, serrors.With(serrors.ErrNotFound, "model not generated yet")
	}

	obj, err := e.models.Get(ctx, e.options.ModelBucket, *part.ModelKey)
	if err != nil {
		return nil, fmt.Errorf("could not get model: %w", err)
	}

	return obj, nil
}

func (e *estimator) PartRaw(ctx context.Context, id domain.PartID) (*RawFile, error) {
	part, err := e.Part(ctx, id)
	if err != nil {
		return nil, err
	}

	obj, err := e.raw.Get(ctx, e.options.RawBucket, part.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("could not get raw file: %w", err)
	}

	return &RawFile{Filename: part.Filename, Object: *obj}, nil
}
