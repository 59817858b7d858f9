package estimator

import (
	"context"
	"estimator/pkg/blobstore"
	"estimator/pkg/domain"
	"estimator/pkg/heuristic"
	"estimator/pkg/logger"
	"estimator/pkg/metrics"
	"estimator/pkg/serrors"
	"estimator/pkg/storage"
	"fmt"

	"go.uber.org/zap"
)

// GeometryNote marks geometry produced by the synthetic estimator.
const GeometryNote = "Heuristic geometry derived from file size and name; no STEP kernel available."

// Job returns an analysis job. A job that stayed queued or running for at
// least SyncFallbackAfter is analysed inline first, so a stalled queue never
// blocks a client that keeps polling. A failed inline run is recorded on the
// job and is not returned as an error.
func (e *estimator) Job(ctx context.Context, id domain.JobID) (*domain.AnalysisJob, error) {
	job, err := e.storage.AnalysisJobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get analysis job: %w", err)
	}
	if job == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job not found")
	}

	if !job.Status.Pending() || e.now().Sub(job.Since()) < e.options.SyncFallbackAfter {
		return job, nil
	}

	ctx = logger.WithFields(ctx, zap.String("jobID", string(id)))
	logger.Info(ctx, "analysis job is stale, running inline", zap.Time("since", job.Since()))

	analysed, err := e.Analyze(ctx, id, TriggerSync)
	if err == nil {
		return analysed, nil
	}

	logger.Warn(ctx, "inline analysis failed", zap.Error(err))
	failed, fErr := e.FailAnalysis(ctx, id, err)
	if fErr != nil {
		return nil, fmt.Errorf("could not mark analysis failed: %w", fErr)
	}

	return failed, nil
}

// Analyze claims a job and runs the analysis pipeline for its part. When the
// job cannot be claimed (already finished, or picked up by someone else too
// recently) the current job is returned unchanged. A failed worker run puts
// the job back to queued so the queue retry can claim it again. A failed
// sync run leaves it running. Callers decide when to give up with
// FailAnalysis.
func (e *estimator) Analyze(ctx context.Context, id domain.JobID, trigger Trigger) (*domain.AnalysisJob, error) {
	job, err := e.storage.ClaimAnalysisJob(ctx, id, e.claimAge(trigger))
	if err != nil {
		return nil, fmt.Errorf("could not claim analysis job: %w", err)
	}
	if job == nil {
		current, err := e.storage.AnalysisJobByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("could not get analysis job: %w", err)
		}
		if current == nil {
			return nil, serrors.With(serrors.ErrNotFound, "job not found")
		}

		logger.Debug(ctx, "analysis job not claimed", zap.String("status", string(current.Status)))

		return current, nil
	}

	start := e.now()
	done, err := e.analyze(ctx, job)
	if err != nil {
		outcome := metrics.OutcomeRetried
		if trigger == TriggerSync {
			outcome = metrics.OutcomeFailed
		}
		metrics.RecordAnalysis(string(trigger), outcome, e.now().Sub(start))
		if trigger == TriggerWorker {
			e.release(ctx, id)
		}

		return nil, err
	}
	metrics.RecordAnalysis(string(trigger), metrics.OutcomeCompleted, e.now().Sub(start))

	return done, nil
}

// release hands a job claimed by a failed worker run back to the queue.
func (e *estimator) release(ctx context.Context, id domain.JobID) {
	_, err := e.storage.UpdateAnalysisJob(ctx, id, storage.AnalysisJobUpdates{Status: domain.JobStatusQueued})
	if err != nil {
		logger.Warn(ctx, "could not release analysis job", zap.String("jobID", string(id)), zap.Error(err))
	}
}

// claimAge lets a worker take a queued job at once. A running job is only
// taken over once its run is stale, whoever claimed it.
func (e *estimator) claimAge(trigger Trigger) storage.ClaimAge {
	age := storage.ClaimAge{
		Queued:  e.options.SyncFallbackAfter,
		Running: e.options.SyncFallbackAfter,
	}
	if trigger == TriggerWorker {
		age.Queued = 0
	}

	return age
}

func (e *estimator) analyze(ctx context.Context, job *domain.AnalysisJob) (*domain.AnalysisJob, error) {
	ctx = logger.WithFields(ctx, zap.String("partID", string(job.PartID)))

	part, err := e.storage.UpdatePart(ctx, job.PartID, storage.PartUpdates{Status: domain.PartStatusProcessing})
	if err != nil {
		return nil, fmt.Errorf("could not update part: %w", err)
	}
	if part == nil {
		return nil, serrors.With(serrors.ErrNotFound, "part not found")
	}

	material, err := e.storage.MaterialByID(ctx, part.MaterialID)
	if err != nil {
		return nil, fmt.Errorf("could not get material: %w", err)
	}
	if material == nil {
		return nil, serrors.With(serrors.ErrNotFound, "material not found")
	}
	profile := domain.MachineProfileByID(e.profiles, part.MachineProfileID)

	result := heuristic.Analyze(heuristic.Input{
		Filename:  part.Filename,
		SizeBytes: part.SizeBytes,
		Material:  *material,
		Profile:   profile,
		Note:      GeometryNote,
	})

	model, err := heuristic.Preview(result.Geometry)
	if err != nil {
		return nil, fmt.Errorf("could not build preview model: %w", err)
	}
	modelKey := string(part.ID) + "/preview." + model.Format
	if err := e.models.Put(ctx, e.options.ModelBucket, modelKey, blobstore.Object{
		Data:        model.Data,
		ContentType: model.ContentType,
	}); err != nil {
		return nil, fmt.Errorf("could not store preview model: %w", err)
	}

	var done *domain.AnalysisJob
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.UpdatePart(ctx, part.ID, storage.PartUpdates{
			Status:      domain.PartStatusCompleted,
			ModelKey:    &modelKey,
			ModelFormat: &model.Format,
			Geometry:    &result.Geometry,
			Stock:       &result.Stock,
			Operations:  result.Operations,
			Estimate:    &result.Estimate,
		})
		if err != nil {
			return fmt.Errorf("could not update part: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "part not found")
		}

		completedAt := e.now().UTC()
		noError := ""
		done, err = tx.UpdateAnalysisJob(ctx, job.ID, storage.AnalysisJobUpdates{
			Status:       domain.JobStatusCompleted,
			ErrorMessage: &noError,
			CompletedAt:  &completedAt,
		})
		if err != nil {
			return fmt.Errorf("could not update analysis job: %w", err)
		}
		if done == nil {
			return serrors.With(serrors.ErrNotFound, "job not found")
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not store analysis results: %w", err)
	}

	logger.Info(ctx, "part analysed",
		zap.String("machineProfile", profile.ID),
		zap.Float64("totalCost", result.Estimate.TotalCost))

	return done, nil
}

// FailAnalysis marks a job and its part failed with the message of cause.
func (e *estimator) FailAnalysis(ctx context.Context, id domain.JobID, cause error) (*domain.AnalysisJob, error) {
	msg := "analysis failed"
	if cause != nil {
		msg = cause.Error()
	}

	var failed *domain.AnalysisJob
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		completedAt := e.now().UTC()
		var err error
		failed, err = tx.UpdateAnalysisJob(ctx, id, storage.AnalysisJobUpdates{
			Status:       domain.JobStatusFailed,
			ErrorMessage: &msg,
			CompletedAt:  &completedAt,
		})
		if err != nil {
			return fmt.Errorf("could not update analysis job: %w", err)
		}
		if failed == nil {
			return serrors.With(serrors.ErrNotFound, "job not found")
		}

		if _, err := tx.UpdatePart(ctx, failed.PartID, storage.PartUpdates{Status: domain.PartStatusFailed}); err != nil {
			return fmt.Errorf("could not update part: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not fail analysis: %w", err)
	}

	logger.Warn(ctx, "analysis failed", zap.String("jobID", string(id)), zap.String("reason", msg))

	return failed, nil
}
