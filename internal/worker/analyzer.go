package worker

import (
	"context"
	"errors"
	"estimator/internal/estimator"
	"estimator/pkg/logger"
	"estimator/pkg/metrics"
	"estimator/pkg/serrors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// AnalyzePartWorker is a River worker running the analysis pipeline of an
// uploaded part.
//
// Error handling: a missing part, job or material, or invalid input, can not
// be fixed by a retry, so the job is failed and the queue job cancelled.
// Other errors are returned for River to retry, and the last attempt marks
// the analysis failed before giving up.
type AnalyzePartWorker struct {
	river.WorkerDefaults[estimator.AnalyzePartArgs]

	estimator estimator.Estimator
}

// NewAnalyzePartWorker constructs an AnalyzePartWorker using the provided estimator.
func NewAnalyzePartWorker(est estimator.Estimator) *AnalyzePartWorker {
	return &AnalyzePartWorker{estimator: est}
}

// Timeout bounds one analysis attempt.
func (w *AnalyzePartWorker) Timeout(*river.Job[estimator.AnalyzePartArgs]) time.Duration {
	return 2 * time.Minute
}

func (w *AnalyzePartWorker) Work(ctx context.Context, job *river.Job[estimator.AnalyzePartArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("queueJobID", job.ID),
		zap.String("jobID", string(job.Args.JobID)),
		zap.String("partID", string(job.Args.PartID)),
		zap.Int("attempt", job.Attempt))

	start := time.Now()
	_, err := w.estimator.Analyze(ctx, job.Args.JobID, estimator.TriggerWorker)
	if err == nil {
		return nil
	}

	if errors.Is(err, serrors.ErrNotFound) || errors.Is(err, serrors.ErrBadRequest) {
		logger.Warn(ctx, "analysis can not succeed, cancelling job", zap.Error(err))
		w.fail(ctx, job, err, start)

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, "error in analysing part", zap.Error(err))

	if job.Attempt >= job.MaxAttempts {
		w.fail(ctx, job, err, start)
	}

	return fmt.Errorf("could not analyse part: %w", err)
}

// fail records the failure on the analysis job. A job deleted together with
// its part is not an error.
func (w *AnalyzePartWorker) fail(ctx context.Context,
	job *river.Job[estimator.AnalyzePartArgs],
	cause error,
	start time.Time) {
	metrics.RecordAnalysis(string(estimator.TriggerWorker), metrics.OutcomeFailed, time.Since(start))

	if _, err := w.estimator.FailAnalysis(ctx, job.Args.JobID, cause); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return
		}
		logger.Error(ctx, "could not mark analysis failed", zap.Error(err))
	}
}
