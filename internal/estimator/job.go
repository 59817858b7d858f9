package estimator

import (
	"estimator/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AnalyzePartArgs contains the arguments of an analysis job submitted to
// River. Every upload gets its own analysis job, so the arguments double as
// the unique key and a retried insert never runs the same job twice.
type AnalyzePartArgs struct {
	PartID domain.PartID `json:"part_id" river:"unique"`
	JobID  domain.JobID  `json:"job_id"  river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewAnalyzePartArgs builds the queue arguments for an analysis job.
func NewAnalyzePartArgs(partID domain.PartID, jobID domain.JobID, maxAttempts int) AnalyzePartArgs {
	return AnalyzePartArgs{PartID: partID, JobID: jobID, maxAttempts: maxAttempts}
}

// Kind returns the River job kind used to register and dispatch the analysis worker.
func (args AnalyzePartArgs) Kind() string { return "AnalyzePart" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args AnalyzePartArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
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
