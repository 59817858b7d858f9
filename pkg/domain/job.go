package domain

import "time"

// JobID identifies an analysis job.
type JobID string

// JobStatus is the lifecycle state of an analysis job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Terminal reports whether no further transitions are expected.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Pending reports whether the job still waits for, or is in, processing.
func (s JobStatus) Pending() bool {
	return s == JobStatusQueued || s == JobStatusRunning
}

// AnalysisJob tracks one analysis run of a part.
type AnalysisJob struct {
	ID           JobID     `json:"id"`
	PartID       PartID    `json:"part_id"`
	Status       JobStatus `json:"status"`
	ErrorMessage *string   `json:"error_message"`
	// QueueJobID is the River job ID, nil for jobs that never hit the queue.
	QueueJobID  *int64     `json:"queue_job_id"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Since returns the reference time used to decide whether a pending job is
// stale: StartedAt when set, CreatedAt otherwise.
func (j AnalysisJob) Since() time.Time {
	if j.StartedAt != nil {
		return *j.StartedAt
	}

	return j.CreatedAt
}
