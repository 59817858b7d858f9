package apiclient

import (
	"context"
	"estimator/pkg/domain"
	"time"
)

// DefaultPollInterval is the delay between two job status requests.
const DefaultPollInterval = 1800 * time.Millisecond

// JobUpdateFunc receives every polled job, or the error of a failed poll.
type JobUpdateFunc func(job *domain.AnalysisJob, err error)

// WaitForJob polls a job every interval until it reaches a terminal status
// and returns it. Failed polls are reported to onUpdate and polling goes
// on; only ctx ends the wait early.
func (c *Client) WaitForJob(ctx context.Context,
	id domain.JobID,
	interval time.Duration,
	onUpdate JobUpdateFunc) (*domain.AnalysisJob, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		job, err := c.Job(ctx, id)
		if onUpdate != nil {
			onUpdate(job, err)
		}
		if err == nil && job.Status.Terminal() {
			return job, nil
		}
	}
}
