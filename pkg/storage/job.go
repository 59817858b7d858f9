package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Inside a transaction the insert is
// atomic with the surrounding writes.
type JobStorage interface {
	// AddJob enqueues a job and returns its queue ID. inserted is false when
	// the queue skipped the job as a duplicate of an existing unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (id int64, inserted bool, err error)
}
