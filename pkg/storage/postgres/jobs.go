package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible on commit; otherwise it is inserted
// directly through the *sql.DB.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (int64, bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	if tx, ok := p.DB.(*sql.Tx); ok {
		riverClient, cErr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cErr != nil {
			return 0, false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = riverClient.InsertTx(ctx, tx, args, opts)
	} else {
		riverClient, cErr := river.NewClient(riverdatabasesql.New(p.DB.(*sql.DB)), &river.Config{})
		if cErr != nil {
			return 0, false, fmt.Errorf("could not create river queue client: %w", cErr)
		}
		res, err = riverClient.Insert(ctx, args, opts)
	}
	if err != nil {
		return 0, false, fmt.Errorf("could not insert job: %w", err)
	}

	return res.Job.ID, !res.UniqueSkippedAsDuplicate, nil
}
