package postgres

import (
	"context"
	"estimator/pkg/domain"
	"estimator/pkg/storage"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	analysisJobsTable = "analysis_jobs"
)

func (p *PgSQL) StoreAnalysisJob(ctx context.Context, job domain.AnalysisJob) (*domain.AnalysisJob, error) {
	var row PgAnalysisJob
	row.FromDomain(job)

	var stored PgAnalysisJob
	if _, err := p.Builder.Insert(analysisJobsTable).
		Rows(row).
		Returning(&PgAnalysisJob{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store analysis job into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) AnalysisJobByID(ctx context.Context, id domain.JobID) (*domain.AnalysisJob, error) {
	var row PgAnalysisJob
	found, err := p.Builder.From(analysisJobsTable).
		Select(&PgAnalysisJob{}).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch analysis job by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateAnalysisJob(ctx context.Context,
	id domain.JobID,
	updates storage.AnalysisJobUpdates) (*domain.AnalysisJob, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.ErrorMessage != nil {
		if *updates.ErrorMessage == "" {
			rec["error_message"] = goqu.L("NULL")
		} else {
			rec["error_message"] = *updates.ErrorMessage
		}
	}
	if updates.QueueJobID != nil {
		rec["queue_job_id"] = *updates.QueueJobID
	}
	if updates.CompletedAt != nil {
		rec["completed_at"] = *updates.CompletedAt
	}

	var row PgAnalysisJob
	found, err := p.Builder.Update(analysisJobsTable).
		Set(rec).
		Where(goqu.I("id").Eq(string(id))).
		Returning(&PgAnalysisJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update analysis job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ClaimAnalysisJob moves a queued or stale running job to running in a
// single statement, so concurrent claimers cannot both win.
func (p *PgSQL) ClaimAnalysisJob(ctx context.Context,
	id domain.JobID,
	age storage.ClaimAge) (*domain.AnalysisJob, error) {

	var row PgAnalysisJob
	found, err := p.Builder.Update(analysisJobsTable).
		Set(goqu.Record{
			"status":     string(domain.JobStatusRunning),
			"started_at": goqu.L("CURRENT_TIMESTAMP"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(string(id)),
			goqu.Or(
				goqu.And(
					goqu.I("status").Eq(string(domain.JobStatusQueued)),
					goqu.I("created_at").Lte(cutoff(age.Queued)),
				),
				goqu.And(
					goqu.I("status").Eq(string(domain.JobStatusRunning)),
					goqu.I("started_at").Lte(cutoff(age.Running)),
				),
			),
		).
		Returning(&PgAnalysisJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not claim analysis job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// cutoff is the database time age ago.
func cutoff(age time.Duration) exp.LiteralExpression {
	return goqu.L("CURRENT_TIMESTAMP - ?::interval", fmt.Sprintf("%d milliseconds", age.Milliseconds()))
}
