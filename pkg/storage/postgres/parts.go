package postgres

import (
	"context"
	"encoding/json"
	"estimator/pkg/domain"
	"estimator/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	partsTable = "parts"
)

func (p *PgSQL) StorePart(ctx context.Context, part domain.Part) (*domain.Part, error) {
	var row PgPart
	row.FromDomain(part)

	var stored PgPart
	if _, err := p.Builder.Insert(partsTable).
		Rows(row).
		Returning(&PgPart{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store part into pg: %w", err)
	}

	return stored.ToDomain()
}

func (p *PgSQL) PartByID(ctx context.Context, id domain.PartID) (*domain.Part, error) {
	var row PgPart
	found, err := p.Builder.From(partsTable).
		Select(&PgPart{}).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch part by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Parts returns part summaries ordered by created_at DESC, id DESC.
func (p *PgSQL) Parts(ctx context.Context) ([]domain.PartSummary, error) {
	var rows []PgPartSummary
	if err := p.Builder.From(partsTable).
		Select(&PgPartSummary{}).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch parts from pg: %w", err)
	}

	out := make([]domain.PartSummary, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpdatePart(ctx context.Context, id domain.PartID, updates storage.PartUpdates) (*domain.Part, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.ModelKey != nil {
		rec["model_key"] = *updates.ModelKey
	}
	if updates.ModelFormat != nil {
		rec["model_format"] = *updates.ModelFormat
	}

	blobs := []struct {
		column string
		set    bool
		value  any
	}{
		{"geometry_json", updates.Geometry != nil, updates.Geometry},
		{"stock_json", updates.Stock != nil, updates.Stock},
		{"operations_json", updates.Operations != nil, updates.Operations},
		{"estimate_json", updates.Estimate != nil, updates.Estimate},
	}
	for _, b := range blobs {
		if !b.set {
			continue
		}
		raw, err := json.Marshal(b.value)
		if err != nil {
			return nil, fmt.Errorf("could not marshal %s: %w", b.column, err)
		}
		rec[b.column] = goqu.L("?::jsonb", string(raw))
	}

	var row PgPart
	found, err := p.Builder.Update(partsTable).
		Set(rec).
		Where(goqu.I("id").Eq(string(id))).
		Returning(&PgPart{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update part in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeletePart removes a part. Its analysis jobs go with it through the
// foreign key cascade.
func (p *PgSQL) DeletePart(ctx context.Context, id domain.PartID) (*domain.Part, error) {
	var row PgPart
	found, err := p.Builder.Delete(partsTable).
		Where(goqu.I("id").Eq(string(id))).
		Returning(&PgPart{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete part in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
