package postgres

import (
	"context"
	"errors"
	"estimator/pkg/domain"
	"estimator/pkg/storage"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	materialsTable = "materials"

	uniqueViolation = "23505"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (p *PgSQL) Materials(ctx context.Context) ([]domain.Material, error) {
	var rows []PgMaterial
	if err := p.Builder.From(materialsTable).
		Select(&PgMaterial{}).
		Order(goqu.I("code").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch materials from pg: %w", err)
	}

	out := make([]domain.Material, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) MaterialByID(ctx context.Context, id domain.MaterialID) (*domain.Material, error) {
	var row PgMaterial
	found, err := p.Builder.From(materialsTable).
		Select(&PgMaterial{}).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch material by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	m := row.ToDomain()

	return &m, nil
}

// StoreMaterial inserts a material. A duplicate code yields storage.ErrDuplicate.
func (p *PgSQL) StoreMaterial(ctx context.Context, material domain.Material) (*domain.Material, error) {
	var row PgMaterial
	row.FromDomain(material)

	var stored PgMaterial
	if _, err := p.Builder.Insert(materialsTable).
		Rows(row).
		Returning(&PgMaterial{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("material %s: %w", material.Code, storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store material into pg: %w", err)
	}

	m := stored.ToDomain()

	return &m, nil
}
