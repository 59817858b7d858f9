package postgres

import (
	"context"
	"encoding/json"
	"estimator/pkg/docstore"
	"estimator/pkg/serrors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	documentsTable = "documents"
)

func (p *PgSQL) GetAll(ctx context.Context, collection string) ([]docstore.Document, error) {
	var rows []PgDocument
	if err := p.Builder.From(documentsTable).
		Select(&PgDocument{}).
		Where(goqu.I("collection").Eq(collection)).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch documents from pg: %w", err)
	}

	out := make([]docstore.Document, 0, len(rows))
	for _, row := range rows {
		var fields map[string]any
		if err := json.Unmarshal(row.Fields, &fields); err != nil {
			return nil, fmt.Errorf("could not unmarshal document %s/%s: %w", collection, row.ID, err)
		}
		out = append(out, docstore.Document{ID: row.ID, CreatedAt: row.CreatedAt, Fields: fields})
	}

	return out, nil
}

func (p *PgSQL) AddDoc(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.NewString()
	if err := p.upsertDoc(ctx, collection, id, fields, false); err != nil {
		return "", err
	}

	return id, nil
}

func (p *PgSQL) PutDoc(ctx context.Context, collection, id string, fields map[string]any) error {
	return p.upsertDoc(ctx, collection, id, fields, true)
}

func (p *PgSQL) upsertDoc(ctx context.Context, collection, id string, fields map[string]any, replace bool) error {
	raw, err := marshalFields(fields)
	if err != nil {
		return err
	}

	ds := p.Builder.Insert(documentsTable).Rows(goqu.Record{
		"collection": collection,
		"id":         id,
		"fields":     goqu.L("?::jsonb", raw),
	})
	if replace {
		ds = ds.OnConflict(goqu.DoUpdate("collection, id", goqu.Record{
			"fields":     goqu.L("EXCLUDED.fields"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}))
	}

	if _, err := ds.Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store document %s/%s into pg: %w", collection, id, err)
	}

	return nil
}

// UpdateDoc merges patch into the stored fields with the jsonb || operator.
func (p *PgSQL) UpdateDoc(ctx context.Context, collection, id string, patch map[string]any) error {
	raw, err := marshalFields(patch)
	if err != nil {
		return err
	}

	res, err := p.Builder.Update(documentsTable).
		Set(goqu.Record{
			"fields":     goqu.L("fields || ?::jsonb", raw),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(docKey(collection, id)...).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update document %s/%s in pg: %w", collection, id, err)
	}

	return requireAffected(res.RowsAffected, collection, id)
}

func (p *PgSQL) DeleteDoc(ctx context.Context, collection, id string) error {
	res, err := p.Builder.Delete(documentsTable).
		Where(docKey(collection, id)...).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete document %s/%s in pg: %w", collection, id, err)
	}

	return requireAffected(res.RowsAffected, collection, id)
}

func (p *PgSQL) DropCollection(ctx context.Context, collection string) error {
	if _, err := p.Builder.Delete(documentsTable).
		Where(goqu.I("collection").Eq(collection)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not drop collection %s in pg: %w", collection, err)
	}

	return nil
}

func docKey(collection, id string) []exp.Expression {
	return []exp.Expression{
		goqu.I("collection").Eq(collection),
		goqu.I("id").Eq(id),
	}
}

func marshalFields(fields map[string]any) (string, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("could not marshal document fields: %w", err)
	}

	return string(raw), nil
}

func requireAffected(rowsAffected func() (int64, error), collection, id string) error {
	n, err := rowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if n == 0 {
		return serrors.With(serrors.ErrNotFound, "document %s/%s not found", collection, id)
	}

	return nil
}
