package postgres_test

import (
	"context"
	"errors"
	"estimator/pkg/domain"
	"estimator/pkg/storage"
	"estimator/pkg/storage/postgres"
	"testing"

	"github.com/stretchr/testify/require"
)

func materialCodes(t *testing.T, s storage.MaterialStorage) []string {
	t.Helper()

	materials, err := s.Materials(context.Background())
	require.NoError(t, err)

	codes := make([]string, 0, len(materials))
	for _, m := range materials {
		codes = append(codes, m.Code)
	}

	return codes
}

var titanium = domain.Material{Code: "TI6AL4V", Name: "Titanium Grade 5", DensityGCm3: 4.43, PricePerKg: 28, AllowanceMM: 2}

func TestPgSQL_BeginAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StoreMaterial(ctx, titanium)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.NotContains(t, materialCodes(t, pg), "TI6AL4V")

	tx, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.StoreMaterial(ctx, titanium)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.Contains(t, materialCodes(t, pg), "TI6AL4V")
}

func TestPgSQL_WithTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreMaterial(ctx, titanium)

		return e
	})
	require.NoError(t, err)
	require.Contains(t, materialCodes(t, pg), "TI6AL4V")

	boom := errors.New("boom")
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreMaterial(ctx, domain.Material{Code: "INCONEL718", Name: "Inconel 718", DensityGCm3: 8.19, PricePerKg: 45})

		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NotContains(t, materialCodes(t, pg), "INCONEL718")
}
