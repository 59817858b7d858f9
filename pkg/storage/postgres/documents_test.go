package postgres_test

import (
	"context"
	"estimator/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Documents(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	const col = "legacySalesOrders"

	id, err := pg.AddDoc(ctx, col, map[string]any{"customer": "Acme", "qty": 2})
	require.NoError(t, err)

	require.NoError(t, pg.UpdateDoc(ctx, col, id, map[string]any{"qty": 6, "due": "2025-07-01"}))

	docs, err := pg.GetAll(ctx, col)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, id, docs[0].ID)
	require.Equal(t, "Acme", docs[0].Fields["customer"])
	require.EqualValues(t, 6, docs[0].Fields["qty"])
	require.Equal(t, "2025-07-01", docs[0].Fields["due"])

	require.ErrorIs(t, pg.UpdateDoc(ctx, col, "nope", map[string]any{"qty": 1}), serrors.ErrNotFound)
	require.ErrorIs(t, pg.DeleteDoc(ctx, col, "nope"), serrors.ErrNotFound)

	require.NoError(t, pg.DeleteDoc(ctx, col, id))
	docs, err = pg.GetAll(ctx, col)
	require.NoError(t, err)
	require.Empty(t, docs)
}

func TestPgSQL_PutDocAndDropCollection(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, pg.PutDoc(ctx, "settings", "mock_mode", map[string]any{"active": true}))
	require.NoError(t, pg.PutDoc(ctx, "settings", "mock_mode", map[string]any{"active": false}))

	docs, err := pg.GetAll(ctx, "settings")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, false, docs[0].Fields["active"])

	require.NoError(t, pg.DropCollection(ctx, "settings"))
	docs, err = pg.GetAll(ctx, "settings")
	require.NoError(t, err)
	require.Empty(t, docs)
}
