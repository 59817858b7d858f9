package orders_test

import (
	"context"
	"estimator/pkg/docstore"
	"estimator/pkg/docstore/boltstore"
	"estimator/pkg/domain"
	"estimator/pkg/orders"
	"estimator/pkg/serrors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newDesk(t *testing.T) (*orders.Desk, docstore.Store) {
	t.Helper()

	store, err := boltstore.Open(filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	desk := orders.NewDesk(store,
		orders.WithClock(func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }),
		orders.WithRefNumber(func() int { return 4242 }),
	)

	return desk, store
}

func TestDesk_AddOrder(t *testing.T) {
	ctx := context.Background()
	desk, _ := newDesk(t)

	order, err := desk.AddOrder(ctx, domain.OrderInput{Customer: "  Acme ", Product: " Flange ", Qty: 0, Due: "2026-04-01"})
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, "Acme", order.Customer)
	require.Equal(t, "Flange", order.Product)
	require.Equal(t, 1, order.Qty)

	_, err = desk.AddOrder(ctx, domain.OrderInput{Customer: " ", Product: "Shaft", Qty: 2})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	require.NoError(t, desk.Load(ctx))
	listed := desk.Orders()
	require.Len(t, listed, 1)
	require.Equal(t, order.ID, listed[0].ID)
	require.Equal(t, 1, listed[0].Qty)
	require.False(t, listed[0].CreatedAt.IsZero())
}

func TestDesk_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	desk, _ := newDesk(t)

	first, err := desk.AddOrder(ctx, domain.OrderInput{Customer: "A", Product: "P1", Qty: 1})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := desk.AddOrder(ctx, domain.OrderInput{Customer: "B", Product: "P2", Qty: 1})
	require.NoError(t, err)

	listed, err := desk.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, second.ID, listed[0].ID)
	require.Equal(t, first.ID, listed[1].ID)
}

func TestDesk_DeleteOrder(t *testing.T) {
	ctx := context.Background()
	desk, _ := newDesk(t)

	order, err := desk.AddOrder(ctx, domain.OrderInput{Customer: "Acme", Product: "Flange", Qty: 3})
	require.NoError(t, err)

	require.NoError(t, desk.DeleteOrder(ctx, order.ID))
	require.Empty(t, desk.Orders())

	require.NoError(t, desk.Load(ctx))
	require.Empty(t, desk.Orders())

	require.ErrorIs(t, desk.DeleteOrder(ctx, order.ID), serrors.ErrNotFound)
}

func TestDesk_ConvertAndComplete(t *testing.T) {
	ctx := context.Background()
	desk, _ := newDesk(t)

	order, err := desk.AddOrder(ctx, domain.OrderInput{Customer: "Acme", Product: "Flange", Qty: 3, Due: "2026-04-01"})
	require.NoError(t, err)

	work, err := desk.ConvertToWorkOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, "WE-2026-4242", work.Ref)
	require.Equal(t, domain.WorkOrderOpen, work.Status)
	require.Equal(t, "Acme", work.Customer)
	require.Equal(t, 3, work.Qty)
	require.Equal(t, "2026-04-01", work.Due)

	require.NoError(t, desk.Load(ctx))
	require.Empty(t, desk.Orders())
	require.Len(t, desk.WorkOrders(), 1)

	done, err := desk.CompleteWorkOrder(ctx, work.ID)
	require.NoError(t, err)
	require.Equal(t, domain.WorkOrderCompleted, done.Status)
	require.Equal(t, "WE-2026-4242", done.Ref)

	_, err = desk.ConvertToWorkOrder(ctx, order.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	require.NoError(t, desk.DeleteWorkOrder(ctx, work.ID))
	require.Empty(t, desk.WorkOrders())
}

func TestDesk_LegacyStatuses(t *testing.T) {
	ctx := context.Background()
	desk, store := newDesk(t)

	_, err := store.AddDoc(ctx, orders.CollectionWorkOrders, map[string]any{"ref": "WE-2024-1001", "status": "Acik", "qty": 2})
	require.NoError(t, err)
	_, err = store.AddDoc(ctx, orders.CollectionWorkOrders, map[string]any{"ref": "WE-2024-1002", "status": "Tamamlandi", "qty": 1})
	require.NoError(t, err)

	work, err := desk.ListWorkOrders(ctx)
	require.NoError(t, err)
	require.Len(t, work, 2)

	statuses := map[string]domain.WorkOrderStatus{}
	for _, w := range work {
		statuses[w.Ref] = w.Status
	}
	require.Equal(t, domain.WorkOrderOpen, statuses["WE-2024-1001"])
	require.Equal(t, domain.WorkOrderCompleted, statuses["WE-2024-1002"])
}

func TestDesk_ClearAll(t *testing.T) {
	ctx := context.Background()
	desk, _ := newDesk(t)

	order, err := desk.AddOrder(ctx, domain.OrderInput{Customer: "Acme", Product: "Flange", Qty: 3})
	require.NoError(t, err)
	_, err = desk.AddOrder(ctx, domain.OrderInput{Customer: "Beta", Product: "Shaft", Qty: 1})
	require.NoError(t, err)
	_, err = desk.ConvertToWorkOrder(ctx, order.ID)
	require.NoError(t, err)

	require.NoError(t, desk.ClearAll(ctx))
	require.Empty(t, desk.Orders())
	require.Empty(t, desk.WorkOrders())

	require.NoError(t, desk.Load(ctx))
	require.Empty(t, desk.Orders())
	require.Empty(t, desk.WorkOrders())
}
