// Package orders implements the sales and work order desk on top of a
// docstore.Store. Sales orders are converted into work orders, which are
// then completed on the shop floor.
package orders

import (
	"context"
	"estimator/pkg/docstore"
	"estimator/pkg/domain"
	"estimator/pkg/serrors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"
)

// Collection names shared with existing order data.
const (
	CollectionOrders     = "legacySalesOrders"
	CollectionWorkOrders = "legacyWorkOrders"
)

// Desk keeps the last loaded orders and work orders and applies changes to
// both the store and its local lists. Desk is safe for concurrent use.
type Desk struct {
	store docstore.Store
	now   func() time.Time
	// refNumber returns the numeric part of new work order references.
	refNumber func() int

	mu         sync.RWMutex
	orders     []domain.Order
	workOrders []domain.WorkOrder
}

// Option customises a Desk.
type Option func(*Desk)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Desk) { d.now = now }
}

// WithRefNumber replaces the random work order reference number.
func WithRefNumber(fn func() int) Option {
	return func(d *Desk) { d.refNumber = fn }
}

// NewDesk returns a desk keeping its orders in store.
func NewDesk(store docstore.Store, opts ...Option) *Desk {
	d := &Desk{
		store:     store,
		now:       time.Now,
		refNumber: func() int { return 1000 + rand.IntN(9000) }, //nolint: gosec
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// ListOrders reads the sales orders from the store, newest first.
func (d *Desk) ListOrders(ctx context.Context) ([]domain.Order, error) {
	docs, err := d.store.GetAll(ctx, CollectionOrders)
	if err != nil {
		return nil, fmt.Errorf("could not get orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		var o domain.Order
		if err := docstore.Decode(doc, &o); err != nil {
			return nil, err //nolint: wrapcheck
		}
		orders = append(orders, o)
	}
	slices.SortStableFunc(orders, func(a, b domain.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return orders, nil
}

// ListWorkOrders reads the work orders from the store, newest first.
func (d *Desk) ListWorkOrders(ctx context.Context) ([]domain.WorkOrder, error) {
	docs, err := d.store.GetAll(ctx, CollectionWorkOrders)
	if err != nil {
		return nil, fmt.Errorf("could not get work orders: %w", err)
	}

	work := make([]domain.WorkOrder, 0, len(docs))
	for _, doc := range docs {
		var w domain.WorkOrder
		if err := docstore.Decode(doc, &w); err != nil {
			return nil, err //nolint: wrapcheck
		}
		w.Status = normalizeStatus(w.Status)
		work = append(work, w)
	}
	slices.SortStableFunc(work, func(a, b domain.WorkOrder) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return work, nil
}

// normalizeStatus maps the statuses written by earlier order tools.
func normalizeStatus(s domain.WorkOrderStatus) domain.WorkOrderStatus {
	switch strings.ToLower(string(s)) {
	case "", "open", "acik":
		return domain.WorkOrderOpen
	case "completed", "tamamlandi":
		return domain.WorkOrderCompleted
	default:
		return s
	}
}

// Load replaces the local lists with the store contents.
func (d *Desk) Load(ctx context.Context) error {
	orders, err := d.ListOrders(ctx)
	if err != nil {
		return err
	}
	work, err := d.ListWorkOrders(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.orders, d.workOrders = orders, work
	d.mu.Unlock()

	return nil
}

// Orders returns the loaded sales orders.
func (d *Desk) Orders() []domain.Order {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.orders)
}

// WorkOrders returns the loaded work orders.
func (d *Desk) WorkOrders() []domain.WorkOrder {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.workOrders)
}

// AddOrder stores a new sales order. Customer and product are trimmed and
// the quantity is at least one.
func (d *Desk) AddOrder(ctx context.Context, input domain.OrderInput) (*domain.Order, error) {
	order := domain.Order{
		Customer: strings.TrimSpace(input.Customer),
		Product:  strings.TrimSpace(input.Product),
		Qty:      max(1, input.Qty),
		Due:      strings.TrimSpace(input.Due),
	}
	if order.Customer == "" || order.Product == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "customer and product are required")
	}

	fields, err := docstore.Encode(order)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	id, err := d.store.AddDoc(ctx, CollectionOrders, fields)
	if err != nil {
		return nil, fmt.Errorf("could not add order: %w", err)
	}
	order.ID = id
	order.CreatedAt = d.now().UTC()

	d.mu.Lock()
	d.orders = append([]domain.Order{order}, d.orders...)
	d.mu.Unlock()

	return &order, nil
}

// DeleteOrder deletes a sales order. Work orders made from it are kept.
func (d *Desk) DeleteOrder(ctx context.Context, id string) error {
	if err := d.store.DeleteDoc(ctx, CollectionOrders, id); err != nil {
		return fmt.Errorf("could not delete order: %w", err)
	}

	d.mu.Lock()
	d.orders = slices.DeleteFunc(d.orders, func(o domain.Order) bool { return o.ID == id })
	d.mu.Unlock()

	return nil
}

// ConvertToWorkOrder removes a sales order and creates an open work order
// from it with a WE-<year>-<number> reference.
func (d *Desk) ConvertToWorkOrder(ctx context.Context, id string) (*domain.WorkOrder, error) {
	order, err := d.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.DeleteOrder(ctx, id); err != nil {
		return nil, err
	}

	now := d.now().UTC()
	work := domain.WorkOrder{
		Ref:      fmt.Sprintf("WE-%d-%d", now.Year(), d.refNumber()),
		Customer: order.Customer,
		Product:  order.Product,
		Qty:      order.Qty,
		Due:      order.Due,
		Status:   domain.WorkOrderOpen,
	}
	fields, err := docstore.Encode(work)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	workID, err := d.store.AddDoc(ctx, CollectionWorkOrders, fields)
	if err != nil {
		return nil, fmt.Errorf("could not create work order: %w", err)
	}
	work.ID = workID
	work.CreatedAt = now

	d.mu.Lock()
	d.workOrders = append([]domain.WorkOrder{work}, d.workOrders...)
	d.mu.Unlock()

	return &work, nil
}

// findOrder looks an order up in the loaded list, then in the store.
func (d *Desk) findOrder(ctx context.Context, id string) (*domain.Order, error) {
	d.mu.RLock()
	idx := slices.IndexFunc(d.orders, func(o domain.Order) bool { return o.ID == id })
	if idx >= 0 {
		order := d.orders[idx]
		d.mu.RUnlock()

		return &order, nil
	}
	d.mu.RUnlock()

	orders, err := d.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	idx = slices.IndexFunc(orders, func(o domain.Order) bool { return o.ID == id })
	if idx < 0 {
		return nil, serrors.With(serrors.ErrNotFound, "order not found")
	}

	return &orders[idx], nil
}

// CompleteWorkOrder sets a work order to Completed.
func (d *Desk) CompleteWorkOrder(ctx context.Context, id string) (*domain.WorkOrder, error) {
	if err := d.store.UpdateDoc(ctx, CollectionWorkOrders, id, map[string]any{
		"status": string(domain.WorkOrderCompleted),
	}); err != nil {
		return nil, fmt.Errorf("could not complete work order: %w", err)
	}

	work, err := d.ListWorkOrders(ctx)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.workOrders = work
	d.mu.Unlock()

	idx := slices.IndexFunc(work, func(w domain.WorkOrder) bool { return w.ID == id })
	if idx < 0 {
		return nil, serrors.With(serrors.ErrNotFound, "work order not found")
	}

	return &work[idx], nil
}

// DeleteWorkOrder deletes a work order.
func (d *Desk) DeleteWorkOrder(ctx context.Context, id string) error {
	if err := d.store.DeleteDoc(ctx, CollectionWorkOrders, id); err != nil {
		return fmt.Errorf("could not delete work order: %w", err)
	}

	d.mu.Lock()
	d.workOrders = slices.DeleteFunc(d.workOrders, func(w domain.WorkOrder) bool { return w.ID == id })
	d.mu.Unlock()

	return nil
}

// ClearAll deletes every sales and work order.
func (d *Desk) ClearAll(ctx context.Context) error {
	for _, collection := range []string{CollectionOrders, CollectionWorkOrders} {
		if err := d.store.DropCollection(ctx, collection); err != nil {
			return fmt.Errorf("could not clear %s: %w", collection, err)
		}
	}

	d.mu.Lock()
	d.orders, d.workOrders = nil, nil
	d.mu.Unlock()

	return nil
}
