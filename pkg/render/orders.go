package render

import (
	"estimator/pkg/domain"
	"strconv"
)

// Orders renders the sales order table.
func (r *Renderer) Orders(orders []domain.Order) error {
	if ok, err := r.data(orders); ok {
		return err
	}
	if len(orders) == 0 {
		return r.println(r.st.muted.Render("No pending orders."))
	}

	rows := make([][]string, 0, len(orders))
	for i, o := range orders {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), o.ID, o.Customer, o.Product, strconv.Itoa(o.Qty), dash(o.Due),
		})
	}

	return r.println(r.table([]string{"#", "ID", "CUSTOMER", "PRODUCT", "QTY", "DUE"}, rows))
}

// WorkOrders renders the work order table.
func (r *Renderer) WorkOrders(work []domain.WorkOrder) error {
	if ok, err := r.data(work); ok {
		return err
	}
	if len(work) == 0 {
		return r.println(r.st.muted.Render("No work orders."))
	}

	rows := make([][]string, 0, len(work))
	for i, w := range work {
		status := w.Status
		if status == "" {
			status = domain.WorkOrderOpen
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1), w.ID, w.Ref, w.Customer, w.Product, strconv.Itoa(w.Qty), dash(w.Due), string(status),
		})
	}

	return r.println(r.table([]string{"#", "ID", "REF", "CUSTOMER", "PRODUCT", "QTY", "DUE", "STATUS"}, rows))
}

// Order renders a single sales order.
func (r *Renderer) Order(o *domain.Order) error {
	return r.Orders([]domain.Order{*o})
}

// WorkOrder renders a single work order.
func (r *Renderer) WorkOrder(w *domain.WorkOrder) error {
	return r.WorkOrders([]domain.WorkOrder{*w})
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
