package v1handler

import (
	"encoding/json"
	"estimator/pkg/domain"
	"estimator/pkg/serrors"
	"net/http"
)

// ListOrders returns every sales order.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.deps.Orders.ListOrders(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, orders)
}

// CreateOrder records a sales order for an estimated part.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input domain.OrderInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)).Decode(&input); err != nil {
		h.writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid order payload"))

		return
	}

	order, err := h.deps.Orders.AddOrder(r.Context(), input)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, order)
}

// DeleteOrder deletes a sales order by ID.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Orders.DeleteOrder(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearOrders deletes every sales and work order.
func (h *Handler) ClearOrders(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Orders.ClearAll(r.Context()); err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ConvertOrder turns a sales order into a work order.
func (h *Handler) ConvertOrder(w http.ResponseWriter, r *http.Request) {
	work, err := h.deps.Orders.ConvertToWorkOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, work)
}

// ListWorkOrders returns every work order.
func (h *Handler) ListWorkOrders(w http.ResponseWriter, r *http.Request) {
	work, err := h.deps.Orders.ListWorkOrders(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, work)
}

// CompleteWorkOrder marks a work order as done.
func (h *Handler) CompleteWorkOrder(w http.ResponseWriter, r *http.Request) {
	work, err := h.deps.Orders.CompleteWorkOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, work)
}

// DeleteWorkOrder deletes a work order by ID.
func (h *Handler) DeleteWorkOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Orders.DeleteWorkOrder(r.Context(), r.PathValue("id")); err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
