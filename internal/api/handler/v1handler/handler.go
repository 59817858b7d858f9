// Package v1handler implements the /api/v1 REST endpoints of the estimator
// service on top of net/http routing patterns.
package v1handler

import (
	"context"
	"estimator/internal/config"
	"estimator/internal/estimator"
	"estimator/pkg/domain"
	"net/http"
)

// Prefix is the path prefix of every v1 endpoint.
const Prefix = "/api/v1"

// OrderDesk is the part of the orders desk exposed over HTTP.
type OrderDesk interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	AddOrder(ctx context.Context, input domain.OrderInput) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ConvertToWorkOrder(ctx context.Context, id string) (*domain.WorkOrder, error)
	ListWorkOrders(ctx context.Context) ([]domain.WorkOrder, error)
	CompleteWorkOrder(ctx context.Context, id string) (*domain.WorkOrder, error)
	DeleteWorkOrder(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}

// Deps are the services behind the endpoints.
type Deps struct {
	Estimator estimator.Estimator
	Orders    OrderDesk
}

// Options tune request handling.
type Options struct {
	// MaxUploadBytes limits the STEP file of an upload request.
	MaxUploadBytes int64
}

// NewOptions reads the HTTP section of cfg.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxUploadBytes: cfg.HTTP.MaxUploadBytes}
}

// Handler serves the v1 endpoints.
type Handler struct {
	deps    Deps
	options Options
}

// New returns a handler over deps.
func New(deps Deps, options Options) *Handler {
	return &Handler{deps: deps, options: options}
}

// Register adds every v1 route to mux. Mutating routes go through sec.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("GET "+Prefix+"/health", h.Health)

	mux.HandleFunc("GET "+Prefix+"/materials", h.ListMaterials)
	mux.Handle("POST "+Prefix+"/materials", sec.Require(h.CreateMaterial))
	mux.HandleFunc("GET "+Prefix+"/machine-profiles", h.ListMachineProfiles)

	mux.HandleFunc("GET "+Prefix+"/parts", h.ListParts)
	mux.Handle("POST "+Prefix+"/parts/upload", sec.Require(h.UploadPart))
	mux.HandleFunc("GET "+Prefix+"/parts/{id}", h.GetPart)
	mux.Handle("DELETE "+Prefix+"/parts/{id}", sec.Require(h.DeletePart))
	mux.HandleFunc("GET "+Prefix+"/parts/{id}/model", h.GetPartModel)
	mux.HandleFunc("GET "+Prefix+"/parts/{id}/raw", h.GetPartRaw)
	mux.HandleFunc("GET "+Prefix+"/jobs/{id}", h.GetJob)

	mux.HandleFunc("GET "+Prefix+"/orders", h.ListOrders)
	mux.Handle("POST "+Prefix+"/orders", sec.Require(h.CreateOrder))
	mux.Handle("DELETE "+Prefix+"/orders", sec.Require(h.ClearOrders))
	mux.Handle("DELETE "+Prefix+"/orders/{id}", sec.Require(h.DeleteOrder))
	mux.Handle("POST "+Prefix+"/orders/{id}/convert", sec.Require(h.ConvertOrder))
	mux.HandleFunc("GET "+Prefix+"/work-orders", h.ListWorkOrders)
	mux.Handle("POST "+Prefix+"/work-orders/{id}/complete", sec.Require(h.CompleteWorkOrder))
	mux.Handle("DELETE "+Prefix+"/work-orders/{id}", sec.Require(h.DeleteWorkOrder))
}

// Health reports that the API process is serving requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
