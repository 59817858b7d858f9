package storage

import (
	"context"
	"estimator/pkg/domain"
)

// MaterialStorage persists the material catalog.
type MaterialStorage interface {
	// Materials returns every material ordered by code.
	Materials(ctx context.Context) ([]domain.Material, error)
	// MaterialByID returns nil when the material does not exist.
	MaterialByID(ctx context.Context, id domain.MaterialID) (*domain.Material, error)
	// StoreMaterial inserts a material and returns the stored row. A
	// duplicate code yields ErrDuplicate.
	StoreMaterial(ctx context.Context, material domain.Material) (*domain.Material, error)
}
