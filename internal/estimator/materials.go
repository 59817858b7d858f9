package estimator

import (
	"context"
	"errors"
	"estimator/pkg/domain"
	"estimator/pkg/serrors"
	"estimator/pkg/storage"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

func (e *estimator) Materials(ctx context.Context) ([]domain.Material, error) {
	materials, err := e.storage.Materials(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get materials: %w", err)
	}

	return materials, nil
}

// CreateMaterial validates and stores a new material. Codes are stored
// upper-cased and must be unique.
func (e *estimator) CreateMaterial(ctx context.Context, input domain.MaterialInput) (*domain.Material, error) {
	material, err := validateMaterial(input)
	if err != nil {
		return nil, err
	}

	stored, err := e.storage.StoreMaterial(ctx, material)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "material code already exists")
		}

		return nil, fmt.Errorf("could not create material: %w", err)
	}

	return stored, nil
}

func validateMaterial(input domain.MaterialInput) (domain.Material, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	name := strings.TrimSpace(input.Name)

	if n := utf8.RuneCountInString(code); n == 0 || n > 50 {
		return domain.Material{}, serrors.With(serrors.ErrBadRequest, "code must be 1 to 50 characters")
	}
	if n := utf8.RuneCountInString(name); n == 0 || n > 120 {
		return domain.Material{}, serrors.With(serrors.ErrBadRequest, "name must be 1 to 120 characters")
	}
	if input.DensityGCm3 <= 0 {
		return domain.Material{}, serrors.With(serrors.ErrBadRequest, "density_g_cm3 must be positive")
	}
	if input.PricePerKg <= 0 {
		return domain.Material{}, serrors.With(serrors.ErrBadRequest, "price_per_kg must be positive")
	}

	allowance := domain.DefaultAllowanceMM
	if input.AllowanceMM != nil {
		if *input.AllowanceMM < 0 {
			return domain.Material{}, serrors.With(serrors.ErrBadRequest, "allowance_mm must not be negative")
		}
		allowance = *input.AllowanceMM
	}

	return domain.Material{
		Code:        code,
		Name:        name,
		DensityGCm3: input.DensityGCm3,
		PricePerKg:  input.PricePerKg,
		AllowanceMM: allowance,
	}, nil
}

func (e *estimator) MachineProfiles(_ context.Context) ([]domain.MachineProfile, error) {
	return slices.Clone(e.profiles), nil
}
