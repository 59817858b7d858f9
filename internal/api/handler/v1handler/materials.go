package v1handler

import (
	"estimator/pkg/domain"
	"estimator/pkg/serrors"
	"io"
	"net/http"

	"github.com/go-faster/jx"
)

const maxJSONBodyBytes = 1 << 20

// ListMaterials returns the material catalog.
func (h *Handler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := h.deps.Estimator.Materials(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, materials)
}

// CreateMaterial adds a material to the catalog.
func (h *Handler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err != nil {
		h.writeError(r.Context(), w, serrors.Wrap(serrors.ErrBadRequest, err, "could not read body"))

		return
	}

	input, err := DecodeMaterialInput(body)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	material, err := h.deps.Estimator.CreateMaterial(r.Context(), *input)
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, material)
}

// DecodeMaterialInput parses a material creation payload. Unknown fields are
// ignored and a null allowance_mm means the default allowance.
func DecodeMaterialInput(body []byte) (*domain.MaterialInput, error) {
	var input domain.MaterialInput
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "code":
			input.Code, err = d.Str()
		case "name":
			input.Name, err = d.Str()
		case "density_g_cm3":
			input.DensityGCm3, err = d.Float64()
		case "price_per_kg":
			input.PricePerKg, err = d.Float64()
		case "allowance_mm":
			if d.Next() == jx.Null {
				return d.Null()
			}
			var v float64
			v, err = d.Float64()
			input.AllowanceMM = &v
		default:
			err = d.Skip()
		}

		return err
	}); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid material payload")
	}

	return &input, nil
}

// ListMachineProfiles returns the selectable machine profiles.
func (h *Handler) ListMachineProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.deps.Estimator.MachineProfiles(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, profiles)
}
