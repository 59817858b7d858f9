package domain

// MaterialID identifies a material row.
type MaterialID int64

// Material describes raw stock material used for pricing.
type Material struct {
	ID   MaterialID `json:"id"`
	Code string     `json:"code"`
	Name string     `json:"name"`
	// DensityGCm3 is the density in g/cm³.
	DensityGCm3 float64 `json:"density_g_cm3"`
	// PricePerKg is the raw material price per kilogram.
	PricePerKg float64 `json:"price_per_kg"`
	// AllowanceMM is the machining allowance added on each side of the stock.
	AllowanceMM float64 `json:"allowance_mm"`
}

// DefaultAllowanceMM is used when a material is created without an allowance.
const DefaultAllowanceMM = 3.0

// MaterialInput is the payload for creating a material.
type MaterialInput struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	DensityGCm3 float64  `json:"density_g_cm3"`
	PricePerKg  float64  `json:"price_per_kg"`
	AllowanceMM *float64 `json:"allowance_mm,omitempty"`
}

// MaterialByID returns the material with the given ID, or nil.
func MaterialByID(materials []Material, id MaterialID) *Material {
	for i := range materials {
		if materials[i].ID == id {
			return &materials[i]
		}
	}

	return nil
}
