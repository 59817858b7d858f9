package domain

import "time"

// PartID identifies an uploaded part.
type PartID string

// PartStatus is the analysis state of a part.
type PartStatus string

const (
	PartStatusQueued     PartStatus = "queued"
	PartStatusProcessing PartStatus = "processing"
	PartStatusCompleted  PartStatus = "completed"
	PartStatusFailed     PartStatus = "failed"
)

// BoundingBox is an axis-aligned size in millimetres.
type BoundingBox struct {
	XMM float64 `json:"x_mm"`
	YMM float64 `json:"y_mm"`
	ZMM float64 `json:"z_mm"`
}

// Geometry summarises the analysed shape of a part.
type Geometry struct {
	BBox               BoundingBox `json:"bbox"`
	VolumeCM3          float64     `json:"volume_cm3"`
	SurfaceAreaCM2     float64     `json:"surface_area_cm2"`
	HolesCount         int         `json:"holes_count"`
	ThreadFeatureCount int         `json:"thread_feature_count"`
	UndercutCount      int         `json:"undercut_count"`
	Note               string      `json:"note,omitempty"`
}

// MachineRef is the machine profile snapshot embedded into stock and
// estimate results. Stock carries the envelope fit, estimates carry the
// multipliers.
type MachineRef struct {
	ID                    string        `json:"id"`
	Label                 string        `json:"label"`
	Process               Process       `json:"process"`
	StockStrategy         StockStrategy `json:"stock_strategy"`
	FitForPartBBox        *bool         `json:"fit_for_part_bbox,omitempty"`
	MachineCostMultiplier *float64      `json:"machine_cost_multiplier,omitempty"`
	LaborCostMultiplier   *float64      `json:"labor_cost_multiplier,omitempty"`
}

// Stock is the raw stock chosen for a part. Round bars fill DiameterMM and
// LengthMM, blocks fill XMM, YMM and ZMM.
type Stock struct {
	StockType      StockStrategy `json:"stock_type"`
	DiameterMM     float64       `json:"diameter_mm,omitempty"`
	LengthMM       float64       `json:"length_mm,omitempty"`
	XMM            float64       `json:"x_mm,omitempty"`
	YMM            float64       `json:"y_mm,omitempty"`
	ZMM            float64       `json:"z_mm,omitempty"`
	AllowanceMM    float64       `json:"allowance_mm"`
	MachineProfile *MachineRef   `json:"machine_profile,omitempty"`
}

// Operation is one machining step with its cutting time.
type Operation struct {
	Operation    string  `json:"operation"`
	MachineType  string  `json:"machine_type"`
	CycleTimeMin float64 `json:"cycle_time_min"`
}

// OperationCost is the per-operation line of an estimate.
type OperationCost struct {
	Operation    string         `json:"operation"`
	MachineType  string         `json:"machine_type"`
	CycleTimeMin float64        `json:"cycle_time_min"`
	MachineCost  float64        `json:"machine_cost"`
	LaborCost    float64        `json:"labor_cost"`
	Details      map[string]any `json:"details"`
}

// Estimate is the computed cost of machining a part.
type Estimate struct {
	MaterialCost       float64         `json:"material_cost"`
	MachiningCost      float64         `json:"machining_cost"`
	LaborCost          float64         `json:"labor_cost"`
	TotalCost          float64         `json:"total_cost"`
	TotalCycleTimeMin  float64         `json:"total_cycle_time_min"`
	MachineProfile     *MachineRef     `json:"machine_profile,omitempty"`
	OperationBreakdown []OperationCost `json:"operation_breakdown"`
}

// PartSummary is the list projection of a part.
type PartSummary struct {
	ID          PartID     `json:"id"`
	Filename    string     `json:"filename"`
	Status      PartStatus `json:"status"`
	MaterialID  MaterialID `json:"material_id"`
	ModelFormat *string    `json:"model_format"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Part is an uploaded CAD file and its analysis results. The result blobs
// stay nil until analysis completes.
type Part struct {
	PartSummary

	MachineProfileID string  `json:"machine_profile_id"`
	StorageKey       string  `json:"storage_key"`
	ModelKey         *string `json:"model_key"`
	// ContentHash is the hex blake3 digest of the uploaded bytes.
	ContentHash string `json:"content_hash,omitempty"`
	SizeBytes   int64  `json:"size_bytes"`

	Geometry   *Geometry   `json:"geometry_json"`
	Stock      *Stock      `json:"stock_json"`
	Operations []Operation `json:"operations_json"`
	Estimate   *Estimate   `json:"estimate_json"`
}

// Summary returns the list projection of p.
func (p Part) Summary() PartSummary {
	return p.PartSummary
}

// HasModel reports whether a preview model was generated.
func (p Part) HasModel() bool {
	return p.ModelKey != nil && *p.ModelKey != ""
}

// Machine returns the machine the estimate was computed for, falling back to
// the one recorded on the stock.
func (p Part) Machine() *MachineRef {
	if p.Estimate != nil && p.Estimate.MachineProfile != nil {
		return p.Estimate.MachineProfile
	}
	if p.Stock != nil {
		return p.Stock.MachineProfile
	}

	return nil
}

// UploadResult is returned after a file is accepted for analysis.
type UploadResult struct {
	PartID PartID    `json:"part_id"`
	JobID  JobID     `json:"job_id"`
	Status JobStatus `json:"status"`
}
