package domain

// Process is the machining process family a machine profile targets.
type Process string

const (
	ProcessTurning Process = "turning"
	ProcessMilling Process = "milling"
	ProcessHybrid  Process = "hybrid"
)

// StockStrategy decides the raw stock shape.
type StockStrategy string

const (
	// StockAuto lets the part geometry choose between round bar and block.
	StockAuto         StockStrategy = "auto"
	StockRoundBar     StockStrategy = "round_bar"
	StockRectangBlock StockStrategy = "rectangular_block"
)

// DefaultMachineProfileID is the profile used when none or an unknown one is requested.
const DefaultMachineProfileID = "auto"

// MachineProfile is a machine preset with cost multipliers and a work envelope.
type MachineProfile struct {
	ID                    string        `json:"id"`
	Label                 string        `json:"label"`
	Process               Process       `json:"process"`
	StockStrategy         StockStrategy `json:"stock_strategy"`
	AllowanceMultiplier   float64       `json:"allowance_multiplier"`
	MachineCostMultiplier float64       `json:"machine_cost_multiplier"`
	LaborCostMultiplier   float64       `json:"labor_cost_multiplier"`
	NonCutFactorDelta     float64       `json:"non_cut_factor_delta"`
	MaxXMM                float64       `json:"max_x_mm"`
	MaxYMM                float64       `json:"max_y_mm"`
	MaxZMM                float64       `json:"max_z_mm"`
	Description           string        `json:"description"`
}

// Fits reports whether a bounding box lies within the machine envelope.
func (p MachineProfile) Fits(bbox BoundingBox) bool {
	return bbox.XMM <= p.MaxXMM && bbox.YMM <= p.MaxYMM && bbox.ZMM <= p.MaxZMM
}

// DefaultMachineProfiles returns the built-in machine profiles. The first
// entry is the automatic profile.
func DefaultMachineProfiles() []MachineProfile {
	return []MachineProfile{
		{
			ID:                    DefaultMachineProfileID,
			Label:                 "Otomatik (Geometriye Gore)",
			Process:               ProcessHybrid,
			StockStrategy:         StockAuto,
			AllowanceMultiplier:   1.00,
			MachineCostMultiplier: 1.00,
			LaborCostMultiplier:   1.00,
			NonCutFactorDelta:     0.00,
			MaxXMM:                500,
			MaxYMM:                500,
			MaxZMM:                1000,
			Description:           "Geometriye gore turning/milling secilir.",
		},
		{
			ID:                    "cnc_lathe_2axis",
			Label:                 "CNC Torna 2 Eksen",
			Process:               ProcessTurning,
			StockStrategy:         StockRoundBar,
			AllowanceMultiplier:   0.95,
			MachineCostMultiplier: 0.95,
			LaborCostMultiplier:   1.00,
			NonCutFactorDelta:     0.02,
			MaxXMM:                260,
			MaxYMM:                260,
			MaxZMM:                650,
			Description:           "Mil, burc ve donel parcalar icin optimize.",
		},
		{
			ID:                    "vmc_3axis",
			Label:                 "VMC 3 Eksen",
			Process:               ProcessMilling,
			StockStrategy:         StockRectangBlock,
			AllowanceMultiplier:   1.10,
			MachineCostMultiplier: 1.00,
			LaborCostMultiplier:   1.00,
			NonCutFactorDelta:     0.05,
			MaxXMM:                600,
			MaxYMM:                400,
			MaxZMM:                450,
			Description:           "Genel freze operasyonlari.",
		},
		{
			ID:                    "vmc_5axis",
			Label:                 "VMC 5 Eksen",
			Process:               ProcessMilling,
			StockStrategy:         StockRectangBlock,
			AllowanceMultiplier:   1.05,
			MachineCostMultiplier: 1.35,
			LaborCostMultiplier:   1.15,
			NonCutFactorDelta:     0.03,
			MaxXMM:                500,
			MaxYMM:                500,
			MaxZMM:                500,
			Description:           "Karmasik geometri ve yuksek hassasiyet.",
		},
		{
			ID:                    "mill_turn_center",
			Label:                 "Mill-Turn Center",
			Process:               ProcessHybrid,
			StockStrategy:         StockAuto,
			AllowanceMultiplier:   1.00,
			MachineCostMultiplier: 1.25,
			LaborCostMultiplier:   1.10,
			NonCutFactorDelta:     0.01,
			MaxXMM:                420,
			MaxYMM:                420,
			MaxZMM:                800,
			Description:           "Ayni tezgahta turning + milling.",
		},
	}
}

// MachineProfileByID looks id up in profiles. Empty or unknown IDs resolve
// to the automatic profile when present, otherwise to the first entry.
// profiles must not be empty.
func MachineProfileByID(profiles []MachineProfile, id string) MachineProfile {
	if id != "" {
		for _, p := range profiles {
			if p.ID == id {
				return p
			}
		}
	}
	for _, p := range profiles {
		if p.ID == DefaultMachineProfileID {
			return p
		}
	}

	return profiles[0]
}
