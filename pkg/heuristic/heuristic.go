// Package heuristic derives a deterministic synthetic analysis of a CAD file
// from its size and name: bounding box, volume, feature counts, raw stock,
// operations and a cost estimate.
//
// The numbers are placeholders that keep the rest of the system exercisable
// without a geometry kernel. They do not model machining economics.
package heuristic

import (
	"estimator/pkg/domain"
	"math"
	"math/big"
	"regexp"
	"strings"
)

// Input is what the estimator knows about a part before analysis.
type Input struct {
	Filename  string
	SizeBytes int64
	Material  domain.Material
	Profile   domain.MachineProfile
	// Note is copied into the geometry summary.
	Note string
}

// Result bundles the analysis blobs stored on a part.
type Result struct {
	Geometry   domain.Geometry
	Stock      domain.Stock
	Operations []domain.Operation
	Estimate   domain.Estimate
}

const (
	minBase = 30
	maxBase = 240

	laborRate            = 0.68
	turningMachineRate   = 2.1
	millingMachineRate   = 2.35
	breakdownMachineRate = 2.2
	baseNonCutFactor     = 0.2
	minNonCutFactor      = 0.05
	minAllowanceFactor   = 0.1
	minVolumeCM3         = 8

	// beyond this the value has no fractional digits left to round
	maxRounded = 1 << 52

	opTurning  = "CNC Turning"
	opMilling  = "CNC Milling"
	opDrilling = "Drilling"
	opTapping  = "Tapping"
	opCAxis    = "C-axis Milling"
)

var rotationalName = regexp.MustCompile(`shaft|mil|bushing|burc|turn|torna`)

// IsRotational reports whether a part should be treated as turned. The
// profile stock strategy overrides the filename guess.
func IsRotational(filename string, strategy domain.StockStrategy) bool {
	switch strategy {
	case domain.StockRoundBar:
		return true
	case domain.StockRectangBlock:
		return false
	default:
		return rotationalName.MatchString(strings.ToLower(filename))
	}
}

// Analyze runs the synthetic analysis.
func Analyze(in Input) Result {
	name := strings.ToLower(in.Filename)
	rotational := IsRotational(in.Filename, in.Profile.StockStrategy)

	geometry := shape(in.SizeBytes, rotational)
	geometry.Note = in.Note

	// stock and estimate record the same machine, envelope fit included
	fit := in.Profile.Fits(geometry.BBox)
	stock := stockFor(geometry.BBox, rotational, in.Material, in.Profile)
	stock.MachineProfile = machineRef(in.Profile, fit)
	operations := operationsFor(geometry, rotational, !strings.Contains(name, "round"), in.Profile)
	estimate := estimateFor(geometry, operations, rotational, in.Material, in.Profile)
	estimate.MachineProfile = machineRef(in.Profile, fit)

	return Result{
		Geometry:   geometry,
		Stock:      stock,
		Operations: operations,
		Estimate:   estimate,
	}
}

func shape(size int64, rotational bool) domain.Geometry {
	base := clamp(math.Round(math.Cbrt(float64(size))*2.4), minBase, maxBase)

	x, y := base, base
	zFactor, volumeFactor, surfaceFactor := 1.9, 0.6, 2.6
	if !rotational {
		x = math.Round(base * 1.15)
		y = math.Round(base * 0.86)
		zFactor, volumeFactor, surfaceFactor = 1.25, 0.45, 3.1
	}
	z := math.Max(minBase, math.Round(base*zFactor))

	volume := math.Max(minVolumeCM3, round2(x*y*z/1000*volumeFactor))

	holes := 1
	undercuts := 0
	if !rotational {
		holes = max(2, int(math.Round((x+y)/35)))
		undercuts = max(0, int(math.Round(x/90))-1)
	}
	threads := max(0, int(math.Round(float64(holes)/3)))

	return domain.Geometry{
		BBox:               domain.BoundingBox{XMM: x, YMM: y, ZMM: z},
		VolumeCM3:          volume,
		SurfaceAreaCM2:     round2(volume * surfaceFactor),
		HolesCount:         holes,
		ThreadFeatureCount: threads,
		UndercutCount:      undercuts,
	}
}

func stockFor(
	bbox domain.BoundingBox,
	rotational bool,
	material domain.Material,
	profile domain.MachineProfile,
) domain.Stock {
	allowance := round2(material.AllowanceMM * math.Max(profile.AllowanceMultiplier, minAllowanceFactor))

	stock := domain.Stock{AllowanceMM: allowance}
	if rotational {
		stock.StockType = domain.StockRoundBar
		stock.DiameterMM = bbox.XMM + allowance*2
		stock.LengthMM = bbox.ZMM + allowance*2
	} else {
		stock.StockType = domain.StockRectangBlock
		stock.XMM = bbox.XMM + allowance*2
		stock.YMM = bbox.YMM + allowance*2
		stock.ZMM = bbox.ZMM + allowance*2
	}

	return stock
}

func operationsFor(
	geometry domain.Geometry,
	rotational bool,
	needsCAxis bool,
	profile domain.MachineProfile,
) []domain.Operation {
	primary, primaryTime := opMilling, 12.4
	if rotational {
		primaryTime = 8.2
		if profile.Process != domain.ProcessMilling {
			primary = opTurning
		}
	}
	drillingMachine := opMilling
	if rotational {
		drillingMachine = "Lathe live tooling"
	}

	operations := []domain.Operation{
		{Operation: primary, MachineType: primary, CycleTimeMin: primaryTime},
		{Operation: opDrilling, MachineType: drillingMachine, CycleTimeMin: round2(float64(geometry.HolesCount) * 0.75)},
	}
	if geometry.ThreadFeatureCount > 0 {
		operations = append(operations, domain.Operation{
			Operation:    opTapping,
			MachineType:  opMilling,
			CycleTimeMin: round2(float64(geometry.ThreadFeatureCount) * 0.5),
		})
	}
	if rotational && needsCAxis {
		operations = append(operations, domain.Operation{
			Operation:    opCAxis,
			MachineType:  "Turning Center",
			CycleTimeMin: 2.2,
		})
	}

	return operations
}

func estimateFor(
	geometry domain.Geometry,
	operations []domain.Operation,
	rotational bool,
	material domain.Material,
	profile domain.MachineProfile,
) domain.Estimate {
	nonCut := math.Max(minNonCutFactor, baseNonCutFactor+profile.NonCutFactorDelta)

	var baseCycle float64
	breakdown := make([]domain.OperationCost, 0, len(operations))
	for _, op := range operations {
		baseCycle += op.CycleTimeMin
		breakdown = append(breakdown, domain.OperationCost{
			Operation:    op.Operation,
			MachineType:  op.MachineType,
			CycleTimeMin: op.CycleTimeMin,
			MachineCost:  round2(op.CycleTimeMin * breakdownMachineRate),
			LaborCost:    round2(op.CycleTimeMin * laborRate),
			Details:      map[string]any{},
		})
	}
	cycle := round2(baseCycle * (1 + nonCut))

	machineRate := millingMachineRate
	if rotational {
		machineRate = turningMachineRate
	}
	materialCost := round2(geometry.VolumeCM3 * material.DensityGCm3 / 1000 * material.PricePerKg)
	machiningCost := round2(cycle * machineRate * profile.MachineCostMultiplier)
	laborCost := round2(cycle * laborRate * profile.LaborCostMultiplier)

	return domain.Estimate{
		MaterialCost:       materialCost,
		MachiningCost:      machiningCost,
		LaborCost:          laborCost,
		TotalCost:          round2(materialCost + machiningCost + laborCost),
		TotalCycleTimeMin:  cycle,
		OperationBreakdown: breakdown,
	}
}

// machineRef describes profile as recorded on an analysed part.
func machineRef(profile domain.MachineProfile, fit bool) *domain.MachineRef {
	machineMult, laborMult := profile.MachineCostMultiplier, profile.LaborCostMultiplier

	return &domain.MachineRef{
		ID:                    profile.ID,
		Label:                 profile.Label,
		Process:               profile.Process,
		StockStrategy:         profile.StockStrategy,
		FitForPartBBox:        &fit,
		MachineCostMultiplier: &machineMult,
		LaborCostMultiplier:   &laborMult,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round2 rounds v to two decimals using its exact binary value, so 177.785
// (stored as 177.78499...) gives 177.78. Exact ties round away from zero.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= maxRounded {
		return v
	}

	// 53 mantissa bits times 100 plus the half fit exactly in 128 bits
	scaled := new(big.Float).SetPrec(128).SetFloat64(math.Abs(v))
	scaled.Mul(scaled, big.NewFloat(100))
	scaled.Add(scaled, big.NewFloat(0.5))
	n, _ := scaled.Int64() // truncation of a positive value is floor
	if n == 0 {
		return 0
	}

	return math.Copysign(float64(n)/100, v)
}
