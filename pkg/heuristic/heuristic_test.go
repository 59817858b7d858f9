package heuristic_test

import (
	"encoding/json"
	"estimator/pkg/domain"
	"estimator/pkg/heuristic"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	steel1040 = domain.Material{ID: 1, Code: "AISI-1040", Name: "Steel 1040", DensityGCm3: 7.85, PricePerKg: 1.95, AllowanceMM: 3}
	al6061    = domain.Material{ID: 3, Code: "AL-6061", Name: "Aluminium 6061", DensityGCm3: 2.7, PricePerKg: 4.2, AllowanceMM: 3}
)

func profile(t *testing.T, id string) domain.MachineProfile {
	t.Helper()
	p := domain.MachineProfileByID(domain.DefaultMachineProfiles(), id)
	require.Equal(t, id, p.ID)

	return p
}

func TestIsRotational(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		strategy domain.StockStrategy
		want     bool
	}{
		{name: "shaft keyword", filename: "Drive_SHAFT.step", strategy: domain.StockAuto, want: true},
		{name: "turkish keyword", filename: "burc-12.stp", strategy: domain.StockAuto, want: true},
		{name: "no keyword", filename: "bracket.step", strategy: domain.StockAuto, want: false},
		{name: "round bar forces", filename: "bracket.step", strategy: domain.StockRoundBar, want: true},
		{name: "block forces", filename: "shaft.step", strategy: domain.StockRectangBlock, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, heuristic.IsRotational(tt.filename, tt.strategy))
		})
	}
}

func TestAnalyze_RotationalSmallFile(t *testing.T) {
	res := heuristic.Analyze(heuristic.Input{
		Filename:  "shaft.step",
		SizeBytes: 1000,
		Material:  steel1040,
		Profile:   profile(t, "auto"),
		Note:      "synthetic",
	})

	g := res.Geometry
	require.Equal(t, domain.BoundingBox{XMM: 30, YMM: 30, ZMM: 57}, g.BBox)
	require.InDelta(t, 30.78, g.VolumeCM3, 1e-9)
	require.InDelta(t, 80.03, g.SurfaceAreaCM2, 1e-9)
	require.Equal(t, 1, g.HolesCount)
	require.Equal(t, 0, g.ThreadFeatureCount)
	require.Equal(t, 0, g.UndercutCount)
	require.Equal(t, "synthetic", g.Note)

	s := res.Stock
	require.Equal(t, domain.StockRoundBar, s.StockType)
	require.InDelta(t, 36, s.DiameterMM, 1e-9)
	require.InDelta(t, 63, s.LengthMM, 1e-9)
	require.InDelta(t, 3, s.AllowanceMM, 1e-9)
	require.NotNil(t, s.MachineProfile)
	require.NotNil(t, s.MachineProfile.FitForPartBBox)
	require.True(t, *s.MachineProfile.FitForPartBBox)

	require.Equal(t, []domain.Operation{
		{Operation: "CNC Turning", MachineType: "CNC Turning", CycleTimeMin: 8.2},
		{Operation: "Drilling", MachineType: "Lathe live tooling", CycleTimeMin: 0.75},
		{Operation: "C-axis Milling", MachineType: "Turning Center", CycleTimeMin: 2.2},
	}, res.Operations)

	e := res.Estimate
	require.InDelta(t, 13.38, e.TotalCycleTimeMin, 1e-9)
	require.InDelta(t, 0.47, e.MaterialCost, 1e-9)
	require.InDelta(t, 28.1, e.MachiningCost, 1e-9)
	require.InDelta(t, 9.1, e.LaborCost, 1e-9)
	require.InDelta(t, 37.67, e.TotalCost, 1e-9)
	require.Len(t, e.OperationBreakdown, 3)
	require.InDelta(t, 18.04, e.OperationBreakdown[0].MachineCost, 1e-9)
	require.InDelta(t, 5.58, e.OperationBreakdown[0].LaborCost, 1e-9)
	require.InDelta(t, 1.5, e.OperationBreakdown[2].LaborCost, 1e-9)
	require.NotNil(t, e.MachineProfile.MachineCostMultiplier)
	require.NotNil(t, e.MachineProfile.FitForPartBBox)
	require.True(t, *e.MachineProfile.FitForPartBBox)
}

func TestAnalyze_PrismaticSmallFile(t *testing.T) {
	res := heuristic.Analyze(heuristic.Input{
		Filename:  "bracket.step",
		SizeBytes: 7449,
		Material:  steel1040,
		Profile:   profile(t, "auto"),
	})

	g := res.Geometry
	require.Equal(t, domain.BoundingBox{XMM: 54, YMM: 40, ZMM: 59}, g.BBox)
	require.InDelta(t, 57.35, g.VolumeCM3, 1e-9)
	// 57.35 * 3.1 is stored just below 177.785
	require.InDelta(t, 177.78, g.SurfaceAreaCM2, 1e-9)
}

func TestAnalyze_PrismaticLargeFile(t *testing.T) {
	res := heuristic.Analyze(heuristic.Input{
		Filename:  "bracket.step",
		SizeBytes: 1_000_000,
		Material:  al6061,
		Profile:   profile(t, "vmc_3axis"),
	})

	g := res.Geometry
	require.Equal(t, domain.BoundingBox{XMM: 276, YMM: 206, ZMM: 300}, g.BBox)
	require.InDelta(t, 7675.56, g.VolumeCM3, 1e-6)
	require.Equal(t, 14, g.HolesCount)
	require.Equal(t, 5, g.ThreadFeatureCount)
	require.Equal(t, 2, g.UndercutCount)

	s := res.Stock
	require.Equal(t, domain.StockRectangBlock, s.StockType)
	require.InDelta(t, 3.3, s.AllowanceMM, 1e-9)
	require.InDelta(t, 282.6, s.XMM, 1e-9)
	require.InDelta(t, 212.6, s.YMM, 1e-9)
	require.InDelta(t, 306.6, s.ZMM, 1e-9)

	require.Len(t, res.Operations, 3)
	require.Equal(t, "CNC Milling", res.Operations[0].Operation)
	require.InDelta(t, 10.5, res.Operations[1].CycleTimeMin, 1e-9)
	require.Equal(t, "Tapping", res.Operations[2].Operation)
	require.InDelta(t, 2.5, res.Operations[2].CycleTimeMin, 1e-9)

	e := res.Estimate
	require.InDelta(t, 31.75, e.TotalCycleTimeMin, 1e-9)
	require.InDelta(t, 87.04, e.MaterialCost, 1e-9)
	require.InDelta(t, 21.59, e.LaborCost, 1e-9)
	require.InDelta(t, e.MaterialCost+e.MachiningCost+e.LaborCost, e.TotalCost, 0.011)
}

func TestAnalyze_OutOfEnvelope(t *testing.T) {
	res := heuristic.Analyze(heuristic.Input{
		Filename:  "housing.step",
		SizeBytes: 1_000_000,
		Material:  al6061,
		Profile:   profile(t, "cnc_lathe_2axis"),
	})

	// The lathe forces turning: 240 x 240 x 456 fits 260 x 260 x 650.
	require.Equal(t, domain.BoundingBox{XMM: 240, YMM: 240, ZMM: 456}, res.Geometry.BBox)
	require.True(t, *res.Stock.MachineProfile.FitForPartBBox)

	short := profile(t, "cnc_lathe_2axis")
	short.MaxZMM = 400
	res = heuristic.Analyze(heuristic.Input{
		Filename:  "housing.step",
		SizeBytes: 1_000_000,
		Material:  al6061,
		Profile:   short,
	})
	require.False(t, *res.Stock.MachineProfile.FitForPartBBox)
	require.NotNil(t, res.Estimate.MachineProfile.FitForPartBBox)
	require.False(t, *res.Estimate.MachineProfile.FitForPartBBox)
}

func TestAnalyze_RoundNameSkipsCAxis(t *testing.T) {
	res := heuristic.Analyze(heuristic.Input{
		Filename:  "round_shaft.step",
		SizeBytes: 1000,
		Material:  steel1040,
		Profile:   profile(t, "auto"),
	})
	for _, op := range res.Operations {
		require.NotEqual(t, "C-axis Milling", op.Operation)
	}
}

func TestAnalyze_MillingProfileOnRotationalPart(t *testing.T) {
	custom := profile(t, "auto")
	custom.Process = domain.ProcessMilling
	custom.StockStrategy = domain.StockRoundBar

	res := heuristic.Analyze(heuristic.Input{Filename: "pin.step", SizeBytes: 1000, Material: steel1040, Profile: custom})
	require.Equal(t, "CNC Milling", res.Operations[0].Operation)
	require.InDelta(t, 8.2, res.Operations[0].CycleTimeMin, 1e-9)
}

func TestAnalyze_Deterministic(t *testing.T) {
	in := heuristic.Input{Filename: "bracket.step", SizeBytes: 54321, Material: al6061, Profile: profile(t, "vmc_5axis")}
	require.Equal(t, heuristic.Analyze(in), heuristic.Analyze(in))
}

func TestPreview(t *testing.T) {
	res := heuristic.Analyze(heuristic.Input{Filename: "shaft.step", SizeBytes: 1000, Material: steel1040, Profile: profile(t, "auto")})

	model, err := heuristic.Preview(res.Geometry)
	require.NoError(t, err)
	require.Equal(t, "gltf", model.Format)
	require.Equal(t, "model/gltf+json", model.ContentType)

	var doc struct {
		Asset     struct{ Version string }
		Buffers   []struct{ ByteLength int }
		Accessors []struct {
			Count int
			Max   []float64
		}
	}
	require.NoError(t, json.Unmarshal(model.Data, &doc))
	require.Equal(t, "2.0", doc.Asset.Version)
	require.Len(t, doc.Buffers, 1)
	require.Equal(t, 8*3*4+36*2, doc.Buffers[0].ByteLength)
	require.Len(t, doc.Accessors, 2)
	require.Equal(t, 8, doc.Accessors[0].Count)
	require.InDelta(t, 0.0285, doc.Accessors[0].Max[2], 1e-6)
	require.Equal(t, 36, doc.Accessors[1].Count)
}
