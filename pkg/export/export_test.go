package export_test

import (
	"bytes"
	"estimator/pkg/domain"
	"estimator/pkg/export"
	"estimator/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestQuotePDF(t *testing.T) {
	fit := false
	part := &domain.Part{
		PartSummary: domain.PartSummary{ID: "part-1", Filename: "shaft.step", Status: domain.PartStatusCompleted},
		ContentHash: "abc",
		Geometry:    &domain.Geometry{BBox: domain.BoundingBox{XMM: 80, YMM: 80, ZMM: 150}, VolumeCM3: 576, Note: "synthetic"},
		Estimate: &domain.Estimate{
			MaterialCost:      35.2,
			MachiningCost:     40.1,
			LaborCost:         12.3,
			TotalCost:         87.6,
			TotalCycleTimeMin: 19.1,
			MachineProfile:    &domain.MachineRef{ID: "vmc_3axis", Label: "3-Axis VMC", FitForPartBBox: &fit},
			OperationBreakdown: []domain.OperationCost{
				{Operation: "CNC Turning", MachineType: "lathe", CycleTimeMin: 8.2, MachineCost: 18.04, LaborCost: 5.58},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.QuotePDF(&buf, export.Quote{
		Part:     part,
		Material: &domain.Material{Code: "AISI-1040", Name: "Carbon steel"},
		IssuedAt: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	require.Greater(t, buf.Len(), 1000)

	part.Estimate = nil
	err := export.QuotePDF(&buf, export.Quote{Part: part})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestOrdersWorkbook(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	orders := []domain.Order{{ID: "o1", Customer: "Acme", Product: "Shaft", Qty: 4, Due: "2026-04-01", CreatedAt: created}}
	work := []domain.WorkOrder{
		{ID: "w1", Ref: "WE-2026-4242", Customer: "Beta", Product: "Plate", Qty: 1, Status: domain.WorkOrderOpen, CreatedAt: created},
		{ID: "w2", Ref: "WE-2026-1001", Customer: "Gamma", Product: "Bushing", Qty: 2, Status: domain.WorkOrderCompleted},
	}

	var buf bytes.Buffer
	require.NoError(t, export.OrdersWorkbook(&buf, orders, work))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	require.Equal(t, []string{export.SheetOrders, export.SheetWorkOrders}, f.GetSheetList())

	rows, err := f.GetRows(export.SheetOrders)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"o1", "Acme", "Shaft", "4", "2026-04-01", "2026-03-14T09:00:00Z"}, rows[1])

	rows, err = f.GetRows(export.SheetWorkOrders)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "WE-2026-4242", rows[1][1])
	require.Equal(t, "Completed", rows[2][6])
}
