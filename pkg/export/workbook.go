package export

import (
	"estimator/pkg/domain"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	SheetOrders     = "Orders"
	SheetWorkOrders = "Work Orders"
)

// OrdersWorkbook writes the sales and work orders as an XLSX workbook with
// one sheet each.
func OrdersWorkbook(w io.Writer, orders []domain.Order, work []domain.WorkOrder) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// the default sheet becomes the orders sheet
	if err := f.SetSheetName(f.GetSheetName(0), SheetOrders); err != nil {
		return fmt.Errorf("could not name orders sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetWorkOrders); err != nil {
		return fmt.Errorf("could not add work orders sheet: %w", err)
	}

	orderRows := [][]any{{"ID", "Customer", "Product", "Qty", "Due", "Created"}}
	for _, o := range orders {
		orderRows = append(orderRows, []any{o.ID, o.Customer, o.Product, o.Qty, o.Due, created(o.CreatedAt)})
	}
	workRows := [][]any{{"ID", "Ref", "Customer", "Product", "Qty", "Due", "Status", "Created"}}
	for _, wo := range work {
		workRows = append(workRows, []any{wo.ID, wo.Ref, wo.Customer, wo.Product, wo.Qty, wo.Due, string(wo.Status), created(wo.CreatedAt)})
	}

	if err := writeRows(f, SheetOrders, orderRows); err != nil {
		return err
	}
	if err := writeRows(f, SheetWorkOrders, workRows); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}

	return nil
}

func created(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("could not address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("could not write %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}
