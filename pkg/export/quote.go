// Package export writes estimator data to documents for people outside the
// tool: a PDF quote per part and an XLSX workbook of the orders desk.
package export

import (
	"bytes"
	"encoding/json"
	"estimator/pkg/domain"
	"estimator/pkg/serrors"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// A4 portrait in mm.
const (
	pageWidth   = 210.0
	marginLeft  = 15.0
	marginRight = 15.0
	marginTop   = 15.0
	contentW    = pageWidth - marginLeft - marginRight
	rowHeight   = 6.0
	qrSize      = 30.0
)

// Quote is the input of QuotePDF.
type Quote struct {
	Part *domain.Part
	// Material is printed when known.
	Material *domain.Material
	IssuedAt time.Time
}

// quoteCode is what the QR code of a quote encodes.
type quoteCode struct {
	PartID      domain.PartID `json:"part_id"`
	Filename    string        `json:"filename"`
	TotalCost   float64       `json:"total_cost"`
	ContentHash string        `json:"content_hash,omitempty"`
	IssuedAt    string        `json:"issued_at"`
}

// QuotePDF writes a one page cost quote of an analysed part to w.
func QuotePDF(w io.Writer, q Quote) error {
	part := q.Part
	if part == nil || part.Estimate == nil {
		return serrors.With(serrors.ErrBadRequest, "part has no estimate yet")
	}
	est := part.Estimate
	issued := q.IssuedAt
	if issued.IsZero() {
		issued = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginTop)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "Machining Cost Estimate", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(contentW, 5, "Issued "+issued.UTC().Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	if err := drawQRCode(pdf, quoteCode{
		PartID:      part.ID,
		Filename:    part.Filename,
		TotalCost:   est.TotalCost,
		ContentHash: part.ContentHash,
		IssuedAt:    issued.UTC().Format(time.RFC3339),
	}); err != nil {
		return err
	}

	pdf.Ln(4)
	section(pdf, "Part")
	pairs := [][2]string{
		{"File", part.Filename},
		{"Part ID", string(part.ID)},
	}
	if q.Material != nil {
		pairs = append(pairs, [2]string{"Material", q.Material.Code + " " + q.Material.Name})
	}
	if m := part.Machine(); m != nil {
		fit := "OK"
		if m.FitForPartBBox != nil && !*m.FitForPartBBox {
			fit = "Out of envelope"
		}
		pairs = append(pairs,
			[2]string{"Machine", m.Label},
			[2]string{"Strategy", string(m.StockStrategy)},
			[2]string{"Fit", fit})
	}
	if g := part.Geometry; g != nil {
		pairs = append(pairs,
			[2]string{"Bounding box", fmt.Sprintf("%.2f x %.2f x %.2f mm", g.BBox.XMM, g.BBox.YMM, g.BBox.ZMM)},
			[2]string{"Volume", fmt.Sprintf("%.2f cm3", g.VolumeCM3)})
	}
	keyValues(pdf, pairs)

	pdf.Ln(4)
	section(pdf, "Operations")
	table(pdf, []string{"Operation", "Machine", "Cycle min", "Machine USD", "Labor USD"},
		[]float64{55, 35, 30, 30, 30}, operationRows(est.OperationBreakdown))

	pdf.Ln(4)
	section(pdf, "Cost Breakdown")
	keyValues(pdf, [][2]string{
		{"Material Cost", usd(est.MaterialCost)},
		{"Machining Cost", usd(est.MachiningCost)},
		{"Labor Cost", usd(est.LaborCost)},
		{"Total cycle time", fmt.Sprintf("%.2f min", est.TotalCycleTimeMin)},
	})
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 8, "Total Cost", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW-60, 8, usd(est.TotalCost), "T", 1, "R", false, 0, "")

	if part.Geometry != nil && part.Geometry.Note != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.MultiCell(contentW, 4, part.Geometry.Note, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not write quote pdf: %w", err)
	}

	return nil
}

func usd(v float64) string {
	return fmt.Sprintf("%.2f USD", v)
}

// drawQRCode places the code in the top right corner and restores the
// cursor.
func drawQRCode(pdf *fpdf.Fpdf, code quoteCode) error {
	data, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("could not encode quote code: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("could not generate qr code: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("quote-qr", opts, bytes.NewReader(png))
	x, y := pdf.GetXY()
	pdf.ImageOptions("quote-qr", pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, opts, 0, "")
	pdf.SetXY(x, max(y, marginTop+qrSize-10))

	return nil
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func keyValues(pdf *fpdf.Fpdf, pairs [][2]string) {
	for _, kv := range pairs {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(45, rowHeight, kv[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW-45, rowHeight, kv[1], "", 1, "L", false, 0, "")
	}
}

func operationRows(ops []domain.OperationCost) [][]string {
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{
			op.Operation,
			op.MachineType,
			fmt.Sprintf("%.2f", op.CycleTimeMin),
			fmt.Sprintf("%.2f", op.MachineCost),
			fmt.Sprintf("%.2f", op.LaborCost),
		})
	}

	return rows
}

func table(pdf *fpdf.Fpdf, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(rows) == 0 {
		pdf.CellFormat(contentW, rowHeight, "No operations generated yet.", "1", 1, "L", false, 0, "")

		return
	}
	for _, row := range rows {
		for i, c := range row {
			align := "L"
			if i >= 2 {
				align = "R"
			}
			pdf.CellFormat(widths[i], rowHeight, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}
