package render

import (
	"estimator/pkg/domain"
	"fmt"
	"strconv"
	"strings"
)

// PartStatusClass maps a part status to its pill class.
func PartStatusClass(status domain.PartStatus) string {
	switch status {
	case domain.PartStatusCompleted:
		return "ok"
	case domain.PartStatusFailed:
		return "danger"
	case domain.PartStatusProcessing:
		return "warn"
	default:
		return "neutral"
	}
}

func money(v float64) string {
	return fmt.Sprintf("%.2f USD", v)
}

// Materials renders the material catalog.
func (r *Renderer) Materials(materials []domain.Material) error {
	if ok, err := r.data(materials); ok {
		return err
	}
	if len(materials) == 0 {
		return r.println(r.st.muted.Render("No materials defined."))
	}

	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		rows = append(rows, []string{
			strconv.FormatInt(int64(m.ID), 10),
			m.Code,
			m.Name,
			fmt.Sprintf("%.2f", m.DensityGCm3),
			fmt.Sprintf("%.2f", m.PricePerKg),
			fmt.Sprintf("%.2f", m.AllowanceMM),
		})
	}

	return r.println(r.table([]string{"ID", "CODE", "NAME", "DENSITY g/cm3", "PRICE/kg", "ALLOWANCE mm"}, rows))
}

// MachineProfiles renders the machine profile list.
func (r *Renderer) MachineProfiles(profiles []domain.MachineProfile) error {
	if ok, err := r.data(profiles); ok {
		return err
	}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.ID,
			p.Label,
			string(p.Process),
			string(p.StockStrategy),
			fmt.Sprintf("%.0fx%.0fx%.0f", p.MaxXMM, p.MaxYMM, p.MaxZMM),
		})
	}

	return r.println(r.table([]string{"ID", "LABEL", "PROCESS", "STOCK", "ENVELOPE mm"}, rows))
}

// Parts renders the part list, marking the selected part.
func (r *Renderer) Parts(parts []domain.PartSummary, selected domain.PartID) error {
	if ok, err := r.data(parts); ok {
		return err
	}

	lines := []string{r.st.title.Render("Analyzed Parts")}
	if len(parts) == 0 {
		lines = append(lines, r.st.muted.Render("No parts uploaded yet."))

		return r.println(strings.Join(lines, "\n"))
	}

	rows := make([][]string, 0, len(parts))
	for _, p := range parts {
		marker := " "
		if p.ID == selected {
			marker = ">"
		}
		rows = append(rows, []string{
			marker,
			string(p.ID),
			p.Filename,
			p.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.st.pills[PartStatusClass(p.Status)].Render(string(p.Status)),
		})
	}
	lines = append(lines, r.table([]string{"", "ID", "FILE", "CREATED", "STATUS"}, rows))

	return r.println(strings.Join(lines, "\n"))
}

// Estimate renders the cost breakdown panel of part, which may be nil.
func (r *Renderer) Estimate(part *domain.Part) error {
	if ok, err := r.data(part); ok {
		return err
	}

	if part == nil {
		return r.println(r.st.title.Render("Estimate") + "\n" +
			r.st.muted.Render("Select a part to view estimate details."))
	}

	lines := []string{r.st.title.Render("Cost Breakdown")}
	est := part.Estimate
	if est == nil {
		lines = append(lines, r.st.muted.Render("Analysis is pending or failed."))

		return r.println(strings.Join(lines, "\n"))
	}

	if machine := part.Machine(); machine != nil {
		fit := machine.FitForPartBBox == nil || *machine.FitForPartBBox
		name := machine.Label
		if name == "" {
			name = machine.ID
		}
		strategy := string(machine.StockStrategy)
		if strategy == "" {
			strategy = "-"
		}
		fitText, style := "OK", r.st.info
		if !fit {
			fitText, style = "Out of envelope", r.st.danger
		}
		lines = append(lines, style.Render(fmt.Sprintf("Machine: %s · Strategy: %s · Fit: %s", name, strategy, fitText)))
	}

	kpi := func(label string, v float64, total bool) string {
		valueStyle := r.st.value
		if total {
			valueStyle = r.st.total
		}

		return r.st.label.Render(label+":") + " " + valueStyle.Render(money(v))
	}
	lines = append(lines,
		kpi("Material Cost", est.MaterialCost, false),
		kpi("Machining Cost", est.MachiningCost, false),
		kpi("Labor Cost", est.LaborCost, false),
		kpi("Total Cost", est.TotalCost, true),
		"",
		r.st.section.Render("Geometry"),
	)

	var g domain.Geometry
	if part.Geometry != nil {
		g = *part.Geometry
	}
	lines = append(lines,
		fmt.Sprintf("X: %.2f mm  Y: %.2f mm  Z: %.2f mm", g.BBox.XMM, g.BBox.YMM, g.BBox.ZMM),
		fmt.Sprintf("Volume: %.2f cm³  Surface: %.2f cm²", g.VolumeCM3, g.SurfaceAreaCM2),
		fmt.Sprintf("Holes: %d  Threads: %d  Undercuts: %d", g.HolesCount, g.ThreadFeatureCount, g.UndercutCount),
		"",
		r.st.section.Render("Stock"),
	)
	lines = append(lines, stockLines(part.Stock)...)

	lines = append(lines, "", r.st.section.Render("Operations"))
	if len(part.Operations) == 0 {
		lines = append(lines, r.st.muted.Render("No operations generated yet."))
	} else {
		rows := make([][]string, 0, len(est.OperationBreakdown))
		for _, op := range est.OperationBreakdown {
			rows = append(rows, []string{
				op.Operation,
				op.MachineType,
				fmt.Sprintf("%.2f min", op.CycleTimeMin),
				money(op.MachineCost),
				money(op.LaborCost),
			})
		}
		lines = append(lines, r.table([]string{"OPERATION", "MACHINE", "CYCLE", "MACHINE COST", "LABOR COST"}, rows))
	}
	lines = append(lines, fmt.Sprintf("Total cycle time: %.2f min", est.TotalCycleTimeMin))

	return r.println(strings.Join(lines, "\n"))
}

func stockLines(s *domain.Stock) []string {
	if s == nil {
		return []string{"-"}
	}

	out := []string{"Type: " + string(s.StockType)}
	if s.StockType == domain.StockRoundBar {
		out = append(out, fmt.Sprintf("Diameter: %.2f mm  Length: %.2f mm", s.DiameterMM, s.LengthMM))
	} else {
		out = append(out, fmt.Sprintf("Block: %.2f x %.2f x %.2f mm", s.XMM, s.YMM, s.ZMM))
	}
	out = append(out, fmt.Sprintf("Allowance: %.2f mm", s.AllowanceMM))

	return out
}

// Job renders the banner of a followed job.
func (r *Renderer) Job(job *domain.AnalysisJob) error {
	if ok, err := r.data(job); ok {
		return err
	}

	id := string(job.ID)
	if len(id) > 8 {
		id = id[:8] + "..."
	}
	msg := fmt.Sprintf("Job %s status: %s", id, job.Status)
	if job.ErrorMessage != nil && *job.ErrorMessage != "" {
		msg += " - " + *job.ErrorMessage
	}

	style := r.st.info
	if job.Status == domain.JobStatusFailed {
		style = r.st.danger
	}

	return r.println(style.Render(msg))
}

// UploadResult renders the answer to an upload.
func (r *Renderer) UploadResult(result *domain.UploadResult) error {
	if ok, err := r.data(result); ok {
		return err
	}

	return r.println(r.st.info.Render(
		fmt.Sprintf("Uploaded part %s, job %s is %s", result.PartID, result.JobID, result.Status)))
}

// MockBanner tells the user that local demo data is shown.
func (r *Renderer) MockBanner(active bool) error {
	if !active || r.format != FormatText {
		return nil
	}

	return r.println(r.st.info.Render(
		"Backend unavailable, local demo mode is active. Models and costs shown are not from a real STEP analysis."))
}
