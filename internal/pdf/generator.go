package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/staffdesk/internal/model"
)

const fontName = "Helvetica"

// Generator renders the occupancy-forecast document covering the staffing
// and factory pools.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(general []model.OccupancyForecast, factory []model.FactoryIdleForecast, at time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(fontName, "B", 14)
	pdf.CellFormat(0, 10, "Occupancy Forecast", "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Reference date: %s", formatDate(at)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Staffing pool", "", 1, "L", false, 0, "")
	drawForecastTable(pdf, generalRows(general))
	for _, forecast := range general {
		drawIdleList(pdf, forecast.Period, forecast.PredictedIdleProfessionals)
	}

	pdf.Ln(4)
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, "Factory pool", "", 1, "L", false, 0, "")
	drawForecastTable(pdf, factoryRows(factory))
	for _, forecast := range factory {
		drawIdleList(pdf, forecast.Period, forecast.IdleProfessionals)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type forecastRow struct {
	period        int
	allocated     int
	predictedIdle int
	occupancyRate float64
}

func generalRows(forecasts []model.OccupancyForecast) []forecastRow {
	rows := make([]forecastRow, 0, len(forecasts))
	for _, f := range forecasts {
		rows = append(rows, forecastRow{f.Period, f.CurrentAllocated, f.PredictedIdle, f.OccupancyRate})
	}
	return rows
}

func factoryRows(forecasts []model.FactoryIdleForecast) []forecastRow {
	rows := make([]forecastRow, 0, len(forecasts))
	for _, f := range forecasts {
		rows = append(rows, forecastRow{f.Period, f.CurrentAllocated, f.PredictedIdle, f.OccupancyRate})
	}
	return rows
}

func drawForecastTable(pdf *gofpdf.Fpdf, rows []forecastRow) {
	headers := []string{"Window, days", "Currently allocated", "Predicted idle", "Occupancy rate"}
	colWidths := []float64{40, 50, 40, 50}
	drawTableRow(pdf, headers, colWidths, true)

	for _, row := range rows {
		cols := []string{
			fmt.Sprintf("%d", row.period),
			fmt.Sprintf("%d", row.allocated),
			fmt.Sprintf("%d", row.predictedIdle),
			fmt.Sprintf("%.1f%%", row.occupancyRate),
		}
		drawTableRow(pdf, cols, colWidths, false)
	}
	pdf.Ln(2)
}

func drawIdleList(pdf *gofpdf.Fpdf, period int, idle []model.ProfessionalIdleForecast) {
	if len(idle) == 0 {
		return
	}
	pdf.SetFont(fontName, "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Going idle within %d days", period), "", 1, "L", false, 0, "")

	headers := []string{"Professional", "Stack", "Current engagement", "End date", "Days"}
	colWidths := []float64{45, 30, 60, 28, 17}
	drawTableRow(pdf, headers, colWidths, true)

	for _, p := range idle {
		engagement := p.CurrentClientName
		if p.CurrentProjectName != "" {
			engagement = fmt.Sprintf("%s / %s", p.CurrentClientName, p.CurrentProjectName)
		}
		cols := []string{
			p.ProfessionalName,
			p.StackName,
			engagement,
			formatDate(p.AllocationEndDate),
			fmt.Sprintf("%d", p.DaysUntilIdle),
		}
		drawTableRow(pdf, cols, colWidths, false)
	}
	pdf.Ln(2)
}

func drawTableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
