package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/fleetguardian/internal/model"
	"github.com/nurpe/fleetguardian/internal/report"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders the maintenance report as a landscape A4 document with a
// fleet summary block followed by one table row per vehicle.
func (g *Generator) Generate(vehicles []model.Vehicle) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "FleetGuardian Maintenance Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	overdue, dueSoon := 0, 0
	for _, v := range vehicles {
		switch v.Status {
		case model.StatusOverdue:
			overdue++
		case model.StatusDueSoon:
			dueSoon++
		}
	}

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Vehicles: %d   Overdue: %d   Due soon: %d", len(vehicles), overdue, dueSoon), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{16, 26, 52, 26, 26, 26, 24, 20, 24, 22}
	drawTableRow(pdf, g.fontName, report.Header, colWidths, true)

	for _, v := range vehicles {
		row := []string{
			fmt.Sprintf("%d", v.Number),
			v.Code,
			v.DriverName,
			v.LastService.String(),
			report.NextDueLabel(v),
			fmt.Sprintf("%.1f", v.CurrentMileage),
			fmt.Sprintf("%.1f", v.KmLeft),
			fmt.Sprintf("%d", v.HealthScore),
			v.Status.Label(),
			fmt.Sprintf("%d", v.ServiceHistoryCount),
		}
		if v.Status == model.StatusOverdue {
			pdf.SetTextColor(200, 0, 0)
		}
		drawTableRow(pdf, g.fontName, row, colWidths, false)
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, col := range cols {
		align := "L"
		if i >= 5 && i <= 7 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}
