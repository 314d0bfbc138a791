package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/fleetguardian/internal/model"
	"github.com/nurpe/fleetguardian/internal/report"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the maintenance report as a workbook: a summary sheet
// with fleet-wide counts and a detail sheet with one row per vehicle, same
// columns as the CSV report.
func (g *Generator) Generate(vehicles []model.Vehicle) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, vehicles); err != nil {
		return nil, err
	}

	detailSheet := "Fleet"
	file.NewSheet(detailSheet)
	if err := g.writeDetail(file, detailSheet, vehicles); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, vehicles []model.Vehicle) error {
	overdue, dueSoon := 0, 0
	for _, v := range vehicles {
		switch v.Status {
		case model.StatusOverdue:
			overdue++
		case model.StatusDueSoon:
			dueSoon++
		}
	}

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Total vehicles")
	set("B1", len(vehicles))
	set("A2", "Overdue")
	set("B2", overdue)
	set("A3", "Due soon")
	set("B3", dueSoon)
	set("A4", "OK")
	set("B4", len(vehicles)-overdue-dueSoon)

	_ = file.SetColWidth(sheet, "A", "A", 20)
	_ = file.SetColWidth(sheet, "B", "B", 12)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, vehicles []model.Vehicle) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	for i, header := range report.Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, v := range vehicles {
		row := i + 2
		set(fmt.Sprintf("A%d", row), v.Number)
		set(fmt.Sprintf("B%d", row), v.Code)
		set(fmt.Sprintf("C%d", row), v.DriverName)
		set(fmt.Sprintf("D%d", row), v.LastService.String())
		set(fmt.Sprintf("E%d", row), report.NextDueLabel(v))
		set(fmt.Sprintf("F%d", row), v.CurrentMileage)
		set(fmt.Sprintf("G%d", row), v.KmLeft)
		set(fmt.Sprintf("H%d", row), v.HealthScore)
		set(fmt.Sprintf("I%d", row), v.Status.Label())
		set(fmt.Sprintf("J%d", row), v.ServiceHistoryCount)
	}

	_ = file.SetColWidth(sheet, "A", "B", 12)
	_ = file.SetColWidth(sheet, "C", "C", 28)
	_ = file.SetColWidth(sheet, "D", "E", 16)
	_ = file.SetColWidth(sheet, "F", "J", 14)
	return nil
}
