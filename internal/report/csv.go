// Package report renders the maintenance report rows produced by the
// evaluator into the supported interchange formats.
package report

import (
	"bytes"
	"fmt"

	"github.com/nurpe/fleetguardian/internal/model"
)

// Header is the fixed column set of the maintenance report, shared by every
// output format.
var Header = []string{
	"BusNo", "BusCode", "DriverName", "LastServiceDate", "NextDueDate",
	"CurrentKm", "KmLeft", "HealthScore", "Status", "ServiceHistoryCount",
}

type CSVRenderer struct{}

func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Generate produces the comma-separated report. Text fields are always
// double-quoted, dates are DD-MM-YYYY, and NextDueDate is empty when no
// day-based interval is configured. The layout is an external contract;
// encoding/csv is not used because it only quotes when forced to.
func (r *CSVRenderer) Generate(vehicles []model.Vehicle) ([]byte, error) {
	var buf bytes.Buffer

	for i, col := range Header {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(col)
	}
	buf.WriteByte('\n')

	for _, v := range vehicles {
		fmt.Fprintf(&buf, "%d,\"%s\",\"%s\",\"%s\",\"%s\",%.1f,%.1f,%d,\"%s\",%d\n",
			v.Number,
			v.Code,
			v.DriverName,
			v.LastService.String(),
			NextDueLabel(v),
			v.CurrentMileage,
			v.KmLeft,
			v.HealthScore,
			v.Status.Label(),
			v.ServiceHistoryCount,
		)
	}
	return buf.Bytes(), nil
}

// NextDueLabel formats the next due date for report output: empty when unset.
func NextDueLabel(v model.Vehicle) string {
	if v.NextDue.Year <= 0 {
		return ""
	}
	return v.NextDue.String()
}
