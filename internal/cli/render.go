package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/nurpe/fleetguardian/internal/maintenance"
	"github.com/nurpe/fleetguardian/internal/model"
	"github.com/nurpe/fleetguardian/internal/report"
	"github.com/nurpe/fleetguardian/internal/service"
)

var (
	okText      = color.New(color.FgGreen)
	warnText    = color.New(color.FgYellow)
	dangerText  = color.New(color.FgRed)
	titleText   = color.New(color.FgCyan, color.Bold)
	headingText = color.New(color.Bold)
)

// Renderer writes the console views: banner, tables, detail cards and the
// maintenance summary.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) Banner() {
	titleText.Fprint(r.out,
		"\n=============================================\n"+
			"               FleetGuardian\n"+
			"   Intelligent Bus Fleet Maintenance Tracker\n"+
			"=============================================\n")
}

func (r *Renderer) Success(format string, args ...interface{}) {
	okText.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Warn(format string, args ...interface{}) {
	warnText.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Error(format string, args ...interface{}) {
	dangerText.Fprintf(r.out, format+"\n", args...)
}

func statusText(s model.Status) *color.Color {
	switch s {
	case model.StatusOverdue:
		return dangerText
	case model.StatusDueSoon:
		return warnText
	default:
		return okText
	}
}

// Vehicle prints the full detail card for one record.
func (r *Renderer) Vehicle(v model.Vehicle) {
	statusText(v.Status).Fprintf(r.out, "Bus %d [%s] (%s)\n", v.Number, v.Code, v.Status.Label())
	fmt.Fprintf(r.out, "  Driver name       : %s\n", v.DriverName)
	fmt.Fprintf(r.out, "  Last service date : %s\n", v.LastService.String())
	if v.NextDue.Year > 0 {
		fmt.Fprintf(r.out, "  Next due date     : %s\n", v.NextDue.String())
	}
	fmt.Fprintf(r.out, "  Last service km   : %.1f\n", v.LastServiceMileage)
	fmt.Fprintf(r.out, "  Current km        : %.1f\n", v.CurrentMileage)
	fmt.Fprintf(r.out, "  Interval          : %.1f km, %d days\n", v.ServiceIntervalKm, v.ServiceIntervalDays)
	fmt.Fprintf(r.out, "  Km left           : %.1f\n", v.KmLeft)
	fmt.Fprintf(r.out, "  Avg daily km      : %.1f\n", v.AvgDailyKm)
	fmt.Fprintf(r.out, "  Fuel efficiency   : %.1f km/l\n", v.FuelEfficiency)
	fmt.Fprintf(r.out, "  Health score      : %d/100\n", v.HealthScore)
	fmt.Fprintf(r.out, "  Service history   : %d\n", v.ServiceHistoryCount)
}

// Fleet prints the summary table of every record.
func (r *Renderer) Fleet(vehicles []model.Vehicle) {
	if len(vehicles) == 0 {
		r.Warn("No buses in fleet.")
		return
	}

	headingText.Fprintln(r.out, "\n================ Fleet Summary (All Buses) ================")
	fmt.Fprintf(r.out, "Total buses: %d\n\n", len(vehicles))

	fmt.Fprintln(r.out, "Bus  | Code      | Driver        | Last Service | Next Due   | CurrKm     | KmLeft    | Health   | Status")
	fmt.Fprintln(r.out, "-----+-----------+---------------+--------------+------------+------------+-----------+----------+---------")
	for _, v := range vehicles {
		nextDue := report.NextDueLabel(v)
		if nextDue == "" {
			nextDue = "-"
		}
		fmt.Fprintf(r.out, "%-4d | %-9.9s | %-13.13s | %-12s | %-10s | %10.1f | %9.1f | %8d | ",
			v.Number, v.Code, v.DriverName, v.LastService.String(), nextDue,
			v.CurrentMileage, v.KmLeft, v.HealthScore)
		statusText(v.Status).Fprintf(r.out, "%-9s\n", v.Status.Label())
	}
	fmt.Fprintln(r.out)
}

// Positions prints the short position-addressed table used by the edit flow.
func (r *Renderer) Positions(vehicles []model.Vehicle) {
	fmt.Fprintln(r.out, "\nAvailable buses (positions):")
	fmt.Fprintln(r.out, "Pos | BusNo | Code        | Driver")
	fmt.Fprintln(r.out, "----+-------+-------------+----------------")
	for i, v := range vehicles {
		fmt.Fprintf(r.out, "%-3d | %-5d | %-11.11s | %-16.16s\n", i+1, v.Number, v.Code, v.DriverName)
	}
}

// MaintenanceSummary prints the overdue and due-soon call-outs shown after
// every reference date change.
func (r *Renderer) MaintenanceSummary(sum service.Summary, vehicles []model.Vehicle) {
	if sum.Total == 0 {
		r.Warn("No buses in fleet yet. Add bus data to check maintenance.")
		return
	}
	if sum.Overdue == 0 && sum.DueSoon == 0 {
		r.Success("No maintenance due right now, or upcoming in the next few days.")
		return
	}

	if sum.Overdue > 0 {
		dangerText.Fprintln(r.out, "\nThese buses NEED maintenance on or before the chosen date:")
		for _, v := range vehicles {
			if v.Status == model.StatusOverdue {
				fmt.Fprintf(r.out, "  - Bus %d [%s] (driver: %s)\n", v.Number, v.Code, v.DriverName)
			}
		}
	}
	if sum.DueSoon > 0 {
		warnText.Fprintf(r.out, "\nThese buses will need maintenance SOON (within %.0f km):\n", maintenance.DueSoonThresholdKm)
		for _, v := range vehicles {
			if v.Status == model.StatusDueSoon {
				fmt.Fprintf(r.out, "  - Bus %d [%s] (driver: %s), km left: %.1f\n", v.Number, v.Code, v.DriverName, v.KmLeft)
			}
		}
	}
	fmt.Fprintln(r.out)
}
