// Package cli owns the interactive console: the menu loop, validated
// prompting and colored rendering. All domain decisions live in the service
// layer; this package only collects well-typed values and shows results.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nurpe/fleetguardian/internal/config"
	"github.com/nurpe/fleetguardian/internal/model"
	"github.com/nurpe/fleetguardian/internal/service"
	"github.com/nurpe/fleetguardian/internal/storage"
)

const (
	maxBusNumber   = 9999999
	maxMileageKm   = 100000000.0
	maxIntervalKm  = 100000.0
	maxIntervalDay = 5000
	maxHistory     = 1500
)

type Menu struct {
	svc    *service.FleetService
	prompt *Prompter
	render *Renderer
	cfg    *config.Config
	out    io.Writer
}

func NewMenu(svc *service.FleetService, in io.Reader, out io.Writer, cfg *config.Config) *Menu {
	return &Menu{
		svc:    svc,
		prompt: NewPrompter(in, out),
		render: NewRenderer(out),
		cfg:    cfg,
		out:    out,
	}
}

// Run drives the session: load, reference date, summary, then the menu loop
// until save & exit. No error is fatal; failed operations leave the fleet
// unchanged and return to the menu.
func (m *Menu) Run() {
	m.render.Banner()

	if err := m.svc.Load(); err != nil {
		m.render.Error("Could not load fleet data: %v", err)
	}

	date := m.prompt.Date("Enter reference date for maintenance check (dd/mm/yyyy): ")
	if err := m.svc.SetReferenceDate(date); err != nil {
		m.render.Error("%v", err)
	}
	m.render.MaintenanceSummary(m.svc.Summarize(), m.svc.All())

	for {
		m.printMenu()
		choice := m.prompt.Int("Enter choice: ", 1, 10)

		switch choice {
		case 1:
			m.changeReferenceDate()
		case 2:
			m.addVehicle()
		case 3:
			m.editVehicle()
		case 4:
			m.updateMileage()
		case 5:
			m.deleteVehicle()
		case 6:
			m.searchVehicle()
		case 7:
			m.render.Fleet(m.svc.All())
		case 8:
			m.showDue()
		case 9:
			m.exportReports()
		case 10:
			if m.saveAndExit() {
				return
			}
		}
	}
}

func (m *Menu) printMenu() {
	headingText.Fprintln(m.out, "-------------- Main Menu --------------")
	fmt.Fprintf(m.out, "Current reference date: %s\n", m.svc.ReferenceDate().String())
	fmt.Fprintln(m.out, "---------------------------------------")
	fmt.Fprintln(m.out, "1. Change reference date (dd/mm/yyyy)")
	fmt.Fprintln(m.out, "2. Add new bus")
	fmt.Fprintln(m.out, "3. Edit existing bus details")
	fmt.Fprintln(m.out, "4. Update mileage")
	fmt.Fprintln(m.out, "5. Delete bus")
	fmt.Fprintln(m.out, "6. Search by bus number")
	fmt.Fprintln(m.out, "7. View all buses (all data)")
	fmt.Fprintln(m.out, "8. Show buses due soon / overdue")
	fmt.Fprintln(m.out, "9. Export maintenance report (CSV/XLSX/PDF)")
	fmt.Fprintln(m.out, "10. Save & exit")
	fmt.Fprintln(m.out, "---------------------------------------")
}

func (m *Menu) changeReferenceDate() {
	date := m.prompt.Date("Enter new reference date (dd/mm/yyyy): ")
	if err := m.svc.SetReferenceDate(date); err != nil {
		m.render.Error("%v", err)
		return
	}
	m.render.Success("Reference date updated to: %s", date.String())
	m.render.MaintenanceSummary(m.svc.Summarize(), m.svc.All())
}

// promptCode loops until the code is non-empty and unused. excludePosition
// is 0 when adding; keepCurrent allows an empty line to keep the old code
// while editing.
func (m *Menu) promptCode(prompt string, excludePosition int, keepCurrent string) string {
	for {
		raw := m.prompt.Line(prompt)
		code := model.NormalizeCode(raw)
		if code == "" {
			if keepCurrent != "" {
				return keepCurrent
			}
			m.render.Error("Code cannot be empty.")
			continue
		}
		if m.svc.CodeInUse(code, excludePosition) {
			m.render.Error("This bus code already exists (case-insensitive). Please enter a different code.")
			continue
		}
		return code
	}
}

func (m *Menu) promptNumber(prompt string, excludePosition int) int {
	for {
		number := m.prompt.Int(prompt, 1, maxBusNumber)
		if m.svc.NumberInUse(number, excludePosition) {
			m.render.Error("This bus number already exists. Please enter a different number.")
			continue
		}
		return number
	}
}

func (m *Menu) promptDetails(in *service.VehicleInput) {
	in.DriverName = m.prompt.DriverName("Enter driver name (full name): ")
	in.LastService = m.prompt.Date("Enter last service date (dd/mm/yyyy): ")
	in.LastServiceMileage = m.prompt.Float("Enter last service mileage (km): ", 0, maxMileageKm)
	in.CurrentMileage = m.prompt.Float("Enter current mileage (km): ", 0, maxMileageKm)
	in.ServiceIntervalKm = m.prompt.Float("Enter service interval (km), e.g. 10000: ", 1, maxIntervalKm)
	in.ServiceIntervalDays = m.prompt.Int("Enter service interval in days (0 if not used): ", 0, maxIntervalDay)
	in.AvgDailyKm = m.prompt.Float("Enter average daily km: ", 0, maxMileageKm)
	in.FuelEfficiency = m.prompt.Float("Enter fuel efficiency (km/l): ", 0, 200)
	in.ServiceHistoryCount = m.prompt.Int("Enter service history count: ", 0, maxHistory)
}

func (m *Menu) addVehicle() {
	var in service.VehicleInput
	in.Code = m.promptCode("Enter bus code (e.g. CHD-101A): ", 0, "")
	in.Number = m.promptNumber("Enter numeric bus number: ", 0)
	m.promptDetails(&in)

	if _, err := m.svc.Add(in); err != nil {
		m.render.Error("Could not add bus: %v", err)
		return
	}
	m.render.Success("Bus added. Total buses: %d", m.svc.Count())
}

func (m *Menu) editVehicle() {
	vehicles := m.svc.All()
	if len(vehicles) == 0 {
		m.render.Warn("No buses available to select.")
		return
	}
	m.render.Positions(vehicles)
	position := m.prompt.Int("\nEnter position: ", 1, len(vehicles))
	current := vehicles[position-1]

	var in service.VehicleInput
	in.Code = m.promptCode(
		fmt.Sprintf("Enter new bus code (leave empty to keep '%s'): ", current.Code),
		position, current.Code)
	in.Number = m.promptNumber("Enter new numeric bus number (or same as before): ", position)
	m.promptDetails(&in)

	if err := m.svc.EditAtPosition(position, in); err != nil {
		m.render.Error("Could not edit bus: %v", err)
		return
	}
	m.render.Success("Bus at position %d updated.", position)
}

func (m *Menu) updateMileage() {
	number := m.prompt.Int("Enter bus number to update mileage: ", 1, maxBusNumber)
	v, err := m.svc.Search(number)
	if err != nil {
		m.render.Error("Bus not found.")
		return
	}
	fmt.Fprintf(m.out, "Current mileage for bus %d: %.1f km\n", v.Number, v.CurrentMileage)
	mileage := m.prompt.Float("Enter new current mileage (km): ", 0, maxMileageKm)
	if err := m.svc.UpdateMileage(number, mileage); err != nil {
		m.render.Error("Could not update mileage: %v", err)
		return
	}
	m.render.Success("Mileage updated.")
}

func (m *Menu) deleteVehicle() {
	number := m.prompt.Int("Enter bus number to delete: ", 1, maxBusNumber)
	if err := m.svc.Delete(number); err != nil {
		m.render.Error("Bus not found.")
		return
	}
	m.render.Warn("Bus deleted. Remaining: %d", m.svc.Count())
}

func (m *Menu) searchVehicle() {
	number := m.prompt.Int("Enter bus number to search: ", 1, maxBusNumber)
	v, err := m.svc.Search(number)
	if err != nil {
		m.render.Error("Bus not found.")
		return
	}
	m.render.Vehicle(v)
}

func (m *Menu) showDue() {
	headingText.Fprintln(m.out, "\n=== Buses Due Soon / Overdue ===")
	due := m.svc.Due()
	if len(due) == 0 {
		m.render.Success("No maintenance due right now or in the next few days.")
		return
	}
	for _, v := range due {
		m.render.Vehicle(v)
		fmt.Fprintln(m.out)
	}
}

func (m *Menu) exportReports() {
	exports := []struct {
		name string
		path string
		gen  func() ([]byte, error)
	}{
		{"CSV", m.cfg.Files.ReportCSV, m.svc.ExportCSV},
		{"XLSX", m.cfg.Files.ReportXLSX, m.svc.ExportXLSX},
		{"PDF", m.cfg.Files.ReportPDF, m.svc.ExportPDF},
	}
	for _, exp := range exports {
		content, err := exp.gen()
		if err != nil {
			m.render.Error("Could not build %s report: %v", exp.name, err)
			continue
		}
		if err := os.WriteFile(exp.path, content, 0o644); err != nil {
			m.render.Error("Could not write %s report: %v", exp.name, err)
			continue
		}
		m.render.Success("%s report exported to %s", exp.name, exp.path)
	}
}

// saveAndExit persists the fleet. On a storage failure the session stays
// alive with the fleet intact so the user can retry.
func (m *Menu) saveAndExit() bool {
	if err := m.svc.Save(); err != nil {
		m.render.Error("Could not save fleet: %v", err)
		if errors.Is(err, storage.ErrStorageUnavailable) {
			m.render.Warn("Your data is still in memory. Fix the problem and try again.")
		}
		return false
	}
	m.render.Success("Fleet saved to %s", m.cfg.Files.Data)
	titleText.Fprintln(m.out, "Goodbye. Data saved.")
	return true
}
