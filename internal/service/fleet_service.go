// Package service orchestrates the fleet store, the maintenance evaluator
// and the persistence layer behind the command surface the console exposes.
package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/nurpe/fleetguardian/internal/fleet"
	"github.com/nurpe/fleetguardian/internal/maintenance"
	"github.com/nurpe/fleetguardian/internal/model"
	"github.com/nurpe/fleetguardian/internal/storage"
)

// ReportGenerator renders evaluated report rows into one output format.
type ReportGenerator interface {
	Generate(vehicles []model.Vehicle) ([]byte, error)
}

type FleetService struct {
	store *fleet.Store
	files *storage.FileStore
	csv   ReportGenerator
	xlsx  ReportGenerator
	pdf   ReportGenerator
	log   zerolog.Logger

	reference model.Date
}

func NewFleetService(store *fleet.Store, files *storage.FileStore, csv, xlsx, pdf ReportGenerator, log zerolog.Logger) *FleetService {
	return &FleetService{
		store: store,
		files: files,
		csv:   csv,
		xlsx:  xlsx,
		pdf:   pdf,
		log:   log,
	}
}

// VehicleInput carries the already-typed field values for an add or edit.
// Prompting and raw parsing belong to the console layer.
type VehicleInput struct {
	Code                string
	DriverName          string
	Number              int
	LastService         model.Date
	CurrentMileage      float64
	LastServiceMileage  float64
	ServiceIntervalKm   float64
	ServiceIntervalDays int
	ServiceHistoryCount int
	AvgDailyKm          float64
	FuelEfficiency      float64
}

func (in VehicleInput) validate() error {
	if model.NormalizeCode(in.Code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidInput)
	}
	if in.Number < 1 {
		return fmt.Errorf("%w: number must be positive", ErrInvalidInput)
	}
	if !hasNonDigit(in.DriverName) {
		return fmt.Errorf("%w: driver name must contain a non-digit character", ErrInvalidInput)
	}
	if !in.LastService.Valid() {
		return fmt.Errorf("%w: last service date", model.ErrInvalidDate)
	}
	if in.CurrentMileage < 0 || in.LastServiceMileage < 0 || in.ServiceIntervalKm < 0 {
		return fmt.Errorf("%w: mileage values must be non-negative", ErrInvalidInput)
	}
	if in.ServiceIntervalDays < 0 || in.ServiceHistoryCount < 0 {
		return fmt.Errorf("%w: interval days and history count must be non-negative", ErrInvalidInput)
	}
	if in.AvgDailyKm < 0 || in.FuelEfficiency < 0 {
		return fmt.Errorf("%w: avg daily km and fuel efficiency must be non-negative", ErrInvalidInput)
	}
	return nil
}

func hasNonDigit(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// SetReferenceDate changes the as-of date for day-based overdue checks and
// re-evaluates the whole fleet against it.
func (s *FleetService) SetReferenceDate(d model.Date) error {
	if !d.Valid() {
		return fmt.Errorf("%w: reference date", model.ErrInvalidDate)
	}
	s.reference = d
	s.refresh()
	s.log.Info().Str("reference", d.String()).Msg("reference date updated")
	return nil
}

func (s *FleetService) ReferenceDate() model.Date {
	return s.reference
}

// refresh re-runs the evaluator over every record. Derived fields are a
// cache and are never trusted from a prior run.
func (s *FleetService) refresh() {
	s.store.Each(func(v *model.Vehicle) {
		maintenance.Apply(v, s.reference)
	})
}

// Add inserts a new record after validation and uniqueness checks. Derived
// fields start from their neutral defaults and are evaluated immediately.
func (s *FleetService) Add(in VehicleInput) (model.Vehicle, error) {
	if err := in.validate(); err != nil {
		return model.Vehicle{}, err
	}
	code := model.NormalizeCode(in.Code)
	if s.store.CodeExists(code, fleet.NoExclude) {
		return model.Vehicle{}, fmt.Errorf("%w: %s", fleet.ErrDuplicateCode, code)
	}
	if s.store.NumberExists(in.Number, fleet.NoExclude) {
		return model.Vehicle{}, fmt.Errorf("%w: %d", fleet.ErrDuplicateNumber, in.Number)
	}

	v := in.record(code)
	v.Status = model.StatusOK
	v.HealthScore = 100
	if err := s.store.Insert(v); err != nil {
		return model.Vehicle{}, err
	}
	s.refresh()

	s.log.Info().Int("number", v.Number).Str("code", v.Code).Msg("vehicle added")
	return s.store.ByNumber(v.Number)
}

// EditAtPosition replaces the editable fields of the record at the 1-based
// position, holding the uniqueness invariants against every other record.
func (s *FleetService) EditAtPosition(position int, in VehicleInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	code := model.NormalizeCode(in.Code)
	if s.store.CodeExists(code, position-1) {
		return fmt.Errorf("%w: %s", fleet.ErrDuplicateCode, code)
	}
	if s.store.NumberExists(in.Number, position-1) {
		return fmt.Errorf("%w: %d", fleet.ErrDuplicateNumber, in.Number)
	}

	err := s.store.UpdateAtPosition(position, func(v *model.Vehicle) error {
		*v = in.record(code)
		return nil
	})
	if err != nil {
		return err
	}
	s.refresh()

	s.log.Info().Int("position", position).Str("code", code).Msg("vehicle edited")
	return nil
}

// UpdateMileage sets the current mileage of the vehicle with the given
// number and re-evaluates.
func (s *FleetService) UpdateMileage(number int, mileage float64) error {
	if mileage < 0 {
		return fmt.Errorf("%w: mileage must be non-negative", ErrInvalidInput)
	}
	idx, err := s.store.FindByNumber(number)
	if err != nil {
		return err
	}
	err = s.store.UpdateAtPosition(idx+1, func(v *model.Vehicle) error {
		v.CurrentMileage = mileage
		return nil
	})
	if err != nil {
		return err
	}
	s.refresh()

	s.log.Info().Int("number", number).Float64("mileage", mileage).Msg("mileage updated")
	return nil
}

func (s *FleetService) Delete(number int) error {
	if err := s.store.DeleteByNumber(number); err != nil {
		return err
	}
	s.log.Info().Int("number", number).Int("remaining", s.store.Count()).Msg("vehicle deleted")
	return nil
}

// Search re-evaluates and returns the record with the given number.
func (s *FleetService) Search(number int) (model.Vehicle, error) {
	s.refresh()
	return s.store.ByNumber(number)
}

// All returns the evaluated fleet in insertion order.
func (s *FleetService) All() []model.Vehicle {
	s.refresh()
	return s.store.Snapshot()
}

// Due returns the evaluated records that are DUE SOON or OVERDUE.
func (s *FleetService) Due() []model.Vehicle {
	s.refresh()
	var due []model.Vehicle
	for _, v := range s.store.Snapshot() {
		if v.Status != model.StatusOK {
			due = append(due, v)
		}
	}
	return due
}

func (s *FleetService) Count() int {
	return s.store.Count()
}

// CodeInUse reports whether a code is taken by any record other than the one
// at the 1-based position. Pass 0 when adding. Lets the console re-prompt on
// a duplicate before submitting the full record.
func (s *FleetService) CodeInUse(code string, excludePosition int) bool {
	return s.store.CodeExists(model.NormalizeCode(code), excludePosition-1)
}

// NumberInUse is the exact-match counterpart of CodeInUse.
func (s *FleetService) NumberInUse(number int, excludePosition int) bool {
	return s.store.NumberExists(number, excludePosition-1)
}

// Summary holds fleet-wide status counts as of the last evaluation.
type Summary struct {
	Total   int
	Overdue int
	DueSoon int
}

func (s *FleetService) Summarize() Summary {
	s.refresh()
	sum := Summary{Total: s.store.Count()}
	s.store.Each(func(v *model.Vehicle) {
		switch v.Status {
		case model.StatusOverdue:
			sum.Overdue++
		case model.StatusDueSoon:
			sum.DueSoon++
		}
	})
	return sum
}

// Load replaces the in-memory fleet with the persisted one. Derived fields
// keep their persisted values until the next evaluation, so the last known
// status survives a restart.
func (s *FleetService) Load() error {
	vehicles, err := s.files.Load()
	if err != nil {
		return err
	}
	s.store.Replace(vehicles)
	return nil
}

// Save persists the current fleet, including the evaluator's last output.
// On failure the in-memory fleet is intact and the caller may retry.
func (s *FleetService) Save() error {
	return s.files.Save(s.store.Snapshot())
}

func (s *FleetService) ExportCSV() ([]byte, error) {
	s.refresh()
	return s.csv.Generate(s.store.Snapshot())
}

func (s *FleetService) ExportXLSX() ([]byte, error) {
	s.refresh()
	return s.xlsx.Generate(s.store.Snapshot())
}

func (s *FleetService) ExportPDF() ([]byte, error) {
	s.refresh()
	return s.pdf.Generate(s.store.Snapshot())
}

func (in VehicleInput) record(code string) model.Vehicle {
	return model.Vehicle{
		Code:                code,
		DriverName:          strings.TrimSpace(in.DriverName),
		Number:              in.Number,
		LastService:         in.LastService,
		CurrentMileage:      in.CurrentMileage,
		LastServiceMileage:  in.LastServiceMileage,
		ServiceIntervalKm:   in.ServiceIntervalKm,
		ServiceIntervalDays: in.ServiceIntervalDays,
		ServiceHistoryCount: in.ServiceHistoryCount,
		AvgDailyKm:          in.AvgDailyKm,
		FuelEfficiency:      in.FuelEfficiency,
	}
}
