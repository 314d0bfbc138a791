package model

import (
	"fmt"
	"strings"
)

// Status is the maintenance band of a vehicle. The integer values are part
// of the persisted file format and must stay stable.
type Status int

const (
	StatusOK      Status = 0
	StatusDueSoon Status = 1
	StatusOverdue Status = 2
)

func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusDueSoon:
		return "DUE SOON"
	case StatusOverdue:
		return "OVERDUE"
	default:
		return "UNKNOWN"
	}
}

// ParseStatus decodes a persisted status ordinal, rejecting anything outside
// the known bands.
func ParseStatus(value int) (Status, error) {
	switch Status(value) {
	case StatusOK, StatusDueSoon, StatusOverdue:
		return Status(value), nil
	default:
		return StatusOK, fmt.Errorf("unknown status ordinal %d", value)
	}
}

// Vehicle is one tracked fleet vehicle. Status, KmLeft, HealthScore and
// NextDue are caches written by the maintenance evaluator; they are persisted
// so a reload shows the last known state, but they are never authoritative.
type Vehicle struct {
	Code       string
	DriverName string
	Number     int

	LastService Date
	NextDue     Date

	CurrentMileage      float64
	LastServiceMileage  float64
	ServiceIntervalKm   float64
	ServiceIntervalDays int

	ServiceHistoryCount int
	Status              Status

	KmLeft      float64
	HealthScore int

	AvgDailyKm     float64
	FuelEfficiency float64
}

// NormalizeCode upper-cases and trims a vehicle code. Codes are compared
// case-insensitively, and stored normalized.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
