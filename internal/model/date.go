package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDate = errors.New("invalid date")

// Date is a day/month/year triple with deliberately coarse arithmetic:
// months count as 30 days and years as 365. The simplification is part of
// the persisted contract, so due dates computed from it must not be
// "corrected" to a real calendar.
type Date struct {
	Day   int
	Month int
	Year  int
}

func (d Date) IsZero() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0
}

// Valid checks structure only. Month lengths and leap years are ignored on
// purpose, so 31/02/2026 passes.
func (d Date) Valid() bool {
	return d.Year > 0 && d.Month >= 1 && d.Month <= 12 && d.Day >= 1 && d.Day <= 31
}

// Days converts the date to a linear day count under the coarse calendar.
func (d Date) Days() int {
	return d.Year*365 + d.Month*30 + d.Day
}

// DateFromDays inverts Days. Month and day are clamped to a minimum of 1 so
// the result is always structurally valid.
func DateFromDays(total int) Date {
	d := Date{Year: total / 365}
	rem := total % 365
	d.Month = rem / 30
	if d.Month == 0 {
		d.Month = 1
	}
	d.Day = rem % 30
	if d.Day == 0 {
		d.Day = 1
	}
	return d
}

func (d Date) AddDays(days int) Date {
	return DateFromDays(d.Days() + days)
}

// String renders DD-MM-YYYY, the display format used in listings and reports.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, d.Month, d.Year)
}

// ParseDate reads dd/mm/yyyy user input.
func ParseDate(value string) (Date, error) {
	var d Date
	if _, err := fmt.Sscanf(strings.TrimSpace(value), "%d/%d/%d", &d.Day, &d.Month, &d.Year); err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	if !d.Valid() {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return d, nil
}
