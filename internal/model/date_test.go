package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValid(t *testing.T) {
	cases := []struct {
		name string
		date Date
		want bool
	}{
		{"normal date", Date{Day: 15, Month: 6, Year: 2025}, true},
		{"unset date", Date{}, false},
		{"zero year", Date{Day: 1, Month: 1, Year: 0}, false},
		{"month too big", Date{Day: 1, Month: 13, Year: 2025}, false},
		{"day too big", Date{Day: 32, Month: 1, Year: 2025}, false},
		{"no month-length check", Date{Day: 31, Month: 2, Year: 2025}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.date.Valid())
		})
	}
}

func TestDateDays(t *testing.T) {
	d := Date{Day: 10, Month: 7, Year: 2025}
	assert.Equal(t, 2025*365+7*30+10, d.Days())
}

func TestDateFromDaysClampsToOne(t *testing.T) {
	// 365 leaves no remainder, so month and day clamp to 1.
	d := DateFromDays(365)
	assert.Equal(t, Date{Day: 1, Month: 1, Year: 1}, d)
}

func TestAddDays(t *testing.T) {
	d := Date{Day: 1, Month: 1, Year: 2025}
	next := d.AddDays(180)
	assert.Equal(t, Date{Day: 1, Month: 7, Year: 2025}, next)
}

func TestDateString(t *testing.T) {
	d := Date{Day: 3, Month: 9, Year: 2025}
	assert.Equal(t, "03-09-2025", d.String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("15/06/2025")
	require.NoError(t, err)
	assert.Equal(t, Date{Day: 15, Month: 6, Year: 2025}, d)

	for _, bad := range []string{"", "15-06-2025", "32/01/2025", "01/13/2025", "abc"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestParseStatus(t *testing.T) {
	for _, ordinal := range []int{0, 1, 2} {
		s, err := ParseStatus(ordinal)
		require.NoError(t, err)
		assert.Equal(t, Status(ordinal), s)
	}
	_, err := ParseStatus(3)
	assert.Error(t, err)
	_, err = ParseStatus(-1)
	assert.Error(t, err)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "OK", StatusOK.Label())
	assert.Equal(t, "DUE SOON", StatusDueSoon.Label())
	assert.Equal(t, "OVERDUE", StatusOverdue.Label())
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "CHD-101A", NormalizeCode("  chd-101a "))
}
