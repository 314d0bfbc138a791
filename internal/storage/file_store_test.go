package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/fleetguardian/internal/model"
)

func sampleFleet() []model.Vehicle {
	return []model.Vehicle{
		{
			Code:                "CHD-101A",
			DriverName:          "Arman Seitkali",
			Number:              7,
			LastService:         model.Date{Day: 1, Month: 6, Year: 2025},
			NextDue:             model.Date{Day: 28, Month: 11, Year: 2025},
			CurrentMileage:      9600.50,
			LastServiceMileage:  9000,
			ServiceIntervalKm:   1000,
			ServiceIntervalDays: 180,
			ServiceHistoryCount: 4,
			Status:              model.StatusDueSoon,
			KmLeft:              399.50,
			HealthScore:         60,
			AvgDailyKm:          120.25,
			FuelEfficiency:      4.80,
		},
		{
			Code:               "CHD-102B",
			DriverName:         "Bekzat O",
			Number:             8,
			LastService:        model.Date{Day: 15, Month: 3, Year: 2025},
			CurrentMileage:     41000,
			LastServiceMileage: 40000,
			ServiceIntervalKm:  10000,
			Status:             model.StatusOK,
			KmLeft:             9000,
			HealthScore:        93,
		},
	}
}

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bus_data.txt")
	return NewFileStore(path, zerolog.Nop())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := newTestStore(t)
	fleet := sampleFleet()

	require.NoError(t, fs.Save(fleet))

	loaded, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, loaded, len(fleet))

	for i := range fleet {
		want, got := fleet[i], loaded[i]
		assert.Equal(t, want.Code, got.Code)
		assert.Equal(t, want.DriverName, got.DriverName)
		assert.Equal(t, want.Number, got.Number)
		assert.Equal(t, want.LastService, got.LastService)
		assert.Equal(t, want.NextDue, got.NextDue)
		assert.Equal(t, want.ServiceIntervalDays, got.ServiceIntervalDays)
		assert.Equal(t, want.ServiceHistoryCount, got.ServiceHistoryCount)
		assert.Equal(t, want.Status, got.Status)
		assert.Equal(t, want.HealthScore, got.HealthScore)
		assert.InDelta(t, want.CurrentMileage, got.CurrentMileage, 0.005)
		assert.InDelta(t, want.LastServiceMileage, got.LastServiceMileage, 0.005)
		assert.InDelta(t, want.ServiceIntervalKm, got.ServiceIntervalKm, 0.005)
		assert.InDelta(t, want.KmLeft, got.KmLeft, 0.005)
		assert.InDelta(t, want.AvgDailyKm, got.AvgDailyKm, 0.005)
		assert.InDelta(t, want.FuelEfficiency, got.FuelEfficiency, 0.005)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := newTestStore(t)

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadMalformedCount(t *testing.T) {
	fs := newTestStore(t)
	require.NoError(t, os.WriteFile(fs.Path(), []byte("not-a-number\ngarbage\n"), 0o644))

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadSkipsCorruptedLines(t *testing.T) {
	fs := newTestStore(t)
	fleet := sampleFleet()

	good1 := EncodeRecord(fleet[0])
	good2 := EncodeRecord(fleet[1])
	content := "3\n" + good1 + "\nthis|line|is|broken\n" + good2 + "\n"
	require.NoError(t, os.WriteFile(fs.Path(), []byte(content), 0o644))

	loaded, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "CHD-101A", loaded[0].Code)
	assert.Equal(t, "CHD-102B", loaded[1].Code)
}

func TestDecodeRecordRejectsBadStatus(t *testing.T) {
	v := sampleFleet()[0]
	v.Status = model.Status(9) // not a known band

	_, err := DecodeRecord(EncodeRecord(v))
	assert.ErrorIs(t, err, ErrInvalidRecordLine)
}

func TestDecodeRecordFieldCount(t *testing.T) {
	_, err := DecodeRecord("only|four|fields|here")
	assert.ErrorIs(t, err, ErrInvalidRecordLine)
}

func TestDecodeRecordBadNumeric(t *testing.T) {
	v := sampleFleet()[0]
	line := EncodeRecord(v)
	// corrupt the number field
	bad := "CHD-101A|Arman Seitkali|seven" + line[len("CHD-101A|Arman Seitkali|7"):]

	_, err := DecodeRecord(bad)
	assert.ErrorIs(t, err, ErrInvalidRecordLine)
}

func TestEncodeRecordLayout(t *testing.T) {
	v := sampleFleet()[0]
	want := "CHD-101A|Arman Seitkali|7|1|6|2025|28|11|2025|9600.50|9000.00|1000.00|180|4|1|399.50|60|120.25|4.80"
	assert.Equal(t, want, EncodeRecord(v))
}

func TestSaveUnavailablePath(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "missing-dir", "bus_data.txt"), zerolog.Nop())

	err := fs.Save(sampleFleet())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
