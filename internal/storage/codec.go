package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nurpe/fleetguardian/internal/model"
)

var (
	ErrInvalidRecordLine  = errors.New("invalid record line")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// recordFieldCount is the number of pipe-separated fields in one persisted
// record line. The layout is fixed; see EncodeRecord.
const recordFieldCount = 19

// EncodeRecord renders one vehicle as a pipe-separated line:
//
//	code|driver|number|lsDay|lsMonth|lsYear|ndDay|ndMonth|ndYear|
//	currentKm|lastServiceKm|intervalKm|intervalDays|historyCount|
//	status|kmLeft|healthScore|avgDailyKm|fuelEfficiency
//
// Decimal fields carry two decimal places. The evaluator's last output is
// persisted too, so a reload shows the last known status before any
// re-evaluation.
func EncodeRecord(v model.Vehicle) string {
	return fmt.Sprintf("%s|%s|%d|%d|%d|%d|%d|%d|%d|%.2f|%.2f|%.2f|%d|%d|%d|%.2f|%d|%.2f|%.2f",
		v.Code,
		v.DriverName,
		v.Number,
		v.LastService.Day, v.LastService.Month, v.LastService.Year,
		v.NextDue.Day, v.NextDue.Month, v.NextDue.Year,
		v.CurrentMileage,
		v.LastServiceMileage,
		v.ServiceIntervalKm,
		v.ServiceIntervalDays,
		v.ServiceHistoryCount,
		int(v.Status),
		v.KmLeft,
		v.HealthScore,
		v.AvgDailyKm,
		v.FuelEfficiency,
	)
}

// DecodeRecord parses one persisted line. Any structural problem, including
// an out-of-range status ordinal, yields ErrInvalidRecordLine so the caller
// can skip the line and keep loading.
func DecodeRecord(line string) (model.Vehicle, error) {
	fields := strings.Split(line, "|")
	if len(fields) != recordFieldCount {
		return model.Vehicle{}, fmt.Errorf("%w: got %d fields, want %d", ErrInvalidRecordLine, len(fields), recordFieldCount)
	}

	p := parser{fields: fields}
	v := model.Vehicle{
		Code:       p.str(0),
		DriverName: p.str(1),
		Number:     p.int(2),
		LastService: model.Date{
			Day:   p.int(3),
			Month: p.int(4),
			Year:  p.int(5),
		},
		NextDue: model.Date{
			Day:   p.int(6),
			Month: p.int(7),
			Year:  p.int(8),
		},
		CurrentMileage:      p.float(9),
		LastServiceMileage:  p.float(10),
		ServiceIntervalKm:   p.float(11),
		ServiceIntervalDays: p.int(12),
		ServiceHistoryCount: p.int(13),
		KmLeft:              p.float(15),
		HealthScore:         p.int(16),
		AvgDailyKm:          p.float(17),
		FuelEfficiency:      p.float(18),
	}
	statusInt := p.int(14)
	if p.err != nil {
		return model.Vehicle{}, fmt.Errorf("%w: %v", ErrInvalidRecordLine, p.err)
	}

	status, err := model.ParseStatus(statusInt)
	if err != nil {
		return model.Vehicle{}, fmt.Errorf("%w: %v", ErrInvalidRecordLine, err)
	}
	v.Status = status
	return v, nil
}

// parser remembers the first field that failed so DecodeRecord can report it
// once instead of checking every conversion inline.
type parser struct {
	fields []string
	err    error
}

func (p *parser) str(i int) string {
	return p.fields[i]
}

func (p *parser) int(i int) int {
	n, err := strconv.Atoi(strings.TrimSpace(p.fields[i]))
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("field %d: %v", i, err)
	}
	return n
}

func (p *parser) float(i int) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(p.fields[i]), 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("field %d: %v", i, err)
	}
	return f
}
