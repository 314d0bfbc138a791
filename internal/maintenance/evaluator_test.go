package maintenance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nurpe/fleetguardian/internal/model"
)

var refDate = model.Date{Day: 15, Month: 6, Year: 2025}

func baseVehicle() model.Vehicle {
	return model.Vehicle{
		Code:               "CHD-101A",
		Number:             7,
		DriverName:         "Arman S",
		LastService:        model.Date{Day: 1, Month: 6, Year: 2025},
		LastServiceMileage: 9000,
		ServiceIntervalKm:  1000,
	}
}

func TestEvaluateDueSoon(t *testing.T) {
	v := baseVehicle()
	v.CurrentMileage = 9600

	res := Evaluate(v, refDate)

	assert.InDelta(t, 400, res.KmLeft, 0.001)
	assert.Equal(t, model.StatusDueSoon, res.Status)
	assert.Equal(t, 60, res.HealthScore)
}

func TestEvaluateOK(t *testing.T) {
	v := baseVehicle()
	v.CurrentMileage = 9200

	res := Evaluate(v, refDate)

	assert.InDelta(t, 800, res.KmLeft, 0.001)
	assert.Equal(t, model.StatusOK, res.Status)
	// round(86.67), not truncation and not banker's rounding
	assert.Equal(t, 87, res.HealthScore)
}

func TestEvaluateMileageOverdue(t *testing.T) {
	v := baseVehicle()
	v.CurrentMileage = 10000

	res := Evaluate(v, refDate)

	assert.Equal(t, model.StatusOverdue, res.Status)
	assert.InDelta(t, 0, res.KmLeft, 0.001)
}

func TestEvaluateKmLeftIdentity(t *testing.T) {
	cases := []float64{0, 8500, 9000, 9999, 12000}
	for _, mileage := range cases {
		v := baseVehicle()
		v.CurrentMileage = mileage
		res := Evaluate(v, refDate)
		assert.InDelta(t, v.LastServiceMileage+v.ServiceIntervalKm-mileage, res.KmLeft, 0.001)
	}
}

func TestEvaluateDateOverdue(t *testing.T) {
	v := baseVehicle()
	v.CurrentMileage = 9100 // far from due mileage
	v.LastService = model.Date{Day: 1, Month: 1, Year: 2025}
	v.ServiceIntervalDays = 180

	// 189 coarse days since service: overdue on time alone.
	res := Evaluate(v, model.Date{Day: 10, Month: 7, Year: 2025})
	assert.Equal(t, model.StatusOverdue, res.Status)
	assert.Equal(t, model.Date{Day: 1, Month: 7, Year: 2025}, res.NextDue)

	// One coarse day before the interval elapses: mileage keeps it OK.
	res = Evaluate(v, model.Date{Day: 30, Month: 6, Year: 2025})
	assert.Equal(t, model.StatusOK, res.Status)
}

func TestEvaluateNoDayInterval(t *testing.T) {
	v := baseVehicle()
	v.CurrentMileage = 9100
	v.ServiceIntervalDays = 0

	res := Evaluate(v, refDate)

	assert.Equal(t, model.StatusOK, res.Status)
	assert.True(t, res.NextDue.IsZero())
}

func TestEvaluateInvalidLastServiceDate(t *testing.T) {
	v := baseVehicle()
	v.CurrentMileage = 9100
	v.LastService = model.Date{}
	v.ServiceIntervalDays = 30

	res := Evaluate(v, refDate)

	assert.Equal(t, model.StatusOK, res.Status)
	assert.True(t, res.NextDue.IsZero())
}

func TestHealthScoreBounds(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		want    int
	}{
		{"freshly serviced", 9000, 100},
		{"mileage below last service clamps high", 8000, 100},
		{"past 150 percent of interval", 11000, 0},
		{"exactly at interval", 10000, 33},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := baseVehicle()
			v.CurrentMileage = c.current
			res := Evaluate(v, refDate)
			assert.Equal(t, c.want, res.HealthScore)
			assert.GreaterOrEqual(t, res.HealthScore, 0)
			assert.LessOrEqual(t, res.HealthScore, 100)
		})
	}
}

func TestHealthScoreNeutralWithoutInterval(t *testing.T) {
	v := baseVehicle()
	v.ServiceIntervalKm = 0
	v.CurrentMileage = 9400

	res := Evaluate(v, refDate)
	assert.Equal(t, 50, res.HealthScore)
}

func TestApplyWritesDerivedFields(t *testing.T) {
	v := baseVehicle()
	v.CurrentMileage = 9600
	v.ServiceIntervalDays = 90

	Apply(&v, refDate)

	assert.Equal(t, model.StatusDueSoon, v.Status)
	assert.InDelta(t, 400, v.KmLeft, 0.001)
	assert.Equal(t, 60, v.HealthScore)
	assert.False(t, v.NextDue.IsZero())
}
