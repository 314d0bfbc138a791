// Package maintenance computes the derived maintenance state of a vehicle:
// status band, remaining kilometres, health score and next due date.
package maintenance

import (
	"math"

	"github.com/nurpe/fleetguardian/internal/model"
)

// DueSoonThresholdKm is the remaining distance below which an on-track
// vehicle is flagged DUE SOON instead of OK.
const DueSoonThresholdKm = 500.0

// maxUsageRatio caps interval consumption at 150% when scoring health.
const maxUsageRatio = 1.5

// Result is the evaluator's output, applied back onto a record by the caller.
type Result struct {
	Status      model.Status
	KmLeft      float64
	HealthScore int
	NextDue     model.Date
}

// Evaluate derives the maintenance state of v as of the reference date.
// Pure: v is not modified.
//
// A vehicle is OVERDUE when it has reached its due mileage, or when a
// day-based interval is configured and at least that many days have passed
// since the last service under the coarse calendar. Otherwise it is DUE SOON
// when within DueSoonThresholdKm of the due mileage, else OK.
func Evaluate(v model.Vehicle, reference model.Date) Result {
	dueMileage := v.LastServiceMileage + v.ServiceIntervalKm

	res := Result{
		KmLeft: dueMileage - v.CurrentMileage,
	}

	mileageOverdue := v.CurrentMileage >= dueMileage
	mileageDueSoon := !mileageOverdue && res.KmLeft <= DueSoonThresholdKm

	dateOverdue := false
	if v.ServiceIntervalDays > 0 && v.LastService.Valid() && reference.Valid() {
		daysSince := reference.Days() - v.LastService.Days()
		dateOverdue = daysSince >= v.ServiceIntervalDays
		res.NextDue = v.LastService.AddDays(v.ServiceIntervalDays)
	}

	switch {
	case mileageOverdue || dateOverdue:
		res.Status = model.StatusOverdue
	case mileageDueSoon:
		res.Status = model.StatusDueSoon
	default:
		res.Status = model.StatusOK
	}

	res.HealthScore = healthScore(v)
	return res
}

// Apply evaluates v and writes the derived fields back onto it.
func Apply(v *model.Vehicle, reference model.Date) {
	res := Evaluate(*v, reference)
	v.Status = res.Status
	v.KmLeft = res.KmLeft
	v.HealthScore = res.HealthScore
	v.NextDue = res.NextDue
}

// healthScore maps interval consumption to [0,100]. 100 means freshly
// serviced, 0 means at or past 150% of the interval. Without a configured
// km interval there is nothing to measure, so the score is a neutral 50.
func healthScore(v model.Vehicle) int {
	if v.ServiceIntervalKm <= 0 {
		return 50
	}
	used := v.CurrentMileage - v.LastServiceMileage
	ratio := used / v.ServiceIntervalKm
	if ratio < 0 {
		ratio = 0
	}
	if ratio > maxUsageRatio {
		ratio = maxUsageRatio
	}
	score := int(math.Round((maxUsageRatio - ratio) / maxUsageRatio * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
