// Package analytics derives dashboard views from entity snapshots: contract
// enrichment, revenue-at-risk, expiration cohorts, occupancy forecasts and
// timeline projections. Every function is pure; the reference date is always
// an explicit parameter so results are deterministic.
package analytics

import (
	"math"
	"time"

	"github.com/nurpe/staffdesk/internal/model"
)

// DateOnly truncates a timestamp to midnight UTC. All day arithmetic in this
// package runs on truncated dates.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the calendar-day difference target-today, both truncated
// to midnight, rounded up toward the future. Negative means target is past.
func DaysUntil(target, today time.Time) int {
	diff := DateOnly(target).Sub(DateOnly(today))
	return int(math.Ceil(diff.Hours() / 24))
}

// ContractStatusAt classifies a contract's lifecycle from its end date.
// Boundaries are inclusive on the lower band: exactly 30 days out is
// expiring_30, not expiring_60.
func ContractStatusAt(endDate, today time.Time) model.ContractStatus {
	days := DaysUntil(endDate, today)
	switch {
	case days < 0:
		return model.ContractStatusExpired
	case days <= 30:
		return model.ContractStatusExpiring30
	case days <= 60:
		return model.ContractStatusExpiring60
	case days <= 90:
		return model.ContractStatusExpiring90
	default:
		return model.ContractStatusActive
	}
}

// ForecastPeriods are the windows, in days, used by expiration grouping and
// occupancy forecasting.
var ForecastPeriods = []int{30, 60, 90}
