package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nurpe/staffdesk/internal/model"
)

// ExpiringGroups buckets contracts into the 30/60/90-day expiration cohorts.
// Each cohort carries distinct affected-client and involved-professional
// counts; a professional is involved when a currently active allocation
// references a position under a grouped contract.
func ExpiringGroups(s model.Snapshot, today time.Time) []model.ExpiringContractsGroup {
	l := newLookup(s)
	enriched := enrichContracts(s, l, today)

	groups := make([]model.ExpiringContractsGroup, 0, len(ForecastPeriods))
	for _, days := range ForecastPeriods {
		inGroup := Where(enriched, func(c model.ContractWithDetails) bool {
			return statusWithinWindow(c.Status, days)
		})

		clientIDs := make(map[uuid.UUID]struct{})
		positionIDs := make(map[uuid.UUID]struct{})
		total := decimal.Zero
		for _, c := range inGroup {
			clientIDs[c.ClientID] = struct{}{}
			total = total.Add(c.MonthlyValue)
			for _, p := range c.Positions {
				positionIDs[p.ID] = struct{}{}
			}
		}

		professionalIDs := make(map[uuid.UUID]struct{})
		for _, a := range s.Allocations {
			if _, ok := positionIDs[a.PositionID]; !ok {
				continue
			}
			end, ok := l.allocationEnd(a)
			if !ok || DateOnly(end).Before(DateOnly(today)) {
				continue
			}
			professionalIDs[a.ProfessionalID] = struct{}{}
		}

		groups = append(groups, model.ExpiringContractsGroup{
			Days:                  days,
			Contracts:             inGroup,
			ClientsAffected:       len(clientIDs),
			ProfessionalsInvolved: len(professionalIDs),
			TotalMonthlyValue:     total,
		})
	}
	return groups
}

// statusWithinWindow implements the cumulative banding shared with the
// dashboard revenue-at-risk figures.
func statusWithinWindow(status model.ContractStatus, days int) bool {
	switch days {
	case 30:
		return status == model.ContractStatusExpiring30
	case 60:
		return status == model.ContractStatusExpiring30 || status == model.ContractStatusExpiring60
	default:
		return status == model.ContractStatusExpiring30 ||
			status == model.ContractStatusExpiring60 ||
			status == model.ContractStatusExpiring90
	}
}
