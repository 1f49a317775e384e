package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nurpe/staffdesk/internal/model"
)

// Dashboard reduces the snapshot to the global metric card values.
//
// Revenue-at-risk bands are cumulative, not disjoint: a contract expiring in
// 25 days counts toward the 30-, 60- and 90-day figures alike.
func Dashboard(s model.Snapshot, today time.Time) model.DashboardMetrics {
	enriched := EnrichContracts(s, today)

	active := 0
	monthlyRevenue := decimal.Zero
	risk30 := decimal.Zero
	risk60 := decimal.Zero
	risk90 := decimal.Zero
	for _, c := range enriched {
		if c.Status != model.ContractStatusExpired {
			active++
			monthlyRevenue = monthlyRevenue.Add(c.MonthlyValue)
		}
		switch c.Status {
		case model.ContractStatusExpiring30:
			risk30 = risk30.Add(c.MonthlyValue)
			risk60 = risk60.Add(c.MonthlyValue)
			risk90 = risk90.Add(c.MonthlyValue)
		case model.ContractStatusExpiring60:
			risk60 = risk60.Add(c.MonthlyValue)
			risk90 = risk90.Add(c.MonthlyValue)
		case model.ContractStatusExpiring90:
			risk90 = risk90.Add(c.MonthlyValue)
		}
	}

	filled := 0
	open := 0
	for _, p := range s.Positions {
		switch p.Status {
		case model.PositionStatusFilled:
			filled++
		case model.PositionStatusOpen:
			open++
		}
	}

	return model.DashboardMetrics{
		TotalContracts:     len(s.Contracts),
		ActiveContracts:    active,
		TotalClients:       len(s.Clients),
		TotalProfessionals: len(s.Professionals),
		TotalPositions:     len(s.Positions),
		FilledPositions:    filled,
		OpenPositions:      open,
		MonthlyRevenue:     monthlyRevenue,
		RevenueAtRisk30:    risk30,
		RevenueAtRisk60:    risk60,
		RevenueAtRisk90:    risk90,
	}
}
