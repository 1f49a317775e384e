package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nurpe/staffdesk/internal/model"
)

// EnrichContracts joins each contract with its client and positions and
// attaches the computed status. Contracts whose client cannot be resolved
// are dropped from the result; stale references are expected in hand-entered
// data and never raise an error.
func EnrichContracts(s model.Snapshot, today time.Time) []model.ContractWithDetails {
	l := newLookup(s)
	return enrichContracts(s, l, today)
}

func enrichContracts(s model.Snapshot, l *lookup, today time.Time) []model.ContractWithDetails {
	out := make([]model.ContractWithDetails, 0, len(s.Contracts))
	for _, contract := range s.Contracts {
		client, ok := l.clients[contract.ClientID]
		if !ok {
			continue
		}
		positions := Where(s.Positions, func(p model.Position) bool {
			return p.ContractID == contract.ID
		})
		out = append(out, model.ContractWithDetails{
			Contract:            contract,
			Client:              client,
			Positions:           positions,
			Status:              ContractStatusAt(contract.EndDate, today),
			DaysUntilExpiration: DaysUntil(contract.EndDate, today),
		})
	}
	return out
}

// ClientSummaries aggregates non-expired contracts per client.
func ClientSummaries(s model.Snapshot, today time.Time) []model.ClientSummary {
	enriched := EnrichContracts(s, today)
	out := make([]model.ClientSummary, 0, len(s.Clients))
	for _, client := range s.Clients {
		active := Where(enriched, func(c model.ContractWithDetails) bool {
			return c.ClientID == client.ID && c.Status != model.ContractStatusExpired
		})

		total := decimal.Zero
		positions := 0
		filled := 0
		for _, c := range active {
			total = total.Add(c.MonthlyValue)
			positions += len(c.Positions)
			for _, p := range c.Positions {
				if p.Status == model.PositionStatusFilled {
					filled++
				}
			}
		}

		out = append(out, model.ClientSummary{
			Client:            client,
			ActiveContracts:   len(active),
			TotalPositions:    positions,
			FilledPositions:   filled,
			TotalMonthlyValue: total,
		})
	}
	return out
}

// TeamViews lists, per enriched contract, the professionals allocated to its
// positions. Members with unresolvable professional or stack references are
// skipped.
func TeamViews(s model.Snapshot, today time.Time) []model.TeamView {
	l := newLookup(s)
	enriched := enrichContracts(s, l, today)

	out := make([]model.TeamView, 0, len(enriched))
	for _, contract := range enriched {
		members := make([]model.TeamMember, 0)
		for _, a := range s.Allocations {
			position, ok := l.positions[a.PositionID]
			if !ok || position.ContractID != contract.ID {
				continue
			}
			professional, ok := l.professionals[a.ProfessionalID]
			if !ok {
				continue
			}
			stack, ok := l.stacks[position.StackID]
			if !ok {
				continue
			}
			end, _ := EffectiveEndDate(a, &position)
			members = append(members, model.TeamMember{
				ProfessionalID:       a.ProfessionalID,
				ProfessionalName:     professional.Name,
				PositionTitle:        position.Title,
				StackName:            stack.Name,
				CategoryName:         l.categoryNameOfStack(position.StackID),
				StartDate:            a.StartDate,
				EndDate:              end,
				AllocationPercentage: a.AllocationPercentage,
			})
		}

		filled := 0
		for _, p := range contract.Positions {
			if p.Status == model.PositionStatusFilled {
				filled++
			}
		}

		out = append(out, model.TeamView{
			ContractID:          contract.ID,
			ContractNumber:      contract.ContractNumber,
			ProjectName:         contract.Label(),
			ClientName:          contract.Client.Name,
			ContractType:        contract.Type,
			StartDate:           contract.StartDate,
			EndDate:             contract.EndDate,
			Status:              contract.Status,
			DaysUntilExpiration: contract.DaysUntilExpiration,
			Members:             members,
			TotalPositions:      len(contract.Positions),
			FilledPositions:     filled,
		})
	}
	return out
}
