package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/staffdesk/internal/model"
)

// poolAllocation is the pool-independent view of one allocation fed to the
// forecaster: who, until when, and the display record for the idle list.
// record is nil when the professional could not be resolved; such
// allocations still count toward currentAllocated but produce no idle entry.
type poolAllocation struct {
	professionalID uuid.UUID
	end            time.Time
	record         *model.ProfessionalIdleForecast
}

// OccupancyForecasts projects, per 30/60/90-day window, which currently
// allocated professionals run out of staffing allocations and the resulting
// occupancy rate over the whole professional pool.
func OccupancyForecasts(s model.Snapshot, today time.Time) []model.OccupancyForecast {
	l := newLookup(s)

	allocs := make([]poolAllocation, 0, len(s.Allocations))
	for _, a := range s.Allocations {
		end, ok := l.allocationEnd(a)
		if !ok {
			continue
		}

		var record *model.ProfessionalIdleForecast
		if professional, ok := l.professionals[a.ProfessionalID]; ok {
			rec := model.ProfessionalIdleForecast{
				ProfessionalID:    a.ProfessionalID,
				ProfessionalName:  professional.Name,
				AllocationEndDate: DateOnly(end),
				DaysUntilIdle:     DaysUntil(end, today),
			}
			if stackID, ok := professional.PrimaryStackID(); ok {
				rec.StackName = l.stackName(stackID)
			}
			if position, ok := l.positions[a.PositionID]; ok {
				if contract, ok := l.contracts[position.ContractID]; ok {
					rec.CurrentProjectName = contract.Label()
					if client, ok := l.clients[contract.ClientID]; ok {
						rec.CurrentClientName = client.Name
					}
				}
			}
			record = &rec
		}

		allocs = append(allocs, poolAllocation{
			professionalID: a.ProfessionalID,
			end:            end,
			record:         record,
		})
	}

	return forecastWindows(allocs, len(s.Professionals), today)
}

// forecastWindows runs the shared idle-forecast pipeline over an already
// resolved allocation list. Idle entries are deduplicated per professional
// keeping the smallest daysUntilIdle, then sorted ascending by it.
func forecastWindows(allocs []poolAllocation, poolSize int, today time.Time) []model.OccupancyForecast {
	day := DateOnly(today)

	currentAllocated := make(map[uuid.UUID]struct{})
	for _, a := range allocs {
		if !DateOnly(a.end).Before(day) {
			currentAllocated[a.professionalID] = struct{}{}
		}
	}

	forecasts := make([]model.OccupancyForecast, 0, len(ForecastPeriods))
	for _, period := range ForecastPeriods {
		cutoff := day.AddDate(0, 0, period)

		byProfessional := make(map[uuid.UUID]int)
		idle := make([]model.ProfessionalIdleForecast, 0)
		for _, a := range allocs {
			end := DateOnly(a.end)
			if end.Before(day) || end.After(cutoff) {
				continue
			}
			if a.record == nil {
				continue
			}
			if i, seen := byProfessional[a.professionalID]; seen {
				if a.record.DaysUntilIdle < idle[i].DaysUntilIdle {
					idle[i] = *a.record
				}
				continue
			}
			byProfessional[a.professionalID] = len(idle)
			idle = append(idle, *a.record)
		}

		sort.SliceStable(idle, func(i, j int) bool {
			return idle[i].DaysUntilIdle < idle[j].DaysUntilIdle
		})

		forecasts = append(forecasts, model.OccupancyForecast{
			Period:                     period,
			CurrentAllocated:           len(currentAllocated),
			PredictedIdle:              len(idle),
			PredictedIdleProfessionals: idle,
			OccupancyRate:              occupancyRate(len(currentAllocated), len(idle), poolSize),
		})
	}
	return forecasts
}

// occupancyRate floors at zero and treats an empty pool as fully idle
// rather than dividing by zero.
func occupancyRate(currentAllocated, predictedIdle, poolSize int) float64 {
	if poolSize == 0 {
		return 0
	}
	rate := float64(currentAllocated-predictedIdle) / float64(poolSize) * 100
	if rate < 0 {
		return 0
	}
	return rate
}
