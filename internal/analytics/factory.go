package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/staffdesk/internal/model"
)

// FactoryProjectsWithDetails joins factory projects with their client and
// allocation rosters and attaches calendar progress for comparison with the
// manually maintained progress percentage.
func FactoryProjectsWithDetails(s model.Snapshot, today time.Time) []model.FactoryProjectWithDetails {
	l := newLookup(s)

	out := make([]model.FactoryProjectWithDetails, 0, len(s.FactoryProjects))
	for _, project := range s.FactoryProjects {
		var client *model.Client
		if project.ClientID != nil {
			if c, ok := l.clients[*project.ClientID]; ok {
				client = &c
			}
		}

		allocations := make([]model.FactoryAllocationWithDetails, 0)
		for _, a := range s.FactoryAllocations {
			if a.ProjectID != project.ID {
				continue
			}
			professional, ok := l.professionals[a.ProfessionalID]
			if !ok {
				continue
			}
			stack, ok := l.stacks[a.StackID]
			if !ok {
				continue
			}
			allocations = append(allocations, model.FactoryAllocationWithDetails{
				FactoryAllocation: a,
				Professional:      professional,
				Stack:             stack,
			})
		}

		totalDays := DaysUntil(project.EndDate, project.StartDate)
		if totalDays < 1 {
			totalDays = 1
		}
		daysElapsed := DaysUntil(today, project.StartDate)
		if daysElapsed < 0 {
			daysElapsed = 0
		}
		daysRemaining := DaysUntil(project.EndDate, today)
		if daysRemaining < 0 {
			daysRemaining = 0
		}
		progress := float64(daysElapsed) / float64(totalDays) * 100
		if progress > 100 {
			progress = 100
		}

		out = append(out, model.FactoryProjectWithDetails{
			FactoryProject:     project,
			Client:             client,
			Allocations:        allocations,
			TotalMembers:       len(allocations),
			DaysRemaining:      daysRemaining,
			DaysElapsed:        daysElapsed,
			TotalDays:          totalDays,
			CalculatedProgress: progress,
		})
	}
	return out
}

// FactoryMetrics summarizes the factory line of business: project status
// counts, current occupancy, and point-in-time occupancy 30/60/90 days out.
func FactoryMetrics(s model.Snapshot, today time.Time) model.FactoryDashboardMetrics {
	var active, planned, finished, paused int
	for _, p := range s.FactoryProjects {
		switch p.Status {
		case model.FactoryProjectInProgress:
			active++
		case model.FactoryProjectPlanned:
			planned++
		case model.FactoryProjectFinished:
			finished++
		case model.FactoryProjectPaused:
			paused++
		}
	}

	pool := factoryPoolSize(s.Professionals)
	day := DateOnly(today)

	return model.FactoryDashboardMetrics{
		TotalProjects:             len(s.FactoryProjects),
		ActiveProjects:            active,
		PlannedProjects:           planned,
		FinishedProjects:          finished,
		PausedProjects:            paused,
		TotalFactoryProfessionals: pool,
		CurrentOccupancyRate:      factoryOccupancyAt(s.FactoryAllocations, pool, day),
		Occupancy30Days:           factoryOccupancyAt(s.FactoryAllocations, pool, day.AddDate(0, 0, 30)),
		Occupancy60Days:           factoryOccupancyAt(s.FactoryAllocations, pool, day.AddDate(0, 0, 60)),
		Occupancy90Days:           factoryOccupancyAt(s.FactoryAllocations, pool, day.AddDate(0, 0, 90)),
	}
}

// factoryOccupancyAt is the share of the factory pool covered by an
// allocation spanning the given date.
func factoryOccupancyAt(allocs []model.FactoryAllocation, pool int, at time.Time) float64 {
	if pool == 0 {
		return 0
	}
	allocated := make(map[uuid.UUID]struct{})
	for _, a := range allocs {
		if !DateOnly(a.StartDate).After(at) && !DateOnly(a.EndDate).Before(at) {
			allocated[a.ProfessionalID] = struct{}{}
		}
	}
	return float64(len(allocated)) / float64(pool) * 100
}

func factoryPoolSize(professionals []model.Professional) int {
	n := 0
	for _, p := range professionals {
		if p.EligibleForFactory() {
			n++
		}
	}
	return n
}

// FactoryIdleForecasts is the factory-pool counterpart of
// OccupancyForecasts. Factory allocations always carry their own end date,
// so no position fallback applies.
func FactoryIdleForecasts(s model.Snapshot, today time.Time) []model.FactoryIdleForecast {
	l := newLookup(s)

	allocs := make([]poolAllocation, 0, len(s.FactoryAllocations))
	for _, a := range s.FactoryAllocations {
		var record *model.ProfessionalIdleForecast
		if professional, ok := l.professionals[a.ProfessionalID]; ok {
			rec := model.ProfessionalIdleForecast{
				ProfessionalID:    a.ProfessionalID,
				ProfessionalName:  professional.Name,
				AllocationEndDate: DateOnly(a.EndDate),
				DaysUntilIdle:     DaysUntil(a.EndDate, today),
			}
			if stackID, ok := professional.PrimaryStackID(); ok {
				rec.StackName = l.stackName(stackID)
			}
			if project, ok := l.projects[a.ProjectID]; ok {
				rec.CurrentProjectName = project.Name
				if project.ClientID != nil {
					if client, ok := l.clients[*project.ClientID]; ok {
						rec.CurrentClientName = client.Name
					}
				}
			}
			record = &rec
		}
		allocs = append(allocs, poolAllocation{
			professionalID: a.ProfessionalID,
			end:            a.EndDate,
			record:         record,
		})
	}

	windows := forecastWindows(allocs, factoryPoolSize(s.Professionals), today)
	out := make([]model.FactoryIdleForecast, 0, len(windows))
	for _, w := range windows {
		out = append(out, model.FactoryIdleForecast{
			Period:            w.Period,
			CurrentAllocated:  w.CurrentAllocated,
			PredictedIdle:     w.PredictedIdle,
			IdleProfessionals: w.PredictedIdleProfessionals,
			OccupancyRate:     w.OccupancyRate,
		})
	}
	return out
}

// FactoryGantt flattens projects and their allocations into type-tagged
// entries clipped to the display window. Entries wholly outside the window
// are dropped.
func FactoryGantt(s model.Snapshot, today time.Time, months int) []model.FactoryGanttEntry {
	windowStart, windowEnd := Window(today, months)
	detailed := FactoryProjectsWithDetails(s, today)

	entries := make([]model.FactoryGanttEntry, 0, len(detailed))
	for _, project := range detailed {
		if segment, visible := ClipToWindow(project.StartDate, project.EndDate, windowStart, windowEnd); visible {
			progress := project.ProgressPercentage
			seg := segment
			entries = append(entries, model.FactoryGanttEntry{
				ID:        project.ID.String(),
				Type:      model.GanttEntryProject,
				Name:      project.Name,
				StartDate: project.StartDate,
				EndDate:   project.EndDate,
				Progress:  &progress,
				Status:    project.Status,
				Segment:   &seg,
			})
		}

		for _, alloc := range project.Allocations {
			segment, visible := ClipToWindow(alloc.StartDate, alloc.EndDate, windowStart, windowEnd)
			if !visible {
				continue
			}
			projectID := project.ID
			seg := segment
			entries = append(entries, model.FactoryGanttEntry{
				ID:          alloc.ID.String() + "-" + project.ID.String(),
				Type:        model.GanttEntryProfessional,
				Name:        alloc.Professional.Name,
				ProjectID:   &projectID,
				ProjectName: project.Name,
				Role:        alloc.Role,
				StackName:   alloc.Stack.Name,
				StartDate:   alloc.StartDate,
				EndDate:     alloc.EndDate,
				Segment:     &seg,
			})
		}
	}
	return entries
}
