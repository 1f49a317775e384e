package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/staffdesk/internal/model"
)

func TestFactoryProjectsWithDetailsProgress(t *testing.T) {
	today := date(2025, time.January, 31)
	project := newFactoryProject("Portal", model.FactoryProjectInProgress,
		date(2025, time.January, 1), date(2025, time.April, 10))
	stack := newStack("Go")
	ana := newProfessional("Ana", model.WorkModeFactory, stack)

	s := model.Snapshot{
		Stacks:             []model.Stack{stack},
		Professionals:      []model.Professional{ana},
		FactoryProjects:    []model.FactoryProject{project},
		FactoryAllocations: []model.FactoryAllocation{newFactoryAllocation(project, ana, stack, project.StartDate, project.EndDate)},
	}

	detailed := FactoryProjectsWithDetails(s, today)

	require.Len(t, detailed, 1)
	p := detailed[0]
	assert.Equal(t, 1, p.TotalMembers)
	assert.Equal(t, 99, p.TotalDays)
	assert.Equal(t, 30, p.DaysElapsed)
	assert.Equal(t, 69, p.DaysRemaining)
	assert.InDelta(t, 30.0/99.0*100, p.CalculatedProgress, 0.001)
	// Manual progress stays untouched next to the calendar figure.
	assert.Equal(t, 50, p.ProgressPercentage)
}

func TestFactoryProjectsCalculatedProgressCaps(t *testing.T) {
	today := date(2026, time.January, 1)
	project := newFactoryProject("Old", model.FactoryProjectFinished,
		date(2025, time.January, 1), date(2025, time.February, 1))

	detailed := FactoryProjectsWithDetails(model.Snapshot{FactoryProjects: []model.FactoryProject{project}}, today)

	require.Len(t, detailed, 1)
	assert.Equal(t, 100.0, detailed[0].CalculatedProgress)
	assert.Equal(t, 0, detailed[0].DaysRemaining)
}

func TestFactoryMetrics(t *testing.T) {
	today := date(2025, time.January, 1)
	stack := newStack("Go")
	ana := newProfessional("Ana", model.WorkModeFactory, stack)
	bruno := newProfessional("Bruno", model.WorkModeBoth, stack)
	carla := newProfessional("Carla", model.WorkModeAllocation, stack)

	running := newFactoryProject("Portal", model.FactoryProjectInProgress,
		date(2024, time.December, 1), date(2025, time.January, 20))
	planned := newFactoryProject("Mobile", model.FactoryProjectPlanned,
		date(2025, time.March, 1), date(2025, time.June, 1))

	s := model.Snapshot{
		Stacks:          []model.Stack{stack},
		Professionals:   []model.Professional{ana, bruno, carla},
		FactoryProjects: []model.FactoryProject{running, planned},
		FactoryAllocations: []model.FactoryAllocation{
			newFactoryAllocation(running, ana, stack, running.StartDate, running.EndDate),
		},
	}

	metrics := FactoryMetrics(s, today)

	assert.Equal(t, 2, metrics.TotalProjects)
	assert.Equal(t, 1, metrics.ActiveProjects)
	assert.Equal(t, 1, metrics.PlannedProjects)
	// Carla works allocation-only and is outside the factory pool.
	assert.Equal(t, 2, metrics.TotalFactoryProfessionals)
	assert.InDelta(t, 50.0, metrics.CurrentOccupancyRate, 0.001)
	// Ana's allocation ends Jan 20; thirty days out nobody is covered.
	assert.InDelta(t, 0.0, metrics.Occupancy30Days, 0.001)
}

func TestFactoryMetricsZeroPool(t *testing.T) {
	metrics := FactoryMetrics(model.Snapshot{}, date(2025, time.January, 1))

	assert.Equal(t, 0.0, metrics.CurrentOccupancyRate)
	assert.Equal(t, 0.0, metrics.Occupancy90Days)
}

func TestFactoryIdleForecasts(t *testing.T) {
	today := date(2025, time.January, 1)
	stack := newStack("Go")
	client := newClient("Acme")
	clientID := client.ID
	ana := newProfessional("Ana", model.WorkModeFactory, stack)
	bruno := newProfessional("Bruno", model.WorkModeBoth, stack)

	project := newFactoryProject("Portal", model.FactoryProjectInProgress,
		date(2024, time.December, 1), date(2025, time.June, 1))
	project.ClientID = &clientID

	s := model.Snapshot{
		Clients:         []model.Client{client},
		Stacks:          []model.Stack{stack},
		Professionals:   []model.Professional{ana, bruno},
		FactoryProjects: []model.FactoryProject{project},
		FactoryAllocations: []model.FactoryAllocation{
			newFactoryAllocation(project, ana, stack, project.StartDate, date(2025, time.January, 15)),
			newFactoryAllocation(project, bruno, stack, project.StartDate, project.EndDate),
		},
	}

	forecasts := FactoryIdleForecasts(s, today)

	require.Len(t, forecasts, 3)
	f30 := forecasts[0]
	assert.Equal(t, 2, f30.CurrentAllocated)
	require.Len(t, f30.IdleProfessionals, 1)
	assert.Equal(t, ana.ID, f30.IdleProfessionals[0].ProfessionalID)
	assert.Equal(t, "Portal", f30.IdleProfessionals[0].CurrentProjectName)
	assert.Equal(t, "Acme", f30.IdleProfessionals[0].CurrentClientName)
	assert.Equal(t, 14, f30.IdleProfessionals[0].DaysUntilIdle)
	assert.InDelta(t, 50.0, f30.OccupancyRate, 0.001)
}

func TestFactoryGanttClipsEntries(t *testing.T) {
	today := date(2025, time.January, 15)
	stack := newStack("Go")
	ana := newProfessional("Ana", model.WorkModeFactory, stack)

	visible := newFactoryProject("Portal", model.FactoryProjectInProgress,
		date(2024, time.December, 1), date(2025, time.February, 10))
	gone := newFactoryProject("Legacy", model.FactoryProjectFinished,
		date(2024, time.January, 1), date(2024, time.June, 1))

	s := model.Snapshot{
		Stacks:          []model.Stack{stack},
		Professionals:   []model.Professional{ana},
		FactoryProjects: []model.FactoryProject{visible, gone},
		FactoryAllocations: []model.FactoryAllocation{
			newFactoryAllocation(visible, ana, stack, visible.StartDate, visible.EndDate),
		},
	}

	entries := FactoryGantt(s, today, 3)

	require.Len(t, entries, 2)
	assert.Equal(t, model.GanttEntryProject, entries[0].Type)
	assert.Equal(t, "Portal", entries[0].Name)
	require.NotNil(t, entries[0].Segment)
	assert.Equal(t, date(2025, time.January, 1), entries[0].Segment.EffectiveStart)

	assert.Equal(t, model.GanttEntryProfessional, entries[1].Type)
	assert.Equal(t, "Ana", entries[1].Name)
	assert.Equal(t, "Portal", entries[1].ProjectName)
}

func TestLeaderMetricsCycleSafe(t *testing.T) {
	stack := newStack("Go")
	lead := newProfessional("Lead", model.WorkModeAllocation, stack)
	dev := newProfessional("Dev", model.WorkModeAllocation, stack)
	dev.Status = model.ProfessionalStatusIdle
	dev.LeaderID = &lead.ID
	// Cycle: the leader reports to their own report.
	lead.LeaderID = &dev.ID

	metrics := LeaderMetricsAll(model.Snapshot{Professionals: []model.Professional{lead, dev}})

	require.Len(t, metrics, 2)
	for _, m := range metrics {
		assert.Equal(t, 1, m.TotalProfessionals)
	}
}

func TestStackDistributions(t *testing.T) {
	stack := newStack("Go")
	category := model.StackCategory{ID: stack.CategoryID, Name: "Backend"}
	otherStack := newStack("React")
	client := newClient("Acme")
	contract := newContract(client, "CT-001", date(2026, time.January, 1), 1000)
	ana := newProfessional("Ana", model.WorkModeAllocation, stack)

	s := model.Snapshot{
		Clients:         []model.Client{client},
		Contracts:       []model.Contract{contract},
		Stacks:          []model.Stack{stack, otherStack},
		StackCategories: []model.StackCategory{category},
		Positions: []model.Position{
			newPosition(contract, stack, model.PositionStatusFilled, contract.EndDate),
			newPosition(contract, stack, model.PositionStatusOpen, contract.EndDate),
		},
		Professionals: []model.Professional{ana},
	}

	distributions := StackDistributions(s)

	require.Len(t, distributions, 2)
	assert.Equal(t, "Backend", distributions[0].CategoryName)
	assert.Equal(t, 2, distributions[0].PositionCount)
	assert.Equal(t, 1, distributions[0].FilledPositions)
	assert.Equal(t, 1, distributions[0].ProfessionalCount)
	assert.Equal(t, 0, distributions[1].ProfessionalCount)
}
