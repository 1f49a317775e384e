package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Derived result structures. Everything in this file is recomputed from a
// Snapshot on demand; nothing here is persisted.

type ContractWithDetails struct {
	Contract
	Client              Client         `json:"client"`
	Positions           []Position     `json:"positions"`
	Status              ContractStatus `json:"status"`
	DaysUntilExpiration int            `json:"daysUntilExpiration"`
}

type DashboardMetrics struct {
	TotalContracts     int             `json:"totalContracts"`
	ActiveContracts    int             `json:"activeContracts"`
	TotalClients       int             `json:"totalClients"`
	TotalProfessionals int             `json:"totalProfessionals"`
	TotalPositions     int             `json:"totalPositions"`
	FilledPositions    int             `json:"filledPositions"`
	OpenPositions      int             `json:"openPositions"`
	MonthlyRevenue     decimal.Decimal `json:"monthlyRevenue"`
	RevenueAtRisk30    decimal.Decimal `json:"revenueAtRisk30"`
	RevenueAtRisk60    decimal.Decimal `json:"revenueAtRisk60"`
	RevenueAtRisk90    decimal.Decimal `json:"revenueAtRisk90"`
}

// ExpiringContractsGroup buckets contracts expiring within Days. Buckets are
// cumulative: the 60-day group contains the 30-day contracts as well.
type ExpiringContractsGroup struct {
	Days                  int                   `json:"days"`
	Contracts             []ContractWithDetails `json:"contracts"`
	ClientsAffected       int                   `json:"clientsAffected"`
	ProfessionalsInvolved int                   `json:"professionalsInvolved"`
	TotalMonthlyValue     decimal.Decimal       `json:"totalMonthlyValue"`
}

type StackDistribution struct {
	StackID           uuid.UUID `json:"stackId"`
	StackName         string    `json:"stackName"`
	CategoryID        uuid.UUID `json:"categoryId"`
	CategoryName      string    `json:"categoryName"`
	ProfessionalCount int       `json:"professionalCount"`
	PositionCount     int       `json:"positionCount"`
	FilledPositions   int       `json:"filledPositions"`
}

type ClientSummary struct {
	Client            Client          `json:"client"`
	ActiveContracts   int             `json:"activeContracts"`
	TotalPositions    int             `json:"totalPositions"`
	FilledPositions   int             `json:"filledPositions"`
	TotalMonthlyValue decimal.Decimal `json:"totalMonthlyValue"`
}

type AllocationTimelineEntry struct {
	ID                   uuid.UUID    `json:"id"`
	ProfessionalID       uuid.UUID    `json:"professionalId"`
	ProfessionalName     string       `json:"professionalName"`
	PositionTitle        string       `json:"positionTitle"`
	StackName            string       `json:"stackName"`
	CategoryName         string       `json:"categoryName"`
	ClientName           string       `json:"clientName"`
	ProjectName          string       `json:"projectName"`
	ContractType         ContractType `json:"contractType"`
	StartDate            time.Time    `json:"startDate"`
	EndDate              time.Time    `json:"endDate"`
	AllocationPercentage int          `json:"allocationPercentage"`
}

// TimelineSegment is a timeline entry clipped to a display window, with bar
// geometry in whole days.
type TimelineSegment struct {
	EffectiveStart  time.Time `json:"effectiveStart"`
	EffectiveEnd    time.Time `json:"effectiveEnd"`
	StartOffsetDays int       `json:"startOffsetDays"`
	DurationDays    int       `json:"durationDays"`
}

type ProfessionalTimeline struct {
	ProfessionalID   uuid.UUID              `json:"professionalId"`
	ProfessionalName string                 `json:"professionalName"`
	Entries          []ClippedTimelineEntry `json:"entries"`
}

type ClippedTimelineEntry struct {
	AllocationTimelineEntry
	Segment TimelineSegment `json:"segment"`
}

type TeamMember struct {
	ProfessionalID       uuid.UUID `json:"professionalId"`
	ProfessionalName     string    `json:"professionalName"`
	PositionTitle        string    `json:"positionTitle"`
	StackName            string    `json:"stackName"`
	CategoryName         string    `json:"categoryName"`
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
	AllocationPercentage int       `json:"allocationPercentage"`
}

type TeamView struct {
	ContractID          uuid.UUID      `json:"contractId"`
	ContractNumber      string         `json:"contractNumber"`
	ProjectName         string         `json:"projectName"`
	ClientName          string         `json:"clientName"`
	ContractType        ContractType   `json:"contractType"`
	StartDate           time.Time      `json:"startDate"`
	EndDate             time.Time      `json:"endDate"`
	Status              ContractStatus `json:"status"`
	DaysUntilExpiration int            `json:"daysUntilExpiration"`
	Members             []TeamMember   `json:"members"`
	TotalPositions      int            `json:"totalPositions"`
	FilledPositions     int            `json:"filledPositions"`
}

type ProfessionalIdleForecast struct {
	ProfessionalID     uuid.UUID `json:"professionalId"`
	ProfessionalName   string    `json:"professionalName"`
	StackName          string    `json:"stackName"`
	CurrentClientName  string    `json:"currentClientName"`
	CurrentProjectName string    `json:"currentProjectName"`
	AllocationEndDate  time.Time `json:"allocationEndDate"`
	DaysUntilIdle      int       `json:"daysUntilIdle"`
}

type OccupancyForecast struct {
	Period                     int                        `json:"period"`
	CurrentAllocated           int                        `json:"currentAllocated"`
	PredictedIdle              int                        `json:"predictedIdle"`
	PredictedIdleProfessionals []ProfessionalIdleForecast `json:"predictedIdleProfessionals"`
	OccupancyRate              float64                    `json:"occupancyRate"`
}

type FactoryAllocationWithDetails struct {
	FactoryAllocation
	Professional Professional `json:"professional"`
	Stack        Stack        `json:"stack"`
}

type FactoryProjectWithDetails struct {
	FactoryProject
	Client        *Client                        `json:"client,omitempty"`
	Allocations   []FactoryAllocationWithDetails `json:"allocations"`
	TotalMembers  int                            `json:"totalMembers"`
	DaysRemaining int                            `json:"daysRemaining"`
	DaysElapsed   int                            `json:"daysElapsed"`
	TotalDays     int                            `json:"totalDays"`
	// CalculatedProgress is calendar progress, for comparison against the
	// manually maintained ProgressPercentage.
	CalculatedProgress float64 `json:"calculatedProgress"`
}

type FactoryDashboardMetrics struct {
	TotalProjects             int     `json:"totalProjects"`
	ActiveProjects            int     `json:"activeProjects"`
	PlannedProjects           int     `json:"plannedProjects"`
	FinishedProjects          int     `json:"finishedProjects"`
	PausedProjects            int     `json:"pausedProjects"`
	TotalFactoryProfessionals int     `json:"totalFactoryProfessionals"`
	CurrentOccupancyRate      float64 `json:"currentOccupancyRate"`
	Occupancy30Days           float64 `json:"occupancy30Days"`
	Occupancy60Days           float64 `json:"occupancy60Days"`
	Occupancy90Days           float64 `json:"occupancy90Days"`
}

type FactoryIdleForecast struct {
	Period            int                        `json:"period"`
	CurrentAllocated  int                        `json:"currentAllocated"`
	PredictedIdle     int                        `json:"predictedIdle"`
	IdleProfessionals []ProfessionalIdleForecast `json:"idleProfessionals"`
	OccupancyRate     float64                    `json:"occupancyRate"`
}

type GanttEntryType string

const (
	GanttEntryProject      GanttEntryType = "project"
	GanttEntryProfessional GanttEntryType = "professional"
)

type FactoryGanttEntry struct {
	ID          string               `json:"id"`
	Type        GanttEntryType       `json:"type"`
	Name        string               `json:"name"`
	ProjectID   *uuid.UUID           `json:"projectId,omitempty"`
	ProjectName string               `json:"projectName,omitempty"`
	Role        FactoryRole          `json:"role,omitempty"`
	StackName   string               `json:"stackName,omitempty"`
	StartDate   time.Time            `json:"startDate"`
	EndDate     time.Time            `json:"endDate"`
	Progress    *int                 `json:"progress,omitempty"`
	Status      FactoryProjectStatus `json:"status,omitempty"`
	Segment     *TimelineSegment     `json:"segment,omitempty"`
}

type LeaderMetrics struct {
	LeaderID               uuid.UUID      `json:"leaderId"`
	LeaderName             string         `json:"leaderName"`
	TotalProfessionals     int            `json:"totalProfessionals"`
	AllocatedProfessionals int            `json:"allocatedProfessionals"`
	IdleProfessionals      int            `json:"idleProfessionals"`
	Professionals          []Professional `json:"professionals"`
}
