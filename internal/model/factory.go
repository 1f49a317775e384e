package model

import (
	"time"

	"github.com/google/uuid"
)

type FactoryProjectStatus string

const (
	FactoryProjectPlanned    FactoryProjectStatus = "planned"
	FactoryProjectInProgress FactoryProjectStatus = "in_progress"
	FactoryProjectFinished   FactoryProjectStatus = "finished"
	FactoryProjectPaused     FactoryProjectStatus = "paused"
)

type FactoryRole string

const (
	FactoryRoleDev         FactoryRole = "dev"
	FactoryRoleQA          FactoryRole = "qa"
	FactoryRolePO          FactoryRole = "po"
	FactoryRolePM          FactoryRole = "pm"
	FactoryRoleTechLead    FactoryRole = "tech_lead"
	FactoryRoleArchitect   FactoryRole = "architect"
	FactoryRoleScrumMaster FactoryRole = "scrum_master"
	FactoryRoleUX          FactoryRole = "ux"
	FactoryRoleOther       FactoryRole = "other"
)

type FactoryProject struct {
	ID          uuid.UUID            `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	Name        string               `json:"name"`
	ClientID    *uuid.UUID           `json:"clientId,omitempty"`
	Description string               `json:"description"`
	StartDate   time.Time            `json:"startDate"`
	EndDate     time.Time            `json:"endDate"`
	Status      FactoryProjectStatus `json:"status"`
	// ProgressPercentage is set manually and is independent of time
	// elapsed; analytics computes a calendar-based progress alongside it.
	ProgressPercentage int       `json:"progressPercentage"`
	CreatedAt          time.Time `json:"createdAt"`
}

// FactoryAllocation always carries its own end date; there is no position
// fallback on the factory side.
type FactoryAllocation struct {
	ID                   uuid.UUID   `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	ProjectID            uuid.UUID   `json:"projectId"`
	ProfessionalID       uuid.UUID   `json:"professionalId"`
	Role                 FactoryRole `json:"role"`
	StackID              uuid.UUID   `json:"stackId"`
	StartDate            time.Time   `json:"startDate"`
	EndDate              time.Time   `json:"endDate"`
	AllocationPercentage int         `json:"allocationPercentage"`
	CreatedAt            time.Time   `json:"createdAt"`
}
