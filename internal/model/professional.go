package model

import (
	"time"

	"github.com/google/uuid"
)

type ProfessionalStatus string

const (
	ProfessionalStatusAllocated ProfessionalStatus = "allocated"
	ProfessionalStatusIdle      ProfessionalStatus = "idle"
	ProfessionalStatusPartial   ProfessionalStatus = "partial"
	ProfessionalStatusVacation  ProfessionalStatus = "vacation"
	ProfessionalStatusNotice    ProfessionalStatus = "notice"
)

type WorkMode string

const (
	WorkModeAllocation WorkMode = "allocation"
	WorkModeFactory    WorkMode = "factory"
	WorkModeBoth       WorkMode = "both"
)

// StackExperience records a professional's years of experience in one stack.
type StackExperience struct {
	ProfessionalID  uuid.UUID `json:"-" gorm:"primaryKey"`
	StackID         uuid.UUID `json:"stackId" gorm:"primaryKey"`
	YearsExperience int       `json:"yearsExperience"`
}

type Professional struct {
	ID                 uuid.UUID          `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	Name               string             `json:"name"`
	Email              *string            `json:"email,omitempty"`
	GeneralSeniorityID *uuid.UUID         `json:"generalSeniorityId,omitempty"`
	StackExperiences   []StackExperience  `json:"stackExperiences" gorm:"foreignKey:ProfessionalID"`
	Status             ProfessionalStatus `json:"status"`
	WorkMode           WorkMode           `json:"workMode"`
	// LeaderID points at another professional. The relation is not
	// guaranteed acyclic; traversals must carry a visited set.
	LeaderID             *uuid.UUID `json:"leaderId,omitempty"`
	TotalYearsExperience *int       `json:"totalYearsExperience,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// EligibleForFactory reports whether the professional belongs to the
// software-factory pool.
func (p Professional) EligibleForFactory() bool {
	return p.WorkMode == WorkModeFactory || p.WorkMode == WorkModeBoth
}

// PrimaryStackID returns the first recorded stack experience, if any.
func (p Professional) PrimaryStackID() (uuid.UUID, bool) {
	if len(p.StackExperiences) == 0 {
		return uuid.Nil, false
	}
	return p.StackExperiences[0].StackID, true
}
