package model

import (
	"time"

	"github.com/google/uuid"
)

// Allocation is a professional's time-bounded claim on a position. EndDate
// is optional: a nil end date means the allocation inherits the position's
// end date (the effective-end-date rule applied throughout analytics).
type Allocation struct {
	ID                   uuid.UUID  `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	ProfessionalID       uuid.UUID  `json:"professionalId"`
	PositionID           uuid.UUID  `json:"positionId"`
	StartDate            time.Time  `json:"startDate"`
	EndDate              *time.Time `json:"endDate"`
	AllocationPercentage int        `json:"allocationPercentage"`
	CreatedAt            time.Time  `json:"createdAt"`
}
