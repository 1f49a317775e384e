package model

import (
	"time"

	"github.com/google/uuid"
)

type PositionStatus string

const (
	PositionStatusOpen   PositionStatus = "open"
	PositionStatusFilled PositionStatus = "filled"
)

type Position struct {
	ID          uuid.UUID      `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	ContractID  uuid.UUID      `json:"contractId"`
	Title       string         `json:"title"`
	StackID     uuid.UUID      `json:"stackId"`
	SeniorityID *uuid.UUID     `json:"seniorityId,omitempty"`
	Status      PositionStatus `json:"status"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     time.Time      `json:"endDate"`
	// AllocationPercentage is the share of a full-time slot this position
	// represents, 1-100.
	AllocationPercentage int       `json:"allocationPercentage"`
	CreatedAt            time.Time `json:"createdAt"`
}
