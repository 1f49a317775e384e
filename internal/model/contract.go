package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ContractType string

const (
	ContractTypeStaffing ContractType = "staffing"
	ContractTypeFactory  ContractType = "factory"
)

// ContractStatus is never stored; it is recomputed from EndDate and a
// reference date (see analytics.ContractStatusAt).
type ContractStatus string

const (
	ContractStatusActive     ContractStatus = "active"
	ContractStatusExpiring30 ContractStatus = "expiring_30"
	ContractStatusExpiring60 ContractStatus = "expiring_60"
	ContractStatusExpiring90 ContractStatus = "expiring_90"
	ContractStatusExpired    ContractStatus = "expired"
)

type Contract struct {
	ID             uuid.UUID       `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	ClientID       uuid.UUID       `json:"clientId"`
	ContractNumber string          `json:"contractNumber"`
	ProjectName    *string         `json:"projectName,omitempty"`
	Type           ContractType    `json:"type"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	MonthlyValue   decimal.Decimal `json:"monthlyValue" gorm:"type:numeric(18,2)"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// Label returns the display name used for the contract across timelines
// and forecasts: the project name when set, the contract number otherwise.
func (c Contract) Label() string {
	if c.ProjectName != nil && *c.ProjectName != "" {
		return *c.ProjectName
	}
	return c.ContractNumber
}
