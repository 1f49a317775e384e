package model

import (
	"time"

	"github.com/google/uuid"
)

type StackCategory struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Stack struct {
	ID         uuid.UUID `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Seniority is a category-specific level (e.g. Junior/Pleno/Senior within a
// stack category). Level orders entries for display.
type Seniority struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	Name        string    `json:"name"`
	Level       int       `json:"level"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GeneralSeniority is the company-wide ladder (A1-C5), independent of stack
// category.
type GeneralSeniority struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	Name        string    `json:"name"`
	Level       int       `json:"level"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
