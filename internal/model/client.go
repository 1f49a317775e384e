package model

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey;default:uuid_generate_v4()"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxId" gorm:"column:tax_id"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
}
