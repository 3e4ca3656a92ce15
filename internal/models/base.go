package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"moneybook/internal/uuid"
)

func init() {
	// Amounts travel as plain JSON numbers, matching what offline clients send.
	decimal.MarshalJSONWithoutQuotes = true
}

// Base contains the columns shared by append-only tables.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
