package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromoCodeModel mirrors the 'promo_codes' table. Codes are stored upper case.
type PromoCodeModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code         string          `gorm:"type:varchar(32);uniqueIndex;not null"`
	DiscountType string          `gorm:"type:varchar(20);not null"`
	Value        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	MaxUses      *int
	UsedCount    int `gorm:"not null"`
	ExpiresAt    *time.Time
	IsActive     bool   `gorm:"not null;index"`
	Description  string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromoCodeModel) TableName() string {
	return "promo_codes"
}
