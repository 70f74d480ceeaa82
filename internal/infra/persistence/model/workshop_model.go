package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkshopModel mirrors the 'workshops' collection table.
type WorkshopModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Slug        string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	Location    string          `gorm:"type:varchar(255)"`
	StartsAt    time.Time       `gorm:"not null;index"`
	EndsAt      time.Time       `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Capacity    int             `gorm:"not null"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	Version     int             `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkshopModel) TableName() string {
	return "workshops"
}

// WorkshopVersionModel mirrors the 'workshop_versions' table. Snapshot holds the workshop as JSON.
type WorkshopVersionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkshopID uuid.UUID `gorm:"type:uuid;not null;index"`
	Version    int       `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);not null"`
	Snapshot   string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkshopVersionModel) TableName() string {
	return "workshop_versions"
}
