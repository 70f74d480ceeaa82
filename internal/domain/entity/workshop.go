package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkshopStatus is the publication state of a workshop.
type WorkshopStatus string

const (
	WorkshopDraft     WorkshopStatus = "draft"
	WorkshopPublished WorkshopStatus = "published"
)

// Workshop is a scheduled event managed through the content collection.
type Workshop struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Price       decimal.Decimal
	Capacity    int
	Status      WorkshopStatus
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkshopVersion is an immutable snapshot taken on every change.
type WorkshopVersion struct {
	ID         uuid.UUID
	WorkshopID uuid.UUID
	Version    int
	Status     WorkshopStatus
	Snapshot   Workshop
	CreatedAt  time.Time
}

// IsPublished reports whether the workshop is visible publicly.
func (w *Workshop) IsPublished() bool {
	return w.Status == WorkshopPublished
}
