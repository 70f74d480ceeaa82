package model

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterStyleModel is embedded into 'newsletters' with the style_ column prefix.
type NewsletterStyleModel struct {
	FontFamily      string `gorm:"type:varchar(100)"`
	FontSize        string `gorm:"type:varchar(20)"`
	TextAlign       string `gorm:"type:varchar(20)"`
	TextColor       string `gorm:"type:varchar(20)"`
	BackgroundColor string `gorm:"type:varchar(20)"`
	AccentColor     string `gorm:"type:varchar(20)"`
}

// NewsletterModel mirrors the 'newsletters' table.
type NewsletterModel struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Title       string               `gorm:"type:varchar(255);not null"`
	Content     string               `gorm:"type:text"`
	Style       NewsletterStyleModel `gorm:"embedded;embeddedPrefix:style_"`
	IsDraft     bool                 `gorm:"not null"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsletterModel) TableName() string {
	return "newsletters"
}

// SubscriberModel mirrors the 'subscribers' table.
type SubscriberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	IsActive  bool      `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriberModel) TableName() string {
	return "subscribers"
}
