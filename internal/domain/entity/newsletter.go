package entity

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterStyle is the flat style descriptor applied to the newsletter body.
type NewsletterStyle struct {
	FontFamily      string `json:"fontFamily"`
	FontSize        string `json:"fontSize"`
	TextAlign       string `json:"textAlign"`
	TextColor       string `json:"textColor"`
	BackgroundColor string `json:"backgroundColor"`
	AccentColor     string `json:"accentColor"`
}

// Newsletter is composed as a draft and becomes read-only once published.
type Newsletter struct {
	ID          uuid.UUID
	Title       string
	Content     string // HTML
	Style       NewsletterStyle
	IsDraft     bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Subscriber is a newsletter recipient.
type Subscriber struct {
	ID        uuid.UUID
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
