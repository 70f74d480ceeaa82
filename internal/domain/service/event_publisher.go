package service

import (
	"context"

	"sarahkyoga/internal/errors"
)

// ErrPublishingDisabled is returned by publishers that drop events, signalling callers to deliver inline.
var ErrPublishingDisabled = errors.New("event publishing disabled")

// NewsletterEvent asks the mail worker to deliver a published newsletter
type NewsletterEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	NewsletterID string `json:"newsletter_id"`
	PublishedAt  int64  `json:"published_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNewsletterEvent publishes a newsletter delivery event for async processing
	PublishNewsletterEvent(ctx context.Context, event *NewsletterEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
