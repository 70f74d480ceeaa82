package repository

import (
	"context"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrNewsletterNotFound is returned when a newsletter is not found.
	ErrNewsletterNotFound = errors.New("newsletter not found")
	// ErrSubscriberNotFound is returned when a subscriber is not found.
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// NewsletterRepository defines newsletter persistence.
type NewsletterRepository interface {
	Create(ctx context.Context, newsletter *entity.Newsletter) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Newsletter, error)
	Update(ctx context.Context, newsletter *entity.Newsletter) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params ListParams) ([]*entity.Newsletter, error)
}

// SubscriberRepository defines subscriber persistence.
type SubscriberRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
	Create(ctx context.Context, subscriber *entity.Subscriber) error
	Update(ctx context.Context, subscriber *entity.Subscriber) error
	ListActive(ctx context.Context) ([]*entity.Subscriber, error)
	List(ctx context.Context, params ListParams) ([]*entity.Subscriber, error)
	CountActive(ctx context.Context) (int64, error)
}
