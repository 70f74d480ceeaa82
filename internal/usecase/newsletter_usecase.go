package usecase

import (
	"context"

	"sarahkyoga/internal/domain/entity"

	"github.com/google/uuid"
)

// NewsletterInput holds the composer fields of a draft.
type NewsletterInput struct {
	Title   string
	Content string
	Style   entity.NewsletterStyle
}

// DeliveryReport summarizes one newsletter send.
type DeliveryReport struct {
	NewsletterID uuid.UUID
	Recipients   int
	Failed       int
}

// NewsletterUsecase defines the composer, publishing and subscriber operations.
type NewsletterUsecase interface {
	Create(ctx context.Context, input *NewsletterInput) (*entity.Newsletter, error)
	// Update is rejected once the newsletter is published.
	Update(ctx context.Context, id uuid.UUID, input *NewsletterInput) (*entity.Newsletter, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Newsletter, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Newsletter, error)
	Publish(ctx context.Context, id uuid.UUID) (*entity.Newsletter, error)
	SendTest(ctx context.Context, id uuid.UUID, email string) error

	Subscribe(ctx context.Context, email string) (*entity.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	ListSubscribers(ctx context.Context, limit, offset int) ([]*entity.Subscriber, error)
}

// NewsletterDeliveryUsecase sends a published newsletter to every active subscriber.
type NewsletterDeliveryUsecase interface {
	Deliver(ctx context.Context, newsletterID uuid.UUID) (*DeliveryReport, error)
}
