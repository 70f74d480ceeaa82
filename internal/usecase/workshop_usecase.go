package usecase

import (
	"context"
	"time"

	"sarahkyoga/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkshopInput holds the editable workshop fields.
type WorkshopInput struct {
	Title       string
	Slug        string
	Description string
	Location    string
	StartsAt    time.Time
	EndsAt      time.Time
	Price       decimal.Decimal
	Capacity    int
}

// WorkshopUsecase defines the workshops collection with draft/publish versioning.
type WorkshopUsecase interface {
	Create(ctx context.Context, input *WorkshopInput) (*entity.Workshop, error)
	Update(ctx context.Context, id uuid.UUID, input *WorkshopInput) (*entity.Workshop, error)
	Publish(ctx context.Context, id uuid.UUID) (*entity.Workshop, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*entity.Workshop, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Workshop, error)
	ListAll(ctx context.Context) ([]*entity.Workshop, error)
	ListVersions(ctx context.Context, id uuid.UUID) ([]*entity.WorkshopVersion, error)

	// GetPublished and ListPublished hide drafts.
	GetPublished(ctx context.Context, slug string) (*entity.Workshop, error)
	ListPublished(ctx context.Context) ([]*entity.Workshop, error)
}
