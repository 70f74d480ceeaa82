package repository

import (
	"context"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrWorkshopNotFound is returned when a workshop is not found.
	ErrWorkshopNotFound = errors.New("workshop not found")
	// ErrDuplicateSlug is returned when the slug is already used by another workshop.
	ErrDuplicateSlug = errors.New("workshop slug already exists")
)

// WorkshopRepository defines persistence for the workshops collection and its version history.
type WorkshopRepository interface {
	Create(ctx context.Context, workshop *entity.Workshop) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Workshop, error)
	Update(ctx context.Context, workshop *entity.Workshop) error
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns workshops ordered by start time; publishedOnly hides drafts.
	List(ctx context.Context, publishedOnly bool) ([]*entity.Workshop, error)

	CreateVersion(ctx context.Context, version *entity.WorkshopVersion) error
	ListVersions(ctx context.Context, workshopID uuid.UUID) ([]*entity.WorkshopVersion, error)
	CountPublished(ctx context.Context) (int64, error)
}
