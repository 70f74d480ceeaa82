package usecase

import (
	"context"

	"sarahkyoga/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductVariantInput describes one purchasable variant. ID is set when
// editing a variant that already exists.
type ProductVariantInput struct {
	ID       *uuid.UUID
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// ProductInput holds every product field. On update, variants missing from
// the list are removed and the rest keep their IDs.
type ProductInput struct {
	Name            string
	Description     string
	Price           decimal.Decimal
	DurationMinutes *int
	Variants        []ProductVariantInput
}

// CatalogUsecase defines product reads and admin maintenance.
type CatalogUsecase interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, input *ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
