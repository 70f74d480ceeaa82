package repository

import (
	"context"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines catalog persistence. Products are loaded with their variants.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, params ListParams) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	// Update saves the product fields and replaces its variants.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
