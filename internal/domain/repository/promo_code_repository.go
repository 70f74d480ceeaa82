package repository

import (
	"context"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrPromoCodeNotFound is returned when a promo code is not found.
	ErrPromoCodeNotFound = errors.New("promo code not found")
	// ErrDuplicatePromoCode is returned when the code already exists.
	ErrDuplicatePromoCode = errors.New("promo code already exists")
)

// PromoCodeRepository defines promo code persistence.
type PromoCodeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error)

	// FindByCode matches the stored upper-case code exactly.
	FindByCode(ctx context.Context, code string) (*entity.PromoCode, error)

	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, promo *entity.PromoCode) error
	Update(ctx context.Context, promo *entity.PromoCode) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params ListParams) ([]*entity.PromoCode, error)

	// IncrementUsage adds one to used_count in a single statement without re-checking max_uses.
	IncrementUsage(ctx context.Context, id uuid.UUID) error

	CountActive(ctx context.Context) (int64, error)
}
