package usecase

import (
	"context"
	"time"

	"sarahkyoga/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PromoQuote is the priced result of a valid promo code.
type PromoQuote struct {
	PromoCode *entity.PromoCode
	Discount  decimal.Decimal
	NewTotal  decimal.Decimal
}

// CreatePromoCodeInput defines a new promo code. An empty Code requests a generated one.
type CreatePromoCodeInput struct {
	Code         string
	DiscountType entity.DiscountType
	Value        decimal.Decimal
	MaxUses      *int
	ExpiresAt    *time.Time
	IsActive     *bool
	Description  string
}

// UpdatePromoCodeInput holds the editable promo code fields; nil fields are left unchanged.
type UpdatePromoCodeInput struct {
	DiscountType *entity.DiscountType
	Value        *decimal.Decimal
	MaxUses      *int
	ClearMaxUses bool
	ExpiresAt    *time.Time
	ClearExpiry  bool
	IsActive     *bool
	Description  *string
}

// PromoEvaluator validates promo codes and records redemptions.
type PromoEvaluator interface {
	// ValidateAndPrice never changes the usage count.
	ValidateAndPrice(ctx context.Context, code string, total decimal.Decimal) (*PromoQuote, error)
	// Redeem counts one use of the code for the given order.
	Redeem(ctx context.Context, promoID, orderID uuid.UUID) error
}

// PromoAdminUsecase defines the admin operations on promo codes.
type PromoAdminUsecase interface {
	Create(ctx context.Context, input *CreatePromoCodeInput) (*entity.PromoCode, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdatePromoCodeInput) (*entity.PromoCode, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error)
	List(ctx context.Context, limit, offset int) ([]*entity.PromoCode, error)
}
