package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType selects how a promo code's value is applied.
type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
	DiscountFreeClass   DiscountType = "FREE_CLASS"
)

// IsValid checks if the DiscountType is a known value.
func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountPercentage, DiscountFixedAmount, DiscountFreeClass:
		return true
	default:
		return false
	}
}

// PromoRejection is the reason a promo code cannot be applied.
type PromoRejection string

const (
	PromoAccepted     PromoRejection = ""
	PromoInactive     PromoRejection = "inactive"
	PromoExpired      PromoRejection = "expired"
	PromoLimitReached PromoRejection = "limit_reached"
)

var hundred = decimal.NewFromInt(100)

// PromoCode is a discount code managed by administrators.
type PromoCode struct {
	ID           uuid.UUID
	Code         string // stored upper case
	DiscountType DiscountType
	Value        decimal.Decimal
	MaxUses      *int
	UsedCount    int
	ExpiresAt    *time.Time
	IsActive     bool
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Rejection checks the code in order: active, unexpired, under its usage cap.
// The first failing check wins.
func (p *PromoCode) Rejection(now time.Time) PromoRejection {
	if !p.IsActive {
		return PromoInactive
	}
	if p.ExpiresAt != nil && p.ExpiresAt.Before(now) {
		return PromoExpired
	}
	if p.MaxUses != nil && p.UsedCount >= *p.MaxUses {
		return PromoLimitReached
	}

	return PromoAccepted
}

// Apply computes the discount for total and the resulting total, clamped at zero.
func (p *PromoCode) Apply(total decimal.Decimal) (discount, newTotal decimal.Decimal) {
	switch p.DiscountType {
	case DiscountPercentage:
		discount = total.Mul(p.Value).Div(hundred)
	case DiscountFixedAmount:
		discount = decimal.Min(p.Value, total)
	case DiscountFreeClass:
		discount = total
	default:
		discount = decimal.Zero
	}

	newTotal = total.Sub(discount)
	if newTotal.IsNegative() {
		newTotal = decimal.Zero
	}

	return discount, newTotal
}
