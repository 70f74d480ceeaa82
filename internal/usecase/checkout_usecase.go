package usecase

import (
	"context"

	"sarahkyoga/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CheckoutInput prices the owner's cart, optionally with a promo code.
type CheckoutInput struct {
	Owner     CartOwner
	PromoCode string
	Email     string
}

// CheckoutPricing is the cart total and the promo applied to it.
type CheckoutPricing struct {
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	PromoCode string
}

// PaymentIntentOutput is returned to the client to confirm the payment.
// When NoPaymentRequired is set, PaymentIntentID is a free-order reference
// to confirm directly and ClientSecret is empty.
type PaymentIntentOutput struct {
	CheckoutPricing

	PaymentIntentID   string
	ClientSecret      string
	NoPaymentRequired bool
}

// CheckoutSessionOutput points the client to the hosted checkout page.
type CheckoutSessionOutput struct {
	CheckoutPricing

	SessionID string
	URL       string
}

// FinalizeInput identifies a paid cart. PromoCode falls back to the one recorded on the payment.
type FinalizeInput struct {
	PaymentReference string
	Owner            CartOwner
	GuestEmail       string
	FirstName        string
	PromoCode        string
}

// FinalizeOutput returns the order; AlreadyFinalized marks a repeated confirmation.
type FinalizeOutput struct {
	Order            *entity.Order
	AlreadyFinalized bool
}

// OrderFinalizer turns a paid cart into an order.
type OrderFinalizer interface {
	Finalize(ctx context.Context, input *FinalizeInput) (*FinalizeOutput, error)
}

// CheckoutUsecase defines payment creation and confirmation.
type CheckoutUsecase interface {
	CreatePaymentIntent(ctx context.Context, input *CheckoutInput) (*PaymentIntentOutput, error)
	CreateCheckoutSession(ctx context.Context, input *CheckoutInput) (*CheckoutSessionOutput, error)
	Confirm(ctx context.Context, input *FinalizeInput) (*FinalizeOutput, error)
}
