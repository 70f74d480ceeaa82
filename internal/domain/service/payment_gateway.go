package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentStatusSucceeded is the only status that allows an order to be created.
const PaymentStatusSucceeded = "succeeded"

// PaymentIntentParams describes a payment to create.
type PaymentIntentParams struct {
	Amount   decimal.Decimal
	Email    string
	Metadata map[string]string
}

// PaymentIntent is a processor payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

// CheckoutLineItem is one line of a hosted checkout page.
type CheckoutLineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// CheckoutSessionParams describes a hosted checkout session to create.
type CheckoutSessionParams struct {
	LineItems []CheckoutLineItem
	// Discount is deducted from the session total as a one-off coupon.
	Discount decimal.Decimal
	Email    string
	Metadata map[string]string
}

// CheckoutSession is a hosted checkout page.
type CheckoutSession struct {
	ID  string
	URL string
}

// Payment is the state of a payment as reported by the processor.
type Payment struct {
	Reference string
	Status    string // "succeeded" once funds are captured
	Amount    decimal.Decimal
	Email     string
	Metadata  map[string]string
}

// Succeeded reports whether the payment has been captured.
func (p *Payment) Succeeded() bool {
	return p.Status == PaymentStatusSucceeded
}

// PaymentGateway is the payment processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, params *PaymentIntentParams) (*PaymentIntent, error)
	CreateCheckoutSession(ctx context.Context, params *CheckoutSessionParams) (*CheckoutSession, error)
	// RetrievePayment accepts a payment intent id or a checkout session id.
	RetrievePayment(ctx context.Context, reference string) (*Payment, error)
}
