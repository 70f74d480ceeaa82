// Package payment adapts the Stripe API to the domain PaymentGateway.
package payment

import (
	"context"
	"log/slog"
	"strings"

	"sarahkyoga/config"
	"sarahkyoga/internal/domain/service"
	"sarahkyoga/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const checkoutSessionPrefix = "cs_"

type stripeGateway struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
	logger     *slog.Logger
}

// NewStripeGateway creates a PaymentGateway backed by the Stripe API.
func NewStripeGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	return newStripeGateway(cfg, nil, logger)
}

func newStripeGateway(cfg *config.Config, backends *stripe.Backends, logger *slog.Logger) (*stripeGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	return &stripeGateway{
		api:        client.New(cfg.Stripe.SecretKey, backends),
		currency:   strings.ToLower(cfg.Stripe.Currency),
		successURL: cfg.Stripe.SuccessURL,
		cancelURL:  cfg.Stripe.CancelURL,
		logger:     logger,
	}, nil
}

// CreatePaymentIntent creates an intent for the amount in the smallest currency unit.
func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, params *service.PaymentIntentParams) (*service.PaymentIntent, error) {
	intentParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(toMinorUnits(params.Amount)),
		Currency: stripe.String(g.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	intentParams.Context = ctx
	if params.Email != "" {
		intentParams.ReceiptEmail = stripe.String(params.Email)
	}
	for k, v := range params.Metadata {
		intentParams.AddMetadata(k, v)
	}

	intent, err := g.api.PaymentIntents.New(intentParams)
	if err != nil {
		return nil, errors.Wrap(err, "stripe: create payment intent")
	}

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}

// CreateCheckoutSession creates a hosted checkout page. A discount is applied as a one-off coupon.
func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, params *service.CheckoutSessionParams) (*service.CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
	}
	sessionParams.Context = ctx
	if params.Email != "" {
		sessionParams.CustomerEmail = stripe.String(params.Email)
	}
	for k, v := range params.Metadata {
		sessionParams.AddMetadata(k, v)
	}

	for _, item := range params.LineItems {
		sessionParams.LineItems = append(sessionParams.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(item.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.currency),
				UnitAmount: stripe.Int64(toMinorUnits(item.UnitPrice)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
		})
	}

	if params.Discount.IsPositive() {
		couponParams := &stripe.CouponParams{
			AmountOff: stripe.Int64(toMinorUnits(params.Discount)),
			Currency:  stripe.String(g.currency),
			Duration:  stripe.String(string(stripe.CouponDurationOnce)),
		}
		couponParams.Context = ctx

		coupon, err := g.api.Coupons.New(couponParams)
		if err != nil {
			return nil, errors.Wrap(err, "stripe: create coupon")
		}
		sessionParams.Discounts = []*stripe.CheckoutSessionDiscountParams{{Coupon: stripe.String(coupon.ID)}}
	}

	session, err := g.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return nil, errors.Wrap(err, "stripe: create checkout session")
	}

	return &service.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// RetrievePayment loads a checkout session (cs_ prefix) or a payment intent.
// A paid session, or a completed one that needed no payment, is reported as succeeded.
func (g *stripeGateway) RetrievePayment(ctx context.Context, reference string) (*service.Payment, error) {
	if strings.HasPrefix(reference, checkoutSessionPrefix) {
		return g.retrieveSession(ctx, reference)
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.Get(reference, params)
	if err != nil {
		return nil, errors.Wrap(err, "stripe: retrieve payment intent")
	}

	return &service.Payment{
		Reference: intent.ID,
		Status:    string(intent.Status),
		Amount:    fromMinorUnits(intent.Amount),
		Email:     intent.ReceiptEmail,
		Metadata:  intent.Metadata,
	}, nil
}

func (g *stripeGateway) retrieveSession(ctx context.Context, id string) (*service.Payment, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, errors.Wrap(err, "stripe: retrieve checkout session")
	}

	status := sessionPaymentStatus(session)
	email := session.CustomerEmail
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		email = session.CustomerDetails.Email
	}

	g.logger.Debug("Retrieved checkout session",
		slog.String("session_id", session.ID),
		slog.String("payment_status", string(session.PaymentStatus)),
	)

	return &service.Payment{
		Reference: session.ID,
		Status:    status,
		Amount:    fromMinorUnits(session.AmountTotal),
		Email:     email,
		Metadata:  session.Metadata,
	}, nil
}

// sessionPaymentStatus maps a session onto payment intent statuses. A session
// fully covered by a discount completes with no_payment_required.
func sessionPaymentStatus(session *stripe.CheckoutSession) string {
	switch session.PaymentStatus {
	case stripe.CheckoutSessionPaymentStatusPaid:
		return service.PaymentStatusSucceeded
	case stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		if session.Status == stripe.CheckoutSessionStatusComplete {
			return service.PaymentStatusSucceeded
		}
	}

	return string(session.PaymentStatus)
}

var minorUnitsPerMajor = decimal.NewFromInt(100)

func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitsPerMajor).Round(0).IntPart()
}

func fromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
