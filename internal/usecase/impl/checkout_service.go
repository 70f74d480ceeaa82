package impl

import (
	"context"
	"log/slog"

	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/constants"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/service"
	"sarahkyoga/internal/usecase"
	"sarahkyoga/internal/util"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const freeOrderReferenceBytes = 16

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	resolver       usecase.CartResolver
	promoEvaluator usecase.PromoEvaluator
	finalizer      usecase.OrderFinalizer
	gateway        service.PaymentGateway
	logger         *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Resolver       usecase.CartResolver
	PromoEvaluator usecase.PromoEvaluator
	Finalizer      usecase.OrderFinalizer
	Gateway        service.PaymentGateway
	Logger         *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		resolver:       params.Resolver,
		promoEvaluator: params.PromoEvaluator,
		finalizer:      params.Finalizer,
		gateway:        params.Gateway,
		logger:         params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePaymentIntent prices the cart and opens a payment intent for the discounted total.
// A zero total gets a free-order reference instead of an intent.
func (srv *checkoutService) CreatePaymentIntent(ctx context.Context, input *usecase.CheckoutInput) (*usecase.PaymentIntentOutput, error) {
	cart, pricing, err := srv.price(ctx, input)
	if err != nil {
		return nil, err
	}

	if pricing.Total.IsZero() {
		suffix, err := util.RandomHex(freeOrderReferenceBytes)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate free order reference")
		}
		srv.log(ctx).Info("Cart fully discounted, skipping payment", slog.Any("cartID", cart.ID), slog.String("code", pricing.PromoCode))

		return &usecase.PaymentIntentOutput{
			CheckoutPricing:   *pricing,
			PaymentIntentID:   constants.FreeOrderReferencePrefix + suffix,
			NoPaymentRequired: true,
		}, nil
	}

	intent, err := srv.gateway.CreatePaymentIntent(ctx, &service.PaymentIntentParams{
		Amount:   pricing.Total,
		Email:    input.Email,
		Metadata: paymentMetadata(cart, input.Owner, pricing),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create payment intent", slog.Any("cartID", cart.ID), slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("failed to create payment intent")
	}

	return &usecase.PaymentIntentOutput{
		CheckoutPricing: *pricing,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
	}, nil
}

// CreateCheckoutSession opens a hosted checkout page for the cart lines.
func (srv *checkoutService) CreateCheckoutSession(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutSessionOutput, error) {
	cart, pricing, err := srv.price(ctx, input)
	if err != nil {
		return nil, err
	}

	lineItems := make([]service.CheckoutLineItem, 0, len(cart.Items))
	for _, item := range orderItemsFrom(cart) {
		lineItems = append(lineItems, service.CheckoutLineItem{
			Name:      item.ProductName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx, &service.CheckoutSessionParams{
		LineItems: lineItems,
		Discount:  pricing.Discount,
		Email:     input.Email,
		Metadata:  paymentMetadata(cart, input.Owner, pricing),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session", slog.Any("cartID", cart.ID), slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("failed to create checkout session")
	}

	return &usecase.CheckoutSessionOutput{
		CheckoutPricing: *pricing,
		SessionID:       session.ID,
		URL:             session.URL,
	}, nil
}

// Confirm finalizes the order for a completed payment.
func (srv *checkoutService) Confirm(ctx context.Context, input *usecase.FinalizeInput) (*usecase.FinalizeOutput, error) {
	return srv.finalizer.Finalize(ctx, input)
}

// price resolves a non-empty cart and applies the promo code. A rejected code fails the checkout.
func (srv *checkoutService) price(ctx context.Context, input *usecase.CheckoutInput) (*entity.Cart, *usecase.CheckoutPricing, error) {
	resolved, err := srv.resolver.Resolve(ctx, input.Owner, false)
	if err != nil {
		return nil, nil, err
	}
	cart := resolved.Cart
	if cart.IsEmpty() {
		return nil, nil, domainerrors.ErrEmptyCart.WrapMessage("cannot check out an empty cart")
	}

	subtotal := cart.Total()
	pricing := &usecase.CheckoutPricing{
		Subtotal: subtotal,
		Discount: decimal.Zero,
		Total:    subtotal,
	}

	if code := normalizePromoCode(input.PromoCode); code != "" {
		quote, err := srv.promoEvaluator.ValidateAndPrice(ctx, code, subtotal)
		if err != nil {
			return nil, nil, err
		}
		pricing.Discount = quote.Discount
		pricing.Total = quote.NewTotal
		pricing.PromoCode = quote.PromoCode.Code
	}

	return cart, pricing, nil
}

func paymentMetadata(cart *entity.Cart, owner usecase.CartOwner, pricing *usecase.CheckoutPricing) map[string]string {
	metadata := map[string]string{
		constants.PaymentMetadataCartID: cart.ID.String(),
	}
	if pricing.PromoCode != "" {
		metadata[constants.PaymentMetadataPromoCode] = pricing.PromoCode
	}
	if owner.IsAuthenticated() {
		metadata[constants.PaymentMetadataUserID] = owner.UserID.String()
	}

	return metadata
}
