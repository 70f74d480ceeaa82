package handler

import (
	"log/slog"
	"net/http"

	"sarahkyoga/internal/delivery/api/response"
	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves payment creation and confirmation
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest prices the caller's cart
type CheckoutRequest struct {
	PromoCode string `json:"promoCode" validate:"omitempty,max=32"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// ConfirmCheckoutRequest identifies a completed payment
type ConfirmCheckoutRequest struct {
	PaymentReference string `json:"paymentReference" validate:"required"`
	Email            string `json:"email" validate:"omitempty,email"`
	FirstName        string `json:"firstName" validate:"max=120"`
	PromoCode        string `json:"promoCode" validate:"omitempty,max=32"`
}

// PaymentIntentResponse is handed to the client-side payment form
type PaymentIntentResponse struct {
	PricingResponse

	PaymentIntentID   string `json:"paymentIntentId"`
	ClientSecret      string `json:"clientSecret,omitempty"`
	NoPaymentRequired bool   `json:"noPaymentRequired"`
}

// CheckoutSessionResponse points to the hosted checkout page
type CheckoutSessionResponse struct {
	PricingResponse

	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// ConfirmCheckoutResponse returns the order created for the payment
type ConfirmCheckoutResponse struct {
	Order            *OrderResponse `json:"order"`
	AlreadyFinalized bool           `json:"alreadyFinalized"`
}

// CreatePaymentIntent prices the cart and opens a payment intent
func (h *CheckoutHandler) CreatePaymentIntent(c echo.Context) error {
	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.checkoutUC.CreatePaymentIntent(c.Request().Context(), &usecase.CheckoutInput{
		Owner:     cartOwner(c),
		PromoCode: req.PromoCode,
		Email:     req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PaymentIntentResponse{
		PricingResponse:   newPricingResponse(out.CheckoutPricing),
		PaymentIntentID:   out.PaymentIntentID,
		ClientSecret:      out.ClientSecret,
		NoPaymentRequired: out.NoPaymentRequired,
	})
}

// CreateCheckoutSession prices the cart and opens a hosted checkout session
func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	var req CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.checkoutUC.CreateCheckoutSession(c.Request().Context(), &usecase.CheckoutInput{
		Owner:     cartOwner(c),
		PromoCode: req.PromoCode,
		Email:     req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &CheckoutSessionResponse{
		PricingResponse: newPricingResponse(out.CheckoutPricing),
		SessionID:       out.SessionID,
		URL:             out.URL,
	})
}

// Confirm turns a completed payment into an order. Repeated confirmations return the same order.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	var req ConfirmCheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	out, err := h.checkoutUC.Confirm(ctx, &usecase.FinalizeInput{
		PaymentReference: req.PaymentReference,
		Owner:            cartOwner(c),
		GuestEmail:       req.Email,
		FirstName:        req.FirstName,
		PromoCode:        req.PromoCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if out.AlreadyFinalized {
		status = http.StatusOK
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Payment already confirmed",
			slog.String("payment_reference", req.PaymentReference),
			slog.String("order_number", out.Order.OrderNumber),
		)
	}

	return response.Success(c, status, &ConfirmCheckoutResponse{
		Order:            newOrderResponse(out.Order),
		AlreadyFinalized: out.AlreadyFinalized,
	})
}
