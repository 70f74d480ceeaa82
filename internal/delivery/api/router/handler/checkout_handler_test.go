package handler

import (
	"net/http"
	"testing"

	"sarahkyoga/internal/domain/constants"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	mockUsecase "sarahkyoga/internal/mocks/usecase"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCheckoutRoutes(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockCheckoutUsecase) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(CheckoutHandlerParams{CheckoutUC: checkoutUC, Logger: newDiscardLogger()})
	auth := newTestAuth(t, userID)

	e := newTestEcho()
	e.POST("/api/v1/checkout/payment-intent", h.CreatePaymentIntent, auth.OptionalAuthenticate)
	e.POST("/api/v1/checkout/session", h.CreateCheckoutSession, auth.OptionalAuthenticate)
	e.POST("/api/v1/checkout/confirm", h.Confirm, auth.OptionalAuthenticate)

	return e, checkoutUC
}

func testPricing() usecase.CheckoutPricing {
	return usecase.CheckoutPricing{
		Subtotal:  decimal.NewFromInt(100),
		Discount:  decimal.NewFromInt(10),
		Total:     decimal.NewFromInt(90),
		PromoCode: "SPRING10",
	}
}

func TestCheckoutHandler_CreatePaymentIntent(t *testing.T) {
	e, checkoutUC := setupCheckoutRoutes(t, uuid.New())

	checkoutUC.EXPECT().CreatePaymentIntent(mock.Anything, &usecase.CheckoutInput{
		Owner:     usecase.CartOwner{GuestHandle: "guest-handle"},
		PromoCode: "spring10",
		Email:     "guest@example.com",
	}).Return(&usecase.PaymentIntentOutput{
		CheckoutPricing: testPricing(),
		PaymentIntentID: "pi_123",
		ClientSecret:    "pi_123_secret",
	}, nil).Once()

	req := newJSONRequest(t, http.MethodPost, "/api/v1/checkout/payment-intent", map[string]any{
		"promoCode": "spring10",
		"email":     "guest@example.com",
	})
	req.Header.Set(constants.HeaderCartID, "guest-handle")

	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[PaymentIntentResponse](t, rec)
	assert.Equal(t, "pi_123_secret", body.ClientSecret)
	assert.True(t, decimal.NewFromInt(90).Equal(body.Total))
	assert.Equal(t, "SPRING10", body.PromoCode)
}

func TestCheckoutHandler_CreatePaymentIntent_NoPaymentRequired(t *testing.T) {
	e, checkoutUC := setupCheckoutRoutes(t, uuid.New())

	checkoutUC.EXPECT().CreatePaymentIntent(mock.Anything, mock.Anything).Return(&usecase.PaymentIntentOutput{
		CheckoutPricing: usecase.CheckoutPricing{
			Subtotal:  decimal.NewFromInt(25),
			Discount:  decimal.NewFromInt(25),
			Total:     decimal.Zero,
			PromoCode: "TRYUS",
		},
		PaymentIntentID:   constants.FreeOrderReferencePrefix + "abc123",
		NoPaymentRequired: true,
	}, nil).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/checkout/payment-intent", map[string]any{"promoCode": "tryus"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[PaymentIntentResponse](t, rec)
	assert.True(t, body.NoPaymentRequired)
	assert.Equal(t, "free_abc123", body.PaymentIntentID)
	assert.Empty(t, body.ClientSecret)
	assert.NotContains(t, rec.Body.String(), "clientSecret")
}

func TestCheckoutHandler_CreatePaymentIntent_EmptyCart(t *testing.T) {
	e, checkoutUC := setupCheckoutRoutes(t, uuid.New())

	checkoutUC.EXPECT().CreatePaymentIntent(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmptyCart).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/checkout/payment-intent", map[string]any{}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMPTY_CART", decodeError(t, rec).Code)
}

func TestCheckoutHandler_CreateCheckoutSession(t *testing.T) {
	userID := uuid.New()
	e, checkoutUC := setupCheckoutRoutes(t, userID)

	checkoutUC.EXPECT().CreateCheckoutSession(mock.Anything, mock.MatchedBy(func(input *usecase.CheckoutInput) bool {
		return input.Owner.UserID != nil && *input.Owner.UserID == userID
	})).Return(&usecase.CheckoutSessionOutput{
		CheckoutPricing: testPricing(),
		SessionID:       "cs_123",
		URL:             "https://checkout.example.com/cs_123",
	}, nil).Once()

	req := newJSONRequest(t, http.MethodPost, "/api/v1/checkout/session", map[string]any{"promoCode": "SPRING10"})
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testUserToken)

	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[CheckoutSessionResponse](t, rec)
	assert.Equal(t, "cs_123", body.SessionID)
	assert.Equal(t, "https://checkout.example.com/cs_123", body.URL)
}

func TestCheckoutHandler_Confirm(t *testing.T) {
	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "AB12CD34",
		Status:      entity.OrderCompleted,
		Total:       decimal.NewFromInt(90),
	}

	testCases := []struct {
		name             string
		alreadyFinalized bool
		expectedStatus   int
	}{
		{name: "new order", alreadyFinalized: false, expectedStatus: http.StatusCreated},
		{name: "repeated confirmation", alreadyFinalized: true, expectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, checkoutUC := setupCheckoutRoutes(t, uuid.New())

			checkoutUC.EXPECT().Confirm(mock.Anything, &usecase.FinalizeInput{
				PaymentReference: "pi_123",
				Owner:            usecase.CartOwner{GuestHandle: "guest-handle"},
				GuestEmail:       "guest@example.com",
				FirstName:        "Ana",
			}).Return(&usecase.FinalizeOutput{Order: order, AlreadyFinalized: tc.alreadyFinalized}, nil).Once()

			req := newJSONRequest(t, http.MethodPost, "/api/v1/checkout/confirm", map[string]any{
				"paymentReference": "pi_123",
				"email":            "guest@example.com",
				"firstName":        "Ana",
			})
			req.Header.Set(constants.HeaderCartID, "guest-handle")

			rec := serve(e, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			body := decodeData[ConfirmCheckoutResponse](t, rec)
			assert.Equal(t, tc.alreadyFinalized, body.AlreadyFinalized)
			assert.Equal(t, "AB12CD34", body.Order.OrderNumber)
		})
	}
}

func TestCheckoutHandler_Confirm_PaymentNotCompleted(t *testing.T) {
	e, checkoutUC := setupCheckoutRoutes(t, uuid.New())

	checkoutUC.EXPECT().Confirm(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrPaymentNotCompleted.WrapMessage("status requires_payment_method")).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/checkout/confirm", map[string]any{
		"paymentReference": "pi_123",
	}))

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, "PAYMENT_NOT_COMPLETED", decodeError(t, rec).Code)
}

func TestCheckoutHandler_Confirm_RequiresPaymentReference(t *testing.T) {
	e, _ := setupCheckoutRoutes(t, uuid.New())

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/checkout/confirm", map[string]any{
		"email": "guest@example.com",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "paymentReference: required", decodeError(t, rec).Details)
}
