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

type promoHandlerMocks struct {
	evaluator    *mockUsecase.MockPromoEvaluator
	adminUC      *mockUsecase.MockPromoAdminUsecase
	cartResolver *mockUsecase.MockCartResolver
}

func setupPromoRoutes(t *testing.T) (*echo.Echo, *promoHandlerMocks) {
	mocks := &promoHandlerMocks{
		evaluator:    mockUsecase.NewMockPromoEvaluator(t),
		adminUC:      mockUsecase.NewMockPromoAdminUsecase(t),
		cartResolver: mockUsecase.NewMockCartResolver(t),
	}
	h := NewPromoHandler(PromoHandlerParams{
		Evaluator:    mocks.evaluator,
		AdminUC:      mocks.adminUC,
		CartResolver: mocks.cartResolver,
	})
	auth := newTestAuth(t, uuid.New())

	e := newTestEcho()
	e.POST("/api/v1/promo-codes/validate", h.ValidatePromoCode, auth.OptionalAuthenticate)
	e.POST("/api/v1/admin/promo-codes", h.CreatePromoCode)
	e.PUT("/api/v1/admin/promo-codes/:id", h.UpdatePromoCode)
	e.POST("/api/v1/admin/promo-codes/:id/deactivate", h.DeactivatePromoCode)
	e.DELETE("/api/v1/admin/promo-codes/:id", h.DeletePromoCode)

	return e, mocks
}

func decimalEq(expected int64) any {
	return mock.MatchedBy(func(actual decimal.Decimal) bool {
		return actual.Equal(decimal.NewFromInt(expected))
	})
}

func TestPromoHandler_ValidatePromoCode_WithTotal(t *testing.T) {
	e, mocks := setupPromoRoutes(t)

	promo := &entity.PromoCode{Code: "SPRING10", DiscountType: entity.DiscountPercentage, Value: decimal.NewFromInt(10)}
	mocks.evaluator.EXPECT().ValidateAndPrice(mock.Anything, "spring10", decimalEq(100)).
		Return(&usecase.PromoQuote{
			PromoCode: promo,
			Discount:  decimal.NewFromInt(10),
			NewTotal:  decimal.NewFromInt(90),
		}, nil).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/promo-codes/validate", map[string]any{
		"code":  "spring10",
		"total": "100",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[PromoQuoteResponse](t, rec)
	assert.Equal(t, "SPRING10", body.Code)
	assert.True(t, decimal.NewFromInt(10).Equal(body.Discount))
	assert.True(t, decimal.NewFromInt(90).Equal(body.NewTotal))
}

func TestPromoHandler_ValidatePromoCode_PricesGuestCart(t *testing.T) {
	e, mocks := setupPromoRoutes(t)

	product := &entity.Product{ID: uuid.New(), Price: decimal.NewFromInt(40)}
	cart := &entity.Cart{
		ID:          uuid.New(),
		GuestHandle: "guest-handle",
		Items:       []entity.CartItem{{ProductID: product.ID, Product: product, Quantity: 2}},
	}
	mocks.cartResolver.EXPECT().Resolve(mock.Anything, usecase.CartOwner{GuestHandle: "guest-handle"}, false).
		Return(&usecase.ResolvedCart{Cart: cart}, nil).Once()
	mocks.evaluator.EXPECT().ValidateAndPrice(mock.Anything, "FREECLASS", decimalEq(80)).
		Return(&usecase.PromoQuote{
			PromoCode: &entity.PromoCode{Code: "FREECLASS", DiscountType: entity.DiscountFreeClass},
			Discount:  decimal.NewFromInt(80),
			NewTotal:  decimal.Zero,
		}, nil).Once()

	req := newJSONRequest(t, http.MethodPost, "/api/v1/promo-codes/validate", map[string]any{"code": "FREECLASS"})
	req.Header.Set(constants.HeaderCartID, "guest-handle")

	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[PromoQuoteResponse](t, rec)
	assert.True(t, decimal.NewFromInt(80).Equal(body.Total))
	assert.True(t, body.NewTotal.IsZero())
}

func TestPromoHandler_ValidatePromoCode_Rejections(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode string
		expectedHTTP int
	}{
		{name: "unknown", err: domainerrors.ErrPromoNotFound, expectedCode: "PROMO_NOT_FOUND", expectedHTTP: http.StatusNotFound},
		{name: "inactive", err: domainerrors.ErrPromoInactive, expectedCode: "PROMO_INACTIVE", expectedHTTP: http.StatusBadRequest},
		{name: "expired", err: domainerrors.ErrPromoExpired, expectedCode: "PROMO_EXPIRED", expectedHTTP: http.StatusBadRequest},
		{name: "limit reached", err: domainerrors.ErrPromoLimitReached, expectedCode: "PROMO_LIMIT_REACHED", expectedHTTP: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, mocks := setupPromoRoutes(t)

			mocks.evaluator.EXPECT().ValidateAndPrice(mock.Anything, "CODE", mock.Anything).
				Return(nil, tc.err).Once()

			rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/promo-codes/validate", map[string]any{
				"code":  "CODE",
				"total": 50,
			}))

			assert.Equal(t, tc.expectedHTTP, rec.Code)
			assert.Equal(t, tc.expectedCode, decodeError(t, rec).Code)
		})
	}
}

func TestPromoHandler_ValidatePromoCode_NegativeTotal(t *testing.T) {
	e, _ := setupPromoRoutes(t)

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/promo-codes/validate", map[string]any{
		"code":  "CODE",
		"total": "-1",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestPromoHandler_CreatePromoCode(t *testing.T) {
	e, mocks := setupPromoRoutes(t)

	maxUses := 20
	mocks.adminUC.EXPECT().Create(mock.Anything, mock.MatchedBy(func(input *usecase.CreatePromoCodeInput) bool {
		return input.Code == "" &&
			input.DiscountType == entity.DiscountFixedAmount &&
			input.Value.Equal(decimal.NewFromInt(15)) &&
			input.MaxUses != nil && *input.MaxUses == maxUses
	})).Return(&entity.PromoCode{
		ID:           uuid.New(),
		Code:         "K7Q2M9XZ",
		DiscountType: entity.DiscountFixedAmount,
		Value:        decimal.NewFromInt(15),
		MaxUses:      &maxUses,
		IsActive:     true,
	}, nil).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/admin/promo-codes", map[string]any{
		"discountType": "FIXED_AMOUNT",
		"value":        "15",
		"maxUses":      maxUses,
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeData[PromoCodeResponse](t, rec)
	assert.Equal(t, "K7Q2M9XZ", body.Code)
	assert.True(t, body.IsActive)
}

func TestPromoHandler_CreatePromoCode_UnknownDiscountType(t *testing.T) {
	e, _ := setupPromoRoutes(t)

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/admin/promo-codes", map[string]any{
		"discountType": "BOGO",
		"value":        "1",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "discountType: oneof=PERCENTAGE FIXED_AMOUNT FREE_CLASS", decodeError(t, rec).Details)
}

func TestPromoHandler_UpdatePromoCode(t *testing.T) {
	e, mocks := setupPromoRoutes(t)

	id := uuid.New()
	mocks.adminUC.EXPECT().Update(mock.Anything, id, mock.MatchedBy(func(input *usecase.UpdatePromoCodeInput) bool {
		return input.DiscountType != nil && *input.DiscountType == entity.DiscountPercentage &&
			input.ClearExpiry && input.Value == nil
	})).Return(&entity.PromoCode{ID: id, Code: "SUMMER", DiscountType: entity.DiscountPercentage}, nil).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPut, "/api/v1/admin/promo-codes/"+id.String(), map[string]any{
		"discountType": "PERCENTAGE",
		"clearExpiry":  true,
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPromoHandler_DeactivateAndDelete(t *testing.T) {
	e, mocks := setupPromoRoutes(t)

	id := uuid.New()
	mocks.adminUC.EXPECT().Deactivate(mock.Anything, id).
		Return(&entity.PromoCode{ID: id, Code: "SUMMER", IsActive: false}, nil).Once()
	mocks.adminUC.EXPECT().Delete(mock.Anything, id).
		Return(domainerrors.ErrPromoInUse).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/admin/promo-codes/"+id.String()+"/deactivate", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeData[PromoCodeResponse](t, rec).IsActive)

	rec = serve(e, newJSONRequest(t, http.MethodDelete, "/api/v1/admin/promo-codes/"+id.String(), nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decodeError(t, rec).Code)
}
