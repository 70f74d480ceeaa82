package handler

import (
	"net/http"
	"time"

	"sarahkyoga/internal/delivery/api/response"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PromoHandlerParams holds dependencies for PromoHandler, injected by Fx.
type PromoHandlerParams struct {
	fx.In

	Evaluator    usecase.PromoEvaluator
	AdminUC      usecase.PromoAdminUsecase
	CartResolver usecase.CartResolver
}

// PromoHandler serves promo code validation and administration
type PromoHandler struct {
	evaluator    usecase.PromoEvaluator
	adminUC      usecase.PromoAdminUsecase
	cartResolver usecase.CartResolver
}

// NewPromoHandler is the constructor for PromoHandler
func NewPromoHandler(params PromoHandlerParams) *PromoHandler {
	return &PromoHandler{
		evaluator:    params.Evaluator,
		adminUC:      params.AdminUC,
		cartResolver: params.CartResolver,
	}
}

// ValidatePromoRequest checks a code against a total. Without a total the caller's cart is priced.
type ValidatePromoRequest struct {
	Code  string           `json:"code" validate:"required,max=32"`
	Total *decimal.Decimal `json:"total"`
}

// PromoQuoteResponse is the priced result of a valid code
type PromoQuoteResponse struct {
	Code         string              `json:"code"`
	DiscountType entity.DiscountType `json:"discountType"`
	Value        decimal.Decimal     `json:"value"`
	Total        decimal.Decimal     `json:"total"`
	Discount     decimal.Decimal     `json:"discount"`
	NewTotal     decimal.Decimal     `json:"newTotal"`
}

// CreatePromoCodeRequest defines a promo code; leave code empty to generate one
type CreatePromoCodeRequest struct {
	Code         string          `json:"code" validate:"omitempty,alphanum,max=32"`
	DiscountType string          `json:"discountType" validate:"required,oneof=PERCENTAGE FIXED_AMOUNT FREE_CLASS"`
	Value        decimal.Decimal `json:"value"`
	MaxUses      *int            `json:"maxUses" validate:"omitempty,gte=1"`
	ExpiresAt    *time.Time      `json:"expiresAt"`
	IsActive     *bool           `json:"isActive"`
	Description  string          `json:"description" validate:"max=500"`
}

// UpdatePromoCodeRequest changes the provided fields only
type UpdatePromoCodeRequest struct {
	DiscountType *string          `json:"discountType" validate:"omitempty,oneof=PERCENTAGE FIXED_AMOUNT FREE_CLASS"`
	Value        *decimal.Decimal `json:"value"`
	MaxUses      *int             `json:"maxUses" validate:"omitempty,gte=1"`
	ClearMaxUses bool             `json:"clearMaxUses"`
	ExpiresAt    *time.Time       `json:"expiresAt"`
	ClearExpiry  bool             `json:"clearExpiry"`
	IsActive     *bool            `json:"isActive"`
	Description  *string          `json:"description" validate:"omitempty,max=500"`
}

// ValidatePromoCode prices a code without recording a use
func (h *PromoHandler) ValidatePromoCode(c echo.Context) error {
	var req ValidatePromoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	var total decimal.Decimal
	if req.Total != nil {
		if req.Total.IsNegative() {
			return domainerrors.ErrValidationFailed.WithDetails("total: gte=0")
		}
		total = *req.Total
	} else {
		resolved, err := h.cartResolver.Resolve(ctx, cartOwner(c), false)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		total = resolved.Cart.Total()
	}

	quote, err := h.evaluator.ValidateAndPrice(ctx, req.Code, total)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PromoQuoteResponse{
		Code:         quote.PromoCode.Code,
		DiscountType: quote.PromoCode.DiscountType,
		Value:        quote.PromoCode.Value,
		Total:        total,
		Discount:     quote.Discount,
		NewTotal:     quote.NewTotal,
	})
}

// ListPromoCodes returns a page of promo codes
func (h *PromoHandler) ListPromoCodes(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return err
	}

	promos, err := h.adminUC.List(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*PromoCodeResponse, len(promos))
	for i, promo := range promos {
		out[i] = newPromoCodeResponse(promo)
	}

	return response.Page(c, out, limit, offset)
}

// GetPromoCode returns one promo code
func (h *PromoHandler) GetPromoCode(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	promo, err := h.adminUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPromoCodeResponse(promo))
}

// CreatePromoCode adds a promo code
func (h *PromoHandler) CreatePromoCode(c echo.Context) error {
	var req CreatePromoCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	promo, err := h.adminUC.Create(c.Request().Context(), &usecase.CreatePromoCodeInput{
		Code:         req.Code,
		DiscountType: entity.DiscountType(req.DiscountType),
		Value:        req.Value,
		MaxUses:      req.MaxUses,
		ExpiresAt:    req.ExpiresAt,
		IsActive:     req.IsActive,
		Description:  req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPromoCodeResponse(promo))
}

// UpdatePromoCode edits a promo code
func (h *PromoHandler) UpdatePromoCode(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdatePromoCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := &usecase.UpdatePromoCodeInput{
		Value:        req.Value,
		MaxUses:      req.MaxUses,
		ClearMaxUses: req.ClearMaxUses,
		ExpiresAt:    req.ExpiresAt,
		ClearExpiry:  req.ClearExpiry,
		IsActive:     req.IsActive,
		Description:  req.Description,
	}
	if req.DiscountType != nil {
		discountType := entity.DiscountType(*req.DiscountType)
		input.DiscountType = &discountType
	}

	promo, err := h.adminUC.Update(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPromoCodeResponse(promo))
}

// DeactivatePromoCode stops a promo code from being accepted
func (h *PromoHandler) DeactivatePromoCode(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	promo, err := h.adminUC.Deactivate(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPromoCodeResponse(promo))
}

// DeletePromoCode removes a promo code that no order references
func (h *PromoHandler) DeletePromoCode(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.adminUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
