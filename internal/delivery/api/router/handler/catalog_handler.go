package handler

import (
	"net/http"

	"sarahkyoga/internal/delivery/api/response"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves product routes
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// ProductVariantRequest describes one variant of a product
type ProductVariantRequest struct {
	ID       *uuid.UUID      `json:"id,omitempty"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"gte=0"`
}

// ProductRequest is the body for creating or replacing a product
type ProductRequest struct {
	Name            string                  `json:"name" validate:"required,max=200"`
	Description     string                  `json:"description"`
	Price           decimal.Decimal         `json:"price"`
	DurationMinutes *int                    `json:"durationMinutes" validate:"omitempty,gt=0"`
	Variants        []ProductVariantRequest `json:"variants" validate:"dive"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	variants := make([]usecase.ProductVariantInput, len(r.Variants))
	for i, v := range r.Variants {
		variants[i] = usecase.ProductVariantInput{ID: v.ID, Name: v.Name, Price: v.Price, Quantity: v.Quantity}
	}

	return &usecase.ProductInput{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Variants:        variants,
	}
}

// ListProducts returns a page of products
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return err
	}

	products, err := h.catalogUC.List(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*ProductResponse, len(products))
	for i, product := range products {
		out[i] = newProductResponse(product)
	}

	return response.Page(c, out, limit, offset)
}

// GetProduct returns one product with its variants
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// CreateProduct adds a product
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product))
}

// UpdateProduct replaces a product and its variants
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogUC.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

// DeleteProduct removes a product
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
