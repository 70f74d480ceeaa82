package handler

import (
	"net/http"

	"sarahkyoga/internal/delivery/api/response"
	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler serves cart routes for signed-in users and guests
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{cartUC: params.CartUC}
}

// AddCartItemRequest represents the request body for adding a cart line
type AddCartItemRequest struct {
	ProductID uuid.UUID  `json:"productId" validate:"required"`
	VariantID *uuid.UUID `json:"variantId"`
	Quantity  int        `json:"quantity" validate:"required,gte=1"`
}

// respondCart writes the cart and echoes the guest handle so the client can keep using it.
func respondCart(c echo.Context, status int, resolved *usecase.ResolvedCart) error {
	if resolved.Cart.IsGuest() {
		deliverycontext.SetCartHandle(c, resolved.Cart.GuestHandle)
	}

	return response.Success(c, status, newCartResponse(resolved.Cart))
}

// GetCart returns the caller's cart, creating an empty one on first use
func (h *CartHandler) GetCart(c echo.Context) error {
	resolved, err := h.cartUC.GetCart(c.Request().Context(), cartOwner(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return respondCart(c, http.StatusOK, resolved)
}

// AddItem appends a line to the caller's cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resolved, err := h.cartUC.AddItem(c.Request().Context(), cartOwner(c), &usecase.AddCartItemInput{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if resolved.Created {
		status = http.StatusCreated
	}

	return respondCart(c, status, resolved)
}

// RemoveItem deletes one line from the caller's cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resolved, err := h.cartUC.RemoveItem(c.Request().Context(), cartOwner(c), itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return respondCart(c, http.StatusOK, resolved)
}

// ClearCart empties the caller's cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	if err := h.cartUC.Clear(c.Request().Context(), cartOwner(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
