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

func setupCartRoutes(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(CartHandlerParams{CartUC: cartUC})
	auth := newTestAuth(t, userID)

	e := newTestEcho()
	e.GET("/api/v1/cart", h.GetCart, auth.OptionalAuthenticate)
	e.POST("/api/v1/cart/items", h.AddItem, auth.OptionalAuthenticate)
	e.DELETE("/api/v1/cart/items/:id", h.RemoveItem, auth.OptionalAuthenticate)
	e.DELETE("/api/v1/cart", h.ClearCart, auth.OptionalAuthenticate)

	return e, cartUC
}

func TestCartHandler_GetCart_GuestReceivesHandle(t *testing.T) {
	e, cartUC := setupCartRoutes(t, uuid.New())

	product := &entity.Product{ID: uuid.New(), Name: "Drop-in class", Price: decimal.NewFromInt(25)}
	cart := &entity.Cart{
		ID:          uuid.New(),
		GuestHandle: "guest-handle-1",
		Items: []entity.CartItem{
			{ID: uuid.New(), ProductID: product.ID, Product: product, Quantity: 2},
		},
	}
	cartUC.EXPECT().GetCart(mock.Anything, usecase.CartOwner{}).
		Return(&usecase.ResolvedCart{Cart: cart, Created: true}, nil).Once()

	rec := serve(e, newJSONRequest(t, http.MethodGet, "/api/v1/cart", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guest-handle-1", rec.Header().Get(constants.HeaderCartID))

	body := decodeData[CartResponse](t, rec)
	assert.Equal(t, cart.ID, body.ID)
	assert.True(t, decimal.NewFromInt(50).Equal(body.Subtotal))
	if assert.Len(t, body.Items, 1) {
		assert.Equal(t, "Drop-in class", body.Items[0].ProductName)
	}
}

func TestCartHandler_AddItem_SignedInUserUsesAccountCart(t *testing.T) {
	userID := uuid.New()
	e, cartUC := setupCartRoutes(t, userID)

	productID := uuid.New()
	cartUC.EXPECT().AddItem(mock.Anything,
		mock.MatchedBy(func(owner usecase.CartOwner) bool {
			return owner.UserID != nil && *owner.UserID == userID && owner.GuestHandle == ""
		}),
		&usecase.AddCartItemInput{ProductID: productID, Quantity: 1},
	).Return(&usecase.ResolvedCart{Cart: &entity.Cart{ID: uuid.New(), UserID: &userID}}, nil).Once()

	req := newJSONRequest(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"productId": productID,
		"quantity":  1,
	})
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testUserToken)
	req.Header.Set(constants.HeaderCartID, "ignored-handle")

	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(constants.HeaderCartID))
}

func TestCartHandler_AddItem_InvalidTokenFallsBackToGuest(t *testing.T) {
	e, cartUC := setupCartRoutes(t, uuid.New())

	productID := uuid.New()
	cartUC.EXPECT().AddItem(mock.Anything, usecase.CartOwner{GuestHandle: "guest-handle-2"}, mock.Anything).
		Return(&usecase.ResolvedCart{Cart: &entity.Cart{ID: uuid.New(), GuestHandle: "guest-handle-2"}}, nil).Once()

	req := newJSONRequest(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"productId": productID,
		"quantity":  3,
	})
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	req.Header.Set(constants.HeaderCartID, "guest-handle-2")

	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guest-handle-2", rec.Header().Get(constants.HeaderCartID))
}

func TestCartHandler_AddItem_RejectsInvalidQuantity(t *testing.T) {
	e, _ := setupCartRoutes(t, uuid.New())

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"productId": uuid.New(),
		"quantity":  0,
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Equal(t, "quantity: required", errInfo.Details)
}

func TestCartHandler_RemoveItem_UnknownGuestCart(t *testing.T) {
	e, cartUC := setupCartRoutes(t, uuid.New())

	itemID := uuid.New()
	cartUC.EXPECT().RemoveItem(mock.Anything, usecase.CartOwner{GuestHandle: "missing"}, itemID).
		Return(nil, domainerrors.ErrCartNotFound.WrapMessage("no cart for this request")).Once()

	req := newJSONRequest(t, http.MethodDelete, "/api/v1/cart/items/"+itemID.String(), nil)
	req.Header.Set(constants.HeaderCartID, "missing")

	rec := serve(e, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CART_NOT_FOUND", decodeError(t, rec).Code)
}

func TestCartHandler_RemoveItem_InvalidID(t *testing.T) {
	e, _ := setupCartRoutes(t, uuid.New())

	rec := serve(e, newJSONRequest(t, http.MethodDelete, "/api/v1/cart/items/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", decodeError(t, rec).Details)
}

func TestCartHandler_ClearCart(t *testing.T) {
	e, cartUC := setupCartRoutes(t, uuid.New())

	cartUC.EXPECT().Clear(mock.Anything, usecase.CartOwner{GuestHandle: "guest-handle-3"}).Return(nil).Once()

	req := newJSONRequest(t, http.MethodDelete, "/api/v1/cart", nil)
	req.Header.Set(constants.HeaderCartID, "guest-handle-3")

	rec := serve(e, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
