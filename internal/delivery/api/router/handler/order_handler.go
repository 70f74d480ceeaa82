package handler

import (
	"net/http"

	"sarahkyoga/internal/delivery/api/middleware"
	"sarahkyoga/internal/delivery/api/response"
	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves order history, administration and check-in codes
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// UpdateOrderStatusRequest moves a pending order to its final state
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending completed cancelled"`
}

// ListMyOrders returns the signed-in user's orders
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListMine(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponses(orders))
}

// CheckInCode renders the order number as a PNG QR code
func (h *OrderHandler) CheckInCode(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	code, err := h.orderUC.CheckInCode(c.Request().Context(), userID, middleware.IsAdmin(c), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("X-Order-Number", code.OrderNumber)

	return c.Blob(http.StatusOK, "image/png", code.PNG)
}

// ListOrders returns a page of all orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListAll(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, newOrderResponses(orders), limit, offset)
}

// GetOrder returns one order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// UpdateOrderStatus applies a status transition
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}
