package handler

import (
	"net/http"
	"time"

	"sarahkyoga/internal/delivery/api/response"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
}

// BookingHandler serves calendar availability and private session booking
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{bookingUC: params.BookingUC}
}

// BookingRequest asks for a private session in a slot
type BookingRequest struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required"`
	Name  string    `json:"name" validate:"required,max=120"`
	Email string    `json:"email" validate:"required,email"`
	Phone string    `json:"phone" validate:"max=40"`
	Notes string    `json:"notes" validate:"max=2000"`
}

// Availability returns the busy periods between the from and to query parameters (RFC 3339).
func (h *BookingHandler) Availability(c echo.Context) error {
	var window entity.TimeRange
	if err := echo.QueryParamsBinder(c).
		MustTime("from", &window.Start, time.RFC3339).
		MustTime("to", &window.End, time.RFC3339).
		BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("from and to must be RFC 3339 timestamps")
	}

	busy, err := h.bookingUC.Availability(c.Request().Context(), window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"from": window.Start,
		"to":   window.End,
		"busy": busy,
	})
}

// Book places a private session on the calendar
func (h *BookingHandler) Book(c echo.Context) error {
	var req BookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	booking, err := h.bookingUC.Book(c.Request().Context(), &usecase.BookingInput{
		Slot:  entity.TimeRange{Start: req.Start, End: req.End},
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &BookingResponse{
		Slot:    booking.Slot,
		Name:    booking.Name,
		Email:   booking.Email,
		EventID: booking.EventID,
		Link:    booking.Link,
	})
}
