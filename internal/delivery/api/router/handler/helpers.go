package handler

import (
	"net/http"

	"sarahkyoga/internal/delivery/api/middleware"
	"sarahkyoga/internal/delivery/api/response"
	"sarahkyoga/internal/delivery/api/validator"
	deliverycontext "sarahkyoga/internal/delivery/context"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// HealthCheck reports that the API process is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		details := validator.Describe(err)
		if details == "" {
			details = err.Error()
		}

		return domainerrors.ErrValidationFailed.WithDetails(details)
	}

	return nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// pagination reads limit and offset query parameters, clamping limit to maxPageSize.
func pagination(c echo.Context) (limit, offset int, err error) {
	limit = defaultPageSize
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return 0, 0, domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers")
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}

// cartOwner identifies the cart for the request: the signed-in user, else the guest handle header.
func cartOwner(c echo.Context) usecase.CartOwner {
	if userID, ok := middleware.GetUserID(c); ok {
		return usecase.CartOwner{UserID: &userID}
	}

	return usecase.CartOwner{GuestHandle: deliverycontext.GetCartHandle(c)}
}

// requireUserID returns the authenticated user or ErrUnauthorized.
func requireUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}
