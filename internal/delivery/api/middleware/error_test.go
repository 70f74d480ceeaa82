package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sarahkyoga/internal/delivery/api/response"
	domainerrors "sarahkyoga/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedDetails any
	}{
		{
			name:           "wrapped domain error",
			err:            errors.WithStack(domainerrors.ErrPromoExpired.WrapMessage("SPRING10")),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PROMO_EXPIRED",
		},
		{
			name:            "domain error with details",
			err:             domainerrors.ErrValidationFailed.WithDetails("email: required"),
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    "VALIDATION_FAILED",
			expectedDetails: "email: required",
		},
		{
			name:           "echo error",
			err:            echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   "HTTP_ERROR",
		},
		{
			name:           "unknown error",
			err:            errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tc.err, c)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.expectedCode, body.Error.Code)
			assert.Equal(t, tc.expectedDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}
