package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/service"
	mockService "sarahkyoga/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name           string
		authorization  string
		setupMock      func(tokenSvc *mockService.MockTokenService)
		expectedStatus int
		expectUser     bool
	}{
		{
			name:           "missing header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer token",
			authorization:  "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "invalid token",
			authorization: "Bearer bad",
			setupMock: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("bad").Return(nil, domainerrors.ErrUnauthorized).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "valid token",
			authorization: "Bearer good",
			setupMock: func(tokenSvc *mockService.MockTokenService) {
				tokenSvc.EXPECT().ValidateToken("good").
					Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectUser:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tc.setupMock != nil {
				tc.setupMock(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)
			c, rec := newAuthContext(tc.authorization)

			err := m.Authenticate(okHandler)(c)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, rec.Code)
			gotID, ok := GetUserID(c)
			assert.Equal(t, tc.expectUser, ok)
			if tc.expectUser {
				assert.Equal(t, userID, gotID)
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, domainerrors.ErrUnauthorized).Once()
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext("")
	assert.NoError(t, m.OptionalAuthenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newAuthContext("Bearer expired")
	assert.NoError(t, m.OptionalAuthenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))
	requireAdmin := m.RequireRole(entity.RoleAdmin)

	c, rec := newAuthContext("")
	assert.NoError(t, requireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newAuthContext("")
	setClaims(c, &service.Claims{UserID: uuid.New(), Roles: []string{"user"}})
	assert.NoError(t, requireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, IsAdmin(c))

	c, rec = newAuthContext("")
	setClaims(c, &service.Claims{UserID: uuid.New(), Roles: []string{"user", "admin"}})
	assert.NoError(t, requireAdmin(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, IsAdmin(c))
}
