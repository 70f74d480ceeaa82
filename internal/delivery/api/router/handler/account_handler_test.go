package handler

import (
	"net/http"
	"testing"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	mockUsecase "sarahkyoga/internal/mocks/usecase"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupAccountRoutes(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockAccountUsecase, *mockUsecase.MockUserAdminUsecase) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)
	userAdminUC := mockUsecase.NewMockUserAdminUsecase(t)
	h := NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, UserAdminUC: userAdminUC, Logger: newDiscardLogger()})
	auth := newTestAuth(t, userID)

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/google", h.GoogleLogin)
	e.POST("/auth/password-reset", h.RequestPasswordReset)
	e.POST("/auth/password-reset/confirm", h.ConfirmPasswordReset)
	e.GET("/api/v1/me", h.GetProfile, auth.Authenticate)
	e.PUT("/api/v1/admin/users/:id/role", h.UpdateUserRole)
	e.DELETE("/api/v1/admin/users/:id", h.DeleteUser)

	return e, accountUC, userAdminUC
}

func TestAccountHandler_Register(t *testing.T) {
	e, accountUC, _ := setupAccountRoutes(t, uuid.New())

	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana Lima", Role: entity.RoleUser, PasswordHash: "hash"}
	accountUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Name:     "Ana Lima",
		Email:    "Ana@Example.com",
		Password: "long-enough-password",
	}).Return(&usecase.AuthOutput{AccessToken: "jwt-token", User: user}, nil).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/register", map[string]any{
		"name":     "Ana Lima",
		"email":    "Ana@Example.com",
		"password": "long-enough-password",
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeData[AuthResponse](t, rec)
	assert.Equal(t, "jwt-token", body.AccessToken)
	assert.Equal(t, "ana@example.com", body.User.Email)
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestAccountHandler_Register_DuplicateEmail(t *testing.T) {
	e, accountUC, _ := setupAccountRoutes(t, uuid.New())

	accountUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/register", map[string]any{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "long-enough-password",
	}))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decodeError(t, rec).Code)
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	e, accountUC, _ := setupAccountRoutes(t, uuid.New())

	accountUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/login", map[string]any{
		"email":    "ana@example.com",
		"password": "wrong",
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", errInfo.Code)
	assert.Nil(t, errInfo.Details)
}

func TestAccountHandler_GoogleLogin(t *testing.T) {
	e, accountUC, _ := setupAccountRoutes(t, uuid.New())

	accountUC.EXPECT().GoogleLogin(mock.Anything, "google-id-token").
		Return(&usecase.AuthOutput{AccessToken: "jwt-token", User: &entity.User{ID: uuid.New(), Role: entity.RoleUser}}, nil).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/google", map[string]any{"idToken": "google-id-token"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_PasswordReset(t *testing.T) {
	e, accountUC, _ := setupAccountRoutes(t, uuid.New())

	accountUC.EXPECT().RequestPasswordReset(mock.Anything, "nobody@example.com").Return(nil).Once()
	accountUC.EXPECT().ConfirmPasswordReset(mock.Anything, &usecase.ConfirmPasswordResetInput{
		Token:       "stale",
		NewPassword: "another-password",
	}).Return(domainerrors.ErrResetTokenInvalid).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/auth/password-reset", map[string]any{"email": "nobody@example.com"}))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, newJSONRequest(t, http.MethodPost, "/auth/password-reset/confirm", map[string]any{
		"token":       "stale",
		"newPassword": "another-password",
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestAccountHandler_GetProfile(t *testing.T) {
	userID := uuid.New()
	e, accountUC, _ := setupAccountRoutes(t, userID)

	accountUC.EXPECT().GetProfile(mock.Anything, userID).
		Return(&entity.User{ID: userID, Email: "ana@example.com", Name: "Ana", Role: entity.RoleUser}, nil).Once()

	req := newJSONRequest(t, http.MethodGet, "/api/v1/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testUserToken)

	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, decodeData[UserResponse](t, rec).ID)
}

func TestAccountHandler_AdminUserOperations(t *testing.T) {
	e, _, userAdminUC := setupAccountRoutes(t, uuid.New())

	id := uuid.New()
	userAdminUC.EXPECT().UpdateRole(mock.Anything, id, entity.RoleAdmin).
		Return(&entity.User{ID: id, Role: entity.RoleAdmin}, nil).Once()
	userAdminUC.EXPECT().Delete(mock.Anything, id).Return(domainerrors.ErrUserHasOrders).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPut, "/api/v1/admin/users/"+id.String()+"/role", map[string]any{"role": "admin"}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RoleAdmin, decodeData[UserResponse](t, rec).Role)

	rec = serve(e, newJSONRequest(t, http.MethodPut, "/api/v1/admin/users/"+id.String()+"/role", map[string]any{"role": "owner"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(e, newJSONRequest(t, http.MethodDelete, "/api/v1/admin/users/"+id.String(), nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
