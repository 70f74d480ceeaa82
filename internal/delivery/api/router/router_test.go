package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sarahkyoga/internal/delivery/api/middleware"
	"sarahkyoga/internal/delivery/api/router/handler"
	"sarahkyoga/internal/delivery/api/validator"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/service"
	mockService "sarahkyoga/internal/mocks/service"
	mockUsecase "sarahkyoga/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerMocks struct {
	dashboardUC *mockUsecase.MockDashboardUsecase
	catalogUC   *mockUsecase.MockCatalogUsecase
}

func newTestRouter(t *testing.T) (*echo.Echo, *routerMocks) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("user-token").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{entity.RoleUser.String()}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken("admin-token").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{entity.RoleAdmin.String()}}, nil).Maybe()

	mocks := &routerMocks{
		dashboardUC: mockUsecase.NewMockDashboardUsecase(t),
		catalogUC:   mockUsecase.NewMockCatalogUsecase(t),
	}

	r := NewRouter(RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{
			AccountUC:   mockUsecase.NewMockAccountUsecase(t),
			UserAdminUC: mockUsecase.NewMockUserAdminUsecase(t),
			Logger:      logger,
		}),
		CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: mocks.catalogUC}),
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: mockUsecase.NewMockCartUsecase(t)}),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: mockUsecase.NewMockCheckoutUsecase(t), Logger: logger}),
		PromoHandler: handler.NewPromoHandler(handler.PromoHandlerParams{
			Evaluator:    mockUsecase.NewMockPromoEvaluator(t),
			AdminUC:      mockUsecase.NewMockPromoAdminUsecase(t),
			CartResolver: mockUsecase.NewMockCartResolver(t),
		}),
		OrderHandler:      handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUsecase.NewMockOrderUsecase(t)}),
		NewsletterHandler: handler.NewNewsletterHandler(handler.NewsletterHandlerParams{NewsletterUC: mockUsecase.NewMockNewsletterUsecase(t)}),
		WorkshopHandler:   handler.NewWorkshopHandler(handler.WorkshopHandlerParams{WorkshopUC: mockUsecase.NewMockWorkshopUsecase(t)}),
		BookingHandler:    handler.NewBookingHandler(handler.BookingHandlerParams{BookingUC: mockUsecase.NewMockBookingUsecase(t)}),
		DashboardHandler:  handler.NewDashboardHandler(handler.DashboardHandlerParams{DashboardUC: mocks.dashboardUC}),
		AuthMiddleware:    middleware.NewAuthMiddleware(tokenSvc),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)

	return e, mocks
}

func doRequest(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_HealthCheck(t *testing.T) {
	e, _ := newTestRouter(t)

	rec := doRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	e, mocks := newTestRouter(t)

	mocks.dashboardUC.EXPECT().Stats(mock.Anything).Return(&entity.DashboardStats{Users: 4, Revenue: "120.00"}, nil).Once()

	assert.Equal(t, http.StatusUnauthorized, doRequest(e, http.MethodGet, "/api/v1/admin/dashboard", "").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(e, http.MethodGet, "/api/v1/admin/dashboard", "user-token").Code)

	rec := doRequest(e, http.MethodGet, "/api/v1/admin/dashboard", "admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"revenue":"120.00"`)
}

func TestRouter_PublicCatalogNeedsNoToken(t *testing.T) {
	e, mocks := newTestRouter(t)

	productID := uuid.New()
	mocks.catalogUC.EXPECT().Get(mock.Anything, productID).Return(nil, domainerrors.ErrProductNotFound).Once()

	rec := doRequest(e, http.MethodGet, "/api/v1/products/"+productID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestRouter_ProfileRequiresToken(t *testing.T) {
	e, _ := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doRequest(e, http.MethodGet, "/api/v1/me", "").Code)
}
