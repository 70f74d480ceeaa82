// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sarahkyoga/internal/delivery/api/middleware"
	"sarahkyoga/internal/delivery/api/router/handler"
	"sarahkyoga/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	CheckoutHandler   *handler.CheckoutHandler
	PromoHandler      *handler.PromoHandler
	OrderHandler      *handler.OrderHandler
	NewsletterHandler *handler.NewsletterHandler
	WorkshopHandler   *handler.WorkshopHandler
	BookingHandler    *handler.BookingHandler
	DashboardHandler  *handler.DashboardHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	checkoutHandler   *handler.CheckoutHandler
	promoHandler      *handler.PromoHandler
	orderHandler      *handler.OrderHandler
	newsletterHandler *handler.NewsletterHandler
	workshopHandler   *handler.WorkshopHandler
	bookingHandler    *handler.BookingHandler
	dashboardHandler  *handler.DashboardHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		checkoutHandler:   params.CheckoutHandler,
		promoHandler:      params.PromoHandler,
		orderHandler:      params.OrderHandler,
		newsletterHandler: params.NewsletterHandler,
		workshopHandler:   params.WorkshopHandler,
		bookingHandler:    params.BookingHandler,
		dashboardHandler:  params.DashboardHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/google", r.accountHandler.GoogleLogin)
		authGroup.POST("/password-reset", r.accountHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.accountHandler.ConfirmPasswordReset)
	}

	apiV1 := e.Group("/api/v1")

	// Public routes
	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/products/:id", r.catalogHandler.GetProduct)
	apiV1.GET("/workshops", r.workshopHandler.ListPublishedWorkshops)
	apiV1.GET("/workshops/:slug", r.workshopHandler.GetPublishedWorkshop)
	apiV1.POST("/newsletter/subscribe", r.newsletterHandler.Subscribe)
	apiV1.POST("/newsletter/unsubscribe", r.newsletterHandler.Unsubscribe)
	apiV1.GET("/booking/availability", r.bookingHandler.Availability)
	apiV1.POST("/booking", r.bookingHandler.Book)

	// Guests and signed-in users share the cart and checkout routes
	optionalAuth := r.authMiddleware.OptionalAuthenticate
	apiV1.GET("/cart", r.cartHandler.GetCart, optionalAuth)
	apiV1.POST("/cart/items", r.cartHandler.AddItem, optionalAuth)
	apiV1.DELETE("/cart/items/:id", r.cartHandler.RemoveItem, optionalAuth)
	apiV1.DELETE("/cart", r.cartHandler.ClearCart, optionalAuth)
	apiV1.POST("/checkout/payment-intent", r.checkoutHandler.CreatePaymentIntent, optionalAuth)
	apiV1.POST("/checkout/session", r.checkoutHandler.CreateCheckoutSession, optionalAuth)
	apiV1.POST("/checkout/confirm", r.checkoutHandler.Confirm, optionalAuth)
	apiV1.POST("/promo-codes/validate", r.promoHandler.ValidatePromoCode, optionalAuth)

	auth := r.authMiddleware.Authenticate
	apiV1.GET("/me", r.accountHandler.GetProfile, auth)
	apiV1.PUT("/me", r.accountHandler.UpdateProfile, auth)
	apiV1.GET("/orders", r.orderHandler.ListMyOrders, auth)
	apiV1.GET("/orders/:id/qr", r.orderHandler.CheckInCode, auth)

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/dashboard", r.dashboardHandler.Stats)

		adminGroup.GET("/users", r.accountHandler.ListUsers)
		adminGroup.GET("/users/:id", r.accountHandler.GetUser)
		adminGroup.PUT("/users/:id/role", r.accountHandler.UpdateUserRole)
		adminGroup.DELETE("/users/:id", r.accountHandler.DeleteUser)

		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)

		adminGroup.GET("/promo-codes", r.promoHandler.ListPromoCodes)
		adminGroup.POST("/promo-codes", r.promoHandler.CreatePromoCode)
		adminGroup.GET("/promo-codes/:id", r.promoHandler.GetPromoCode)
		adminGroup.PUT("/promo-codes/:id", r.promoHandler.UpdatePromoCode)
		adminGroup.POST("/promo-codes/:id/deactivate", r.promoHandler.DeactivatePromoCode)
		adminGroup.DELETE("/promo-codes/:id", r.promoHandler.DeletePromoCode)

		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		adminGroup.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
		adminGroup.GET("/orders/:id/qr", r.orderHandler.CheckInCode)

		adminGroup.GET("/newsletters", r.newsletterHandler.ListNewsletters)
		adminGroup.POST("/newsletters", r.newsletterHandler.CreateNewsletter)
		adminGroup.GET("/newsletters/:id", r.newsletterHandler.GetNewsletter)
		adminGroup.PUT("/newsletters/:id", r.newsletterHandler.UpdateNewsletter)
		adminGroup.DELETE("/newsletters/:id", r.newsletterHandler.DeleteNewsletter)
		adminGroup.POST("/newsletters/:id/publish", r.newsletterHandler.PublishNewsletter)
		adminGroup.POST("/newsletters/:id/test", r.newsletterHandler.SendTestNewsletter)
		adminGroup.GET("/subscribers", r.newsletterHandler.ListSubscribers)

		adminGroup.GET("/workshops", r.workshopHandler.ListWorkshops)
		adminGroup.POST("/workshops", r.workshopHandler.CreateWorkshop)
		adminGroup.GET("/workshops/:id", r.workshopHandler.GetWorkshop)
		adminGroup.PUT("/workshops/:id", r.workshopHandler.UpdateWorkshop)
		adminGroup.DELETE("/workshops/:id", r.workshopHandler.DeleteWorkshop)
		adminGroup.POST("/workshops/:id/publish", r.workshopHandler.PublishWorkshop)
		adminGroup.POST("/workshops/:id/unpublish", r.workshopHandler.UnpublishWorkshop)
		adminGroup.GET("/workshops/:id/versions", r.workshopHandler.ListWorkshopVersions)
	}
}
