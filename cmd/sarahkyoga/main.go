package main

import (
	"context"
	"log/slog"
	"os"

	"sarahkyoga/config"
	"sarahkyoga/internal/delivery"
	"sarahkyoga/internal/delivery/api"
	"sarahkyoga/internal/delivery/api/middleware"
	"sarahkyoga/internal/delivery/api/router/handler"
	"sarahkyoga/internal/domain/service"
	"sarahkyoga/internal/infra/auth"
	"sarahkyoga/internal/infra/auth/google"
	"sarahkyoga/internal/infra/calendar"
	"sarahkyoga/internal/infra/email"
	logs "sarahkyoga/internal/infra/log"
	"sarahkyoga/internal/infra/notification"
	"sarahkyoga/internal/infra/payment"
	"sarahkyoga/internal/infra/persistence/postgres"
	"sarahkyoga/internal/infra/pubsub"
	"sarahkyoga/internal/infra/qrcode"
	"sarahkyoga/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewPromoCodeRepository,
			postgres.NewOrderRepository,
			postgres.NewNewsletterRepository,
			postgres.NewSubscriberRepository,
			postgres.NewWorkshopRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			payment.NewStripeGateway,
			email.NewEmailSender,
			pubsub.NewEventPublisher,
			qrcode.NewFromConfig,
			newCalendarService,
			newFirebaseService,
		),
	)
}

// newCalendarService returns nil when booking is not backed by a calendar.
func newCalendarService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.CalendarService, error) {
	if cfg.Calendar == nil || !cfg.Calendar.Enabled {
		logger.Info("Calendar not configured, booking disabled")

		return nil, nil
	}

	svc, err := calendar.NewGoogleCalendar(ctx, cfg.Calendar, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calendar service")
	}

	return svc, nil
}

// newFirebaseService returns nil when admin push notifications are not configured.
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewUserAdminService,
			impl.NewCatalogService,
			impl.NewCartResolver,
			impl.NewCartService,
			impl.NewPromoEvaluator,
			impl.NewPromoAdminService,
			impl.NewOrderFinalizer,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewNewsletterService,
			impl.NewNewsletterDeliveryService,
			impl.NewWorkshopService,
			impl.NewBookingService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewPromoHandler,
			handler.NewOrderHandler,
			handler.NewNewsletterHandler,
			handler.NewWorkshopHandler,
			handler.NewBookingHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
