package impl

import (
	"context"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	userRepo       repository.UserRepository
	orderRepo      repository.OrderRepository
	promoRepo      repository.PromoCodeRepository
	subscriberRepo repository.SubscriberRepository
	workshopRepo   repository.WorkshopRepository
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	OrderRepo      repository.OrderRepository
	PromoRepo      repository.PromoCodeRepository
	SubscriberRepo repository.SubscriberRepository
	WorkshopRepo   repository.WorkshopRepository
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:       params.UserRepo,
		orderRepo:      params.OrderRepo,
		promoRepo:      params.PromoRepo,
		subscriberRepo: params.SubscriberRepo,
		workshopRepo:   params.WorkshopRepo,
	}
}

func (srv *dashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	orderStats, err := srv.orderRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}

	activePromos, err := srv.promoRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count promo codes")
	}

	activeSubscribers, err := srv.subscriberRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}

	publishedWorkshops, err := srv.workshopRepo.CountPublished(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count workshops")
	}

	return &entity.DashboardStats{
		Users:              users,
		Orders:             orderStats.Count,
		Revenue:            orderStats.Revenue.StringFixed(2),
		ActivePromoCodes:   activePromos,
		ActiveSubscribers:  activeSubscribers,
		PublishedWorkshops: publishedWorkshops,
	}, nil
}
