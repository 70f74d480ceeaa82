package impl

import (
	"context"
	"testing"

	"sarahkyoga/internal/domain/entity"
	mockRepo "sarahkyoga/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDashboardParams(t *testing.T) (DashboardServiceParams, *mockRepo.MockUserRepository, *mockRepo.MockOrderRepository, *mockRepo.MockPromoCodeRepository, *mockRepo.MockSubscriberRepository, *mockRepo.MockWorkshopRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	promoRepo := mockRepo.NewMockPromoCodeRepository(t)
	subscriberRepo := mockRepo.NewMockSubscriberRepository(t)
	workshopRepo := mockRepo.NewMockWorkshopRepository(t)

	return DashboardServiceParams{
		UserRepo:       userRepo,
		OrderRepo:      orderRepo,
		PromoRepo:      promoRepo,
		SubscriberRepo: subscriberRepo,
		WorkshopRepo:   workshopRepo,
	}, userRepo, orderRepo, promoRepo, subscriberRepo, workshopRepo
}

func TestDashboardService_Stats(t *testing.T) {
	params, userRepo, orderRepo, promoRepo, subscriberRepo, workshopRepo := createTestDashboardParams(t)
	srv := NewDashboardService(params)
	ctx := context.Background()

	userRepo.EXPECT().Count(ctx).Return(int64(12), nil)
	orderRepo.EXPECT().Stats(ctx).Return(&entity.OrderStats{Count: 5, Revenue: decimal.RequireFromString("412.5")}, nil)
	promoRepo.EXPECT().CountActive(ctx).Return(int64(2), nil)
	subscriberRepo.EXPECT().CountActive(ctx).Return(int64(40), nil)
	workshopRepo.EXPECT().CountPublished(ctx).Return(int64(3), nil)

	stats, err := srv.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &entity.DashboardStats{
		Users:              12,
		Orders:             5,
		Revenue:            "412.50",
		ActivePromoCodes:   2,
		ActiveSubscribers:  40,
		PublishedWorkshops: 3,
	}, stats)
}

func TestDashboardService_Stats_Error(t *testing.T) {
	params, userRepo, _, _, _, _ := createTestDashboardParams(t)
	srv := NewDashboardService(params)
	ctx := context.Background()

	userRepo.EXPECT().Count(ctx).Return(int64(0), errors.New("db down"))

	_, err := srv.Stats(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count users")
}
