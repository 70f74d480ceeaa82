package impl

import (
	"context"
	"testing"
	"time"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	mockRepo "sarahkyoga/internal/mocks/repository"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workshopServiceFixtures struct {
	service      usecase.WorkshopUsecase
	txManager    *mockRepo.MockTransactionManager
	workshopRepo *mockRepo.MockWorkshopRepository
}

func createTestWorkshopService(t *testing.T) workshopServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	workshopRepo := mockRepo.NewMockWorkshopRepository(t)

	return workshopServiceFixtures{
		service:      NewWorkshopService(txManager, workshopRepo, newDiscardLogger()),
		txManager:    txManager,
		workshopRepo: workshopRepo,
	}
}

func workshopInput() *usecase.WorkshopInput {
	start := time.Date(2026, 9, 12, 14, 0, 0, 0, time.UTC)

	return &usecase.WorkshopInput{
		Title:    "Autumn Equinox Flow",
		Location: "Main studio",
		StartsAt: start,
		EndsAt:   start.Add(2 * time.Hour),
		Price:    decimal.NewFromInt(45),
		Capacity: 20,
	}
}

func TestWorkshopService_Create_DraftWithSnapshot(t *testing.T) {
	fx := createTestWorkshopService(t)
	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txRepo := mockRepo.NewMockWorkshopRepository(t)
		factory.EXPECT().NewWorkshopRepository().Return(txRepo)

		txRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(w *entity.Workshop) bool {
				return w.Slug == "autumn-equinox-flow" && w.Status == entity.WorkshopDraft && w.Version == 1
			})).
			Run(func(ctx context.Context, w *entity.Workshop) {
				w.ID = uuid.New()
			}).
			Return(nil)
		txRepo.EXPECT().
			CreateVersion(ctx, mock.MatchedBy(func(v *entity.WorkshopVersion) bool {
				return v.Version == 1 && v.Status == entity.WorkshopDraft && v.Snapshot.Title == "Autumn Equinox Flow"
			})).
			Return(nil)
	})

	workshop, err := fx.service.Create(ctx, workshopInput())

	require.NoError(t, err)
	assert.Equal(t, "autumn-equinox-flow", workshop.Slug)
	assert.False(t, workshop.IsPublished())
}

func TestWorkshopService_Create_SlugTaken(t *testing.T) {
	fx := createTestWorkshopService(t)
	ctx := context.Background()
	input := workshopInput()
	input.Slug = "Equinox"

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txRepo := mockRepo.NewMockWorkshopRepository(t)
		factory.EXPECT().NewWorkshopRepository().Return(txRepo)
		txRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(w *entity.Workshop) bool { return w.Slug == "equinox" })).
			Return(repository.ErrDuplicateSlug)
	})

	_, err := fx.service.Create(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrWorkshopSlugTaken))
}

func TestWorkshopService_Create_EndsBeforeStart(t *testing.T) {
	fx := createTestWorkshopService(t)
	input := workshopInput()
	input.EndsAt = input.StartsAt

	_, err := fx.service.Create(context.Background(), input)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestWorkshopService_Publish_BumpsVersion(t *testing.T) {
	fx := createTestWorkshopService(t)
	ctx := context.Background()
	current := &entity.Workshop{ID: uuid.New(), Title: "Flow", Slug: "flow", Status: entity.WorkshopDraft, Version: 3}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txRepo := mockRepo.NewMockWorkshopRepository(t)
		factory.EXPECT().NewWorkshopRepository().Return(txRepo)

		txRepo.EXPECT().FindByID(ctx, current.ID).Return(current, nil)
		txRepo.EXPECT().Update(ctx, current).Return(nil)
		txRepo.EXPECT().
			CreateVersion(ctx, mock.MatchedBy(func(v *entity.WorkshopVersion) bool {
				return v.WorkshopID == current.ID && v.Version == 4 && v.Status == entity.WorkshopPublished
			})).
			Return(nil)
	})

	workshop, err := fx.service.Publish(ctx, current.ID)

	require.NoError(t, err)
	assert.True(t, workshop.IsPublished())
	assert.Equal(t, 4, workshop.Version)
}

func TestWorkshopService_Update_NotFound(t *testing.T) {
	fx := createTestWorkshopService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txRepo := mockRepo.NewMockWorkshopRepository(t)
		factory.EXPECT().NewWorkshopRepository().Return(txRepo)
		txRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrWorkshopNotFound)
	})

	_, err := fx.service.Update(ctx, id, workshopInput())

	assert.True(t, errors.Is(err, domainerrors.ErrWorkshopNotFound))
}

func TestWorkshopService_GetPublished_HidesDrafts(t *testing.T) {
	fx := createTestWorkshopService(t)
	ctx := context.Background()

	fx.workshopRepo.EXPECT().
		FindBySlug(ctx, "flow").
		Return(&entity.Workshop{ID: uuid.New(), Slug: "flow", Status: entity.WorkshopDraft}, nil)

	_, err := fx.service.GetPublished(ctx, "flow")

	assert.True(t, errors.Is(err, domainerrors.ErrWorkshopNotFound))
}

func TestWorkshopService_ListPublished(t *testing.T) {
	fx := createTestWorkshopService(t)
	ctx := context.Background()

	fx.workshopRepo.EXPECT().List(ctx, true).Return([]*entity.Workshop{{Slug: "flow", Status: entity.WorkshopPublished}}, nil)

	workshops, err := fx.service.ListPublished(ctx)

	require.NoError(t, err)
	assert.Len(t, workshops, 1)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Autumn Equinox Flow":    "autumn-equinox-flow",
		"  Yin & Yang: Restore ": "yin-yang-restore",
		"--Already-Slugged--":    "already-slugged",
		"!!!":                    "",
	}

	for in, want := range tests {
		assert.Equal(t, want, slugify(in), in)
	}
}
