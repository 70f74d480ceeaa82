package postgres

import (
	"context"
	"time"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// newsletterRepository implements the repository.NewsletterRepository interface.
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (repo *newsletterRepository) Create(ctx context.Context, newsletter *entity.Newsletter) error {
	newsletterM := fromNewsletterDomain(newsletter)
	if newsletterM.ID == uuid.Nil {
		newsletterM.ID = model.NewID()
	}

	if err := repo.db.WithContext(ctx).Create(newsletterM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create newsletter")
	}

	newsletter.ID = newsletterM.ID
	newsletter.CreatedAt = newsletterM.CreatedAt
	newsletter.UpdatedAt = newsletterM.UpdatedAt

	return nil
}

func (repo *newsletterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Newsletter, error) {
	var newsletterM model.NewsletterModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&newsletterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNewsletterNotFound
		}

		return nil, errors.Wrap(err, "failed to find newsletter")
	}

	return toNewsletterDomain(&newsletterM), nil
}

// Update writes every column, including is_draft=false and published_at.
func (repo *newsletterRepository) Update(ctx context.Context, newsletter *entity.Newsletter) error {
	newsletterM := fromNewsletterDomain(newsletter)
	newsletterM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.NewsletterModel{ID: newsletter.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(newsletterM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update newsletter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsletterNotFound
	}
	newsletter.UpdatedAt = newsletterM.UpdatedAt

	return nil
}

func (repo *newsletterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NewsletterModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete newsletter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNewsletterNotFound
	}

	return nil
}

func (repo *newsletterRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Newsletter, error) {
	var newsletterModels []*model.NewsletterModel
	if err := paginate(repo.db.WithContext(ctx), params).
		Order("created_at DESC").
		Find(&newsletterModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list newsletters")
	}

	newsletters := make([]*entity.Newsletter, 0, len(newsletterModels))
	for _, newsletterM := range newsletterModels {
		newsletters = append(newsletters, toNewsletterDomain(newsletterM))
	}

	return newsletters, nil
}

// subscriberRepository implements the repository.SubscriberRepository interface.
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository is the constructor for subscriberRepository.
func NewSubscriberRepository(db *gorm.DB) repository.SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (repo *subscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	var subscriberM model.SubscriberModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&subscriberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriberNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscriber")
	}

	return toSubscriberDomain(&subscriberM), nil
}

func (repo *subscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	subscriberM := fromSubscriberDomain(subscriber)
	if subscriberM.ID == uuid.Nil {
		subscriberM.ID = model.NewID()
	}

	if err := repo.db.WithContext(ctx).Create(subscriberM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscriber")
	}

	subscriber.ID = subscriberM.ID
	subscriber.CreatedAt = subscriberM.CreatedAt
	subscriber.UpdatedAt = subscriberM.UpdatedAt

	return nil
}

func (repo *subscriberRepository) Update(ctx context.Context, subscriber *entity.Subscriber) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriberModel{}).
		Where("id = ?", subscriber.ID).
		Updates(map[string]any{"is_active": subscriber.IsActive, "updated_at": now})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscriber")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriberNotFound
	}
	subscriber.UpdatedAt = now

	return nil
}

func (repo *subscriberRepository) ListActive(ctx context.Context) ([]*entity.Subscriber, error) {
	return repo.list(repo.db.WithContext(ctx).Where("is_active = ?", true))
}

func (repo *subscriberRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Subscriber, error) {
	return repo.list(paginate(repo.db.WithContext(ctx), params))
}

func (repo *subscriberRepository) list(query *gorm.DB) ([]*entity.Subscriber, error) {
	var subscriberModels []*model.SubscriberModel
	if err := query.Order("created_at ASC").Find(&subscriberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	subscribers := make([]*entity.Subscriber, 0, len(subscriberModels))
	for _, subscriberM := range subscriberModels {
		subscribers = append(subscribers, toSubscriberDomain(subscriberM))
	}

	return subscribers, nil
}

func (repo *subscriberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriberModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subscribers")
	}

	return count, nil
}

// --- Mapper Functions ---

func toNewsletterDomain(data *model.NewsletterModel) *entity.Newsletter {
	return &entity.Newsletter{
		ID:      data.ID,
		Title:   data.Title,
		Content: data.Content,
		Style: entity.NewsletterStyle{
			FontFamily:      data.Style.FontFamily,
			FontSize:        data.Style.FontSize,
			TextAlign:       data.Style.TextAlign,
			TextColor:       data.Style.TextColor,
			BackgroundColor: data.Style.BackgroundColor,
			AccentColor:     data.Style.AccentColor,
		},
		IsDraft:     data.IsDraft,
		PublishedAt: data.PublishedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromNewsletterDomain(data *entity.Newsletter) *model.NewsletterModel {
	return &model.NewsletterModel{
		ID:      data.ID,
		Title:   data.Title,
		Content: data.Content,
		Style: model.NewsletterStyleModel{
			FontFamily:      data.Style.FontFamily,
			FontSize:        data.Style.FontSize,
			TextAlign:       data.Style.TextAlign,
			TextColor:       data.Style.TextColor,
			BackgroundColor: data.Style.BackgroundColor,
			AccentColor:     data.Style.AccentColor,
		},
		IsDraft:     data.IsDraft,
		PublishedAt: data.PublishedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toSubscriberDomain(data *model.SubscriberModel) *entity.Subscriber {
	return &entity.Subscriber{
		ID:        data.ID,
		Email:     data.Email,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSubscriberDomain(data *entity.Subscriber) *model.SubscriberModel {
	return &model.SubscriberModel{
		ID:        data.ID,
		Email:     data.Email,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
