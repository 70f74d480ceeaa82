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

// promoCodeRepository implements the repository.PromoCodeRepository interface.
type promoCodeRepository struct {
	db *gorm.DB
}

// NewPromoCodeRepository is the constructor for promoCodeRepository.
func NewPromoCodeRepository(db *gorm.DB) repository.PromoCodeRepository {
	return &promoCodeRepository{db: db}
}

func (repo *promoCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *promoCodeRepository) FindByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	return repo.findOne(ctx, "code = ?", code)
}

func (repo *promoCodeRepository) findOne(ctx context.Context, query string, arg any) (*entity.PromoCode, error) {
	var promoM model.PromoCodeModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&promoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPromoCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find promo code")
	}

	return toPromoCodeDomain(&promoM), nil
}

func (repo *promoCodeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check promo code")
	}

	return count > 0, nil
}

func (repo *promoCodeRepository) Create(ctx context.Context, promo *entity.PromoCode) error {
	promoM := fromPromoCodeDomain(promo)
	if promoM.ID == uuid.Nil {
		promoM.ID = model.NewID()
	}

	if err := repo.db.WithContext(ctx).Create(promoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePromoCode
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create promo code")
	}

	promo.ID = promoM.ID
	promo.CreatedAt = promoM.CreatedAt
	promo.UpdatedAt = promoM.UpdatedAt

	return nil
}

// Update saves the editable columns; used_count is only changed by IncrementUsage.
func (repo *promoCodeRepository) Update(ctx context.Context, promo *entity.PromoCode) error {
	promoM := fromPromoCodeDomain(promo)
	promoM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{ID: promo.ID}).
		Select("discount_type", "value", "max_uses", "expires_at", "is_active", "description", "updated_at").
		Updates(promoM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update promo code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeNotFound
	}
	promo.UpdatedAt = promoM.UpdatedAt

	return nil
}

func (repo *promoCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PromoCodeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete promo code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeNotFound
	}

	return nil
}

func (repo *promoCodeRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.PromoCode, error) {
	var promoModels []*model.PromoCodeModel
	if err := paginate(repo.db.WithContext(ctx), params).
		Order("created_at DESC").
		Find(&promoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promo codes")
	}

	promos := make([]*entity.PromoCode, 0, len(promoModels))
	for _, promoM := range promoModels {
		promos = append(promos, toPromoCodeDomain(promoM))
	}

	return promos, nil
}

// IncrementUsage runs used_count = used_count + 1 as one statement.
func (repo *promoCodeRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"used_count": gorm.Expr("used_count + ?", 1),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to redeem promo code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPromoCodeNotFound
	}

	return nil
}

func (repo *promoCodeRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PromoCodeModel{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count promo codes")
	}

	return count, nil
}

// --- Mapper Functions ---

func toPromoCodeDomain(data *model.PromoCodeModel) *entity.PromoCode {
	return &entity.PromoCode{
		ID:           data.ID,
		Code:         data.Code,
		DiscountType: entity.DiscountType(data.DiscountType),
		Value:        data.Value,
		MaxUses:      data.MaxUses,
		UsedCount:    data.UsedCount,
		ExpiresAt:    data.ExpiresAt,
		IsActive:     data.IsActive,
		Description:  data.Description,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromPromoCodeDomain(data *entity.PromoCode) *model.PromoCodeModel {
	return &model.PromoCodeModel{
		ID:           data.ID,
		Code:         data.Code,
		DiscountType: string(data.DiscountType),
		Value:        data.Value,
		MaxUses:      data.MaxUses,
		UsedCount:    data.UsedCount,
		ExpiresAt:    data.ExpiresAt,
		IsActive:     data.IsActive,
		Description:  data.Description,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
