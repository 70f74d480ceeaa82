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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Preload("Variants").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Product, error) {
	var productModels []*model.ProductModel
	if err := paginate(repo.db.WithContext(ctx), params).
		Preload("Variants").
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create inserts the product together with its variants.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	*product = *toProductDomain(productM)

	return nil
}

// Update saves the product columns and syncs the variant set in place.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ProductModel{ID: productM.ID}).
			Select("name", "description", "price", "duration_minutes", "updated_at").
			Updates(productM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrProductNotFound
		}

		return syncVariants(tx, productM.ID, productM.Variants)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	*product = *toProductDomain(productM)

	return nil
}

// syncVariants updates variants that already exist, inserts new ones and
// deletes the rest. Cart items pointing at a deleted variant are dropped.
func syncVariants(tx *gorm.DB, productID uuid.UUID, variants []model.ProductVariantModel) error {
	var existingIDs []uuid.UUID
	if err := tx.Model(&model.ProductVariantModel{}).
		Where("product_id = ?", productID).
		Pluck("id", &existingIDs).Error; err != nil {
		return err
	}

	stale := make(map[uuid.UUID]bool, len(existingIDs))
	for _, id := range existingIDs {
		stale[id] = true
	}

	for i := range variants {
		variantM := &variants[i]
		if stale[variantM.ID] {
			delete(stale, variantM.ID)
			if err := tx.Model(&model.ProductVariantModel{ID: variantM.ID}).
				Select("name", "price", "quantity").
				Updates(variantM).Error; err != nil {
				return err
			}

			continue
		}
		if err := tx.Create(variantM).Error; err != nil {
			return err
		}
	}

	if len(stale) == 0 {
		return nil
	}

	removed := make([]uuid.UUID, 0, len(stale))
	for id := range stale {
		removed = append(removed, id)
	}
	if err := tx.Where("variant_id IN ?", removed).Delete(&model.CartItemModel{}).Error; err != nil {
		return err
	}

	return tx.Where("id IN ?", removed).Delete(&model.ProductVariantModel{}).Error
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		DurationMinutes: data.DurationMinutes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		Variants:        make([]entity.ProductVariant, 0, len(data.Variants)),
	}
	for _, v := range data.Variants {
		product.Variants = append(product.Variants, entity.ProductVariant{
			ID:        v.ID,
			ProductID: v.ProductID,
			Name:      v.Name,
			Price:     v.Price,
			Quantity:  v.Quantity,
		})
	}

	return product
}

// fromProductDomain assigns IDs to the product and variants that have none.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	productM := &model.ProductModel{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		DurationMinutes: data.DurationMinutes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if productM.ID == uuid.Nil {
		productM.ID = model.NewID()
	}

	for _, v := range data.Variants {
		variantM := model.ProductVariantModel{
			ID:        v.ID,
			ProductID: productM.ID,
			Name:      v.Name,
			Price:     v.Price,
			Quantity:  v.Quantity,
		}
		if variantM.ID == uuid.Nil {
			variantM.ID = model.NewID()
		}
		productM.Variants = append(productM.Variants, variantM)
	}

	return productM
}
