package postgres

import (
	"context"
	"encoding/json"
	"time"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workshopRepository implements the repository.WorkshopRepository interface.
type workshopRepository struct {
	db *gorm.DB
}

// NewWorkshopRepository is the constructor for workshopRepository.
func NewWorkshopRepository(db *gorm.DB) repository.WorkshopRepository {
	return &workshopRepository{db: db}
}

func (repo *workshopRepository) Create(ctx context.Context, workshop *entity.Workshop) error {
	workshopM := fromWorkshopDomain(workshop)
	if workshopM.ID == uuid.Nil {
		workshopM.ID = model.NewID()
	}

	if err := repo.db.WithContext(ctx).Create(workshopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workshop")
	}

	*workshop = *toWorkshopDomain(workshopM)

	return nil
}

func (repo *workshopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *workshopRepository) FindBySlug(ctx context.Context, slug string) (*entity.Workshop, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *workshopRepository) findOne(ctx context.Context, query string, arg any) (*entity.Workshop, error) {
	var workshopM model.WorkshopModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&workshopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkshopNotFound
		}

		return nil, errors.Wrap(err, "failed to find workshop")
	}

	return toWorkshopDomain(&workshopM), nil
}

func (repo *workshopRepository) Update(ctx context.Context, workshop *entity.Workshop) error {
	workshopM := fromWorkshopDomain(workshop)
	workshopM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.WorkshopModel{ID: workshop.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(workshopM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSlug
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update workshop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkshopNotFound
	}
	workshop.UpdatedAt = workshopM.UpdatedAt

	return nil
}

// Delete removes the workshop together with its version history.
func (repo *workshopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workshop_id = ?", id).Delete(&model.WorkshopVersionModel{}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete workshop versions")
		}

		result := tx.Where("id = ?", id).Delete(&model.WorkshopModel{})
		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete workshop")
		}
		if result.RowsAffected == 0 {
			return repository.ErrWorkshopNotFound
		}

		return nil
	})
}

func (repo *workshopRepository) List(ctx context.Context, publishedOnly bool) ([]*entity.Workshop, error) {
	query := repo.db.WithContext(ctx)
	if publishedOnly {
		query = query.Where("status = ?", string(entity.WorkshopPublished))
	}

	var workshopModels []*model.WorkshopModel
	if err := query.Order("starts_at ASC").Find(&workshopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workshops")
	}

	workshops := make([]*entity.Workshop, 0, len(workshopModels))
	for _, workshopM := range workshopModels {
		workshops = append(workshops, toWorkshopDomain(workshopM))
	}

	return workshops, nil
}

func (repo *workshopRepository) CreateVersion(ctx context.Context, version *entity.WorkshopVersion) error {
	snapshot, err := json.Marshal(version.Snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to encode workshop snapshot")
	}

	versionM := &model.WorkshopVersionModel{
		ID:         version.ID,
		WorkshopID: version.WorkshopID,
		Version:    version.Version,
		Status:     string(version.Status),
		Snapshot:   string(snapshot),
		CreatedAt:  version.CreatedAt,
	}
	if versionM.ID == uuid.Nil {
		versionM.ID = model.NewID()
	}

	if err := repo.db.WithContext(ctx).Create(versionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create workshop version")
	}

	version.ID = versionM.ID
	version.CreatedAt = versionM.CreatedAt

	return nil
}

// ListVersions returns the history newest first.
func (repo *workshopRepository) ListVersions(ctx context.Context, workshopID uuid.UUID) ([]*entity.WorkshopVersion, error) {
	var versionModels []*model.WorkshopVersionModel
	if err := repo.db.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("version DESC").
		Find(&versionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workshop versions")
	}

	versions := make([]*entity.WorkshopVersion, 0, len(versionModels))
	for _, versionM := range versionModels {
		version := &entity.WorkshopVersion{
			ID:         versionM.ID,
			WorkshopID: versionM.WorkshopID,
			Version:    versionM.Version,
			Status:     entity.WorkshopStatus(versionM.Status),
			CreatedAt:  versionM.CreatedAt,
		}
		if err := json.Unmarshal([]byte(versionM.Snapshot), &version.Snapshot); err != nil {
			return nil, errors.Wrapf(err, "failed to decode snapshot of workshop version %d", versionM.Version)
		}
		versions = append(versions, version)
	}

	return versions, nil
}

func (repo *workshopRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.WorkshopModel{}).
		Where("status = ?", string(entity.WorkshopPublished)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count workshops")
	}

	return count, nil
}

// --- Mapper Functions ---

func toWorkshopDomain(data *model.WorkshopModel) *entity.Workshop {
	return &entity.Workshop{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Location:    data.Location,
		StartsAt:    data.StartsAt,
		EndsAt:      data.EndsAt,
		Price:       data.Price,
		Capacity:    data.Capacity,
		Status:      entity.WorkshopStatus(data.Status),
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromWorkshopDomain(data *entity.Workshop) *model.WorkshopModel {
	return &model.WorkshopModel{
		ID:          data.ID,
		Title:       data.Title,
		Slug:        data.Slug,
		Description: data.Description,
		Location:    data.Location,
		StartsAt:    data.StartsAt,
		EndsAt:      data.EndsAt,
		Price:       data.Price,
		Capacity:    data.Capacity,
		Status:      string(data.Status),
		Version:     data.Version,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
