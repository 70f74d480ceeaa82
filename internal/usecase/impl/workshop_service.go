package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// workshopService implements the WorkshopUsecase interface.
// Every change bumps the version and records a snapshot in the same transaction.
type workshopService struct {
	txManager    repository.TransactionManager
	workshopRepo repository.WorkshopRepository
	logger       *slog.Logger
}

// NewWorkshopService is the constructor for workshopService.
func NewWorkshopService(
	txManager repository.TransactionManager,
	workshopRepo repository.WorkshopRepository,
	logger *slog.Logger,
) usecase.WorkshopUsecase {
	return &workshopService{
		txManager:    txManager,
		workshopRepo: workshopRepo,
		logger:       logger,
	}
}

func (srv *workshopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a draft at version 1.
func (srv *workshopService) Create(ctx context.Context, input *usecase.WorkshopInput) (*entity.Workshop, error) {
	workshop := &entity.Workshop{Status: entity.WorkshopDraft, Version: 1}
	if err := applyWorkshopInput(workshop, input); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workshopRepo := repoFactory.NewWorkshopRepository()
		if err := workshopRepo.Create(ctx, workshop); err != nil {
			return err
		}

		return createSnapshot(ctx, workshopRepo, workshop)
	})
	if err != nil {
		return nil, mapWorkshopError(err, "failed to create workshop")
	}
	srv.log(ctx).Info("Workshop created", slog.String("slug", workshop.Slug))

	return workshop, nil
}

func (srv *workshopService) Update(ctx context.Context, id uuid.UUID, input *usecase.WorkshopInput) (*entity.Workshop, error) {
	return srv.change(ctx, id, func(workshop *entity.Workshop) error {
		return applyWorkshopInput(workshop, input)
	})
}

func (srv *workshopService) Publish(ctx context.Context, id uuid.UUID) (*entity.Workshop, error) {
	return srv.change(ctx, id, func(workshop *entity.Workshop) error {
		workshop.Status = entity.WorkshopPublished

		return nil
	})
}

func (srv *workshopService) Unpublish(ctx context.Context, id uuid.UUID) (*entity.Workshop, error) {
	return srv.change(ctx, id, func(workshop *entity.Workshop) error {
		workshop.Status = entity.WorkshopDraft

		return nil
	})
}

// change loads the workshop inside a transaction, applies mutate and saves it as the next version.
func (srv *workshopService) change(ctx context.Context, id uuid.UUID, mutate func(*entity.Workshop) error) (*entity.Workshop, error) {
	var workshop *entity.Workshop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		workshopRepo := repoFactory.NewWorkshopRepository()

		current, err := workshopRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := mutate(current); err != nil {
			return err
		}
		current.Version++

		if err := workshopRepo.Update(ctx, current); err != nil {
			return err
		}
		workshop = current

		return createSnapshot(ctx, workshopRepo, current)
	})
	if err != nil {
		return nil, mapWorkshopError(err, "failed to update workshop")
	}
	srv.log(ctx).Info("Workshop changed", slog.String("slug", workshop.Slug), slog.Int("version", workshop.Version), slog.String("status", string(workshop.Status)))

	return workshop, nil
}

func (srv *workshopService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.workshopRepo.Delete(ctx, id); err != nil {
		return mapWorkshopError(err, "failed to delete workshop")
	}

	return nil
}

func (srv *workshopService) Get(ctx context.Context, id uuid.UUID) (*entity.Workshop, error) {
	workshop, err := srv.workshopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapWorkshopError(err, "failed to find workshop")
	}

	return workshop, nil
}

func (srv *workshopService) ListAll(ctx context.Context) ([]*entity.Workshop, error) {
	workshops, err := srv.workshopRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workshops")
	}

	return workshops, nil
}

func (srv *workshopService) ListVersions(ctx context.Context, id uuid.UUID) ([]*entity.WorkshopVersion, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	versions, err := srv.workshopRepo.ListVersions(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workshop versions")
	}

	return versions, nil
}

// GetPublished returns a published workshop; drafts look missing.
func (srv *workshopService) GetPublished(ctx context.Context, slug string) (*entity.Workshop, error) {
	workshop, err := srv.workshopRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapWorkshopError(err, "failed to find workshop")
	}
	if !workshop.IsPublished() {
		return nil, domainerrors.ErrWorkshopNotFound.WrapMessage(slug)
	}

	return workshop, nil
}

func (srv *workshopService) ListPublished(ctx context.Context) ([]*entity.Workshop, error) {
	workshops, err := srv.workshopRepo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workshops")
	}

	return workshops, nil
}

func createSnapshot(ctx context.Context, repo repository.WorkshopRepository, workshop *entity.Workshop) error {
	return repo.CreateVersion(ctx, &entity.WorkshopVersion{
		WorkshopID: workshop.ID,
		Version:    workshop.Version,
		Status:     workshop.Status,
		Snapshot:   *workshop,
	})
}

func applyWorkshopInput(workshop *entity.Workshop, input *usecase.WorkshopInput) error {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("workshop title is required")
	}
	if !input.EndsAt.After(input.StartsAt) {
		return domainerrors.ErrValidationFailed.WrapMessage("workshop must end after it starts")
	}
	if input.Price.IsNegative() || input.Capacity < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price and capacity cannot be negative")
	}

	slug := slugify(input.Slug)
	if slug == "" {
		slug = slugify(title)
	}
	if slug == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("workshop slug is required")
	}

	workshop.Title = title
	workshop.Slug = slug
	workshop.Description = input.Description
	workshop.Location = strings.TrimSpace(input.Location)
	workshop.StartsAt = input.StartsAt
	workshop.EndsAt = input.EndsAt
	workshop.Price = input.Price
	workshop.Capacity = input.Capacity

	return nil
}

func slugify(s string) string {
	return strings.Trim(slugInvalidChars.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func mapWorkshopError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrWorkshopNotFound):
		return domainerrors.ErrWorkshopNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrDuplicateSlug):
		return domainerrors.ErrWorkshopSlugTaken.WrapMessage(message)
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return errors.Wrap(err, message)
}
