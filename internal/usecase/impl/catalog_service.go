package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(productRepo repository.ProductRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (srv *catalogService) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.ListParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage(id.String())
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *catalogService) Create(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{}
	if err := applyProductInput(product, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// Update replaces the product fields. Variants keep their IDs when matched.
func (srv *catalogService) Update(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyProductInput(product, input); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage(id.String())
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage(id.String())
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("product name is required")
	}
	if input.Price.IsNegative() {
		return domainerrors.ErrValidationFailed.WrapMessage("price cannot be negative")
	}

	product.Name = name
	product.Description = input.Description
	product.Price = input.Price
	product.DurationMinutes = input.DurationMinutes
	variants, err := mergeVariants(product.Variants, input.Variants)
	if err != nil {
		return err
	}
	product.Variants = variants

	return nil
}

// mergeVariants builds the new variant list. Inputs with an ID, or with the
// name of an existing variant, keep that variant's ID so cart items that
// reference it stay priced by it.
func mergeVariants(existing []entity.ProductVariant, inputs []usecase.ProductVariantInput) ([]entity.ProductVariant, error) {
	known := make(map[uuid.UUID]bool, len(existing))
	byName := make(map[string]uuid.UUID, len(existing))
	for _, v := range existing {
		known[v.ID] = true
		byName[strings.ToLower(v.Name)] = v.ID
	}

	claimed := make(map[uuid.UUID]bool, len(inputs))
	for _, in := range inputs {
		if in.ID == nil {
			continue
		}
		if !known[*in.ID] {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product variant " + in.ID.String())
		}
		if claimed[*in.ID] {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("duplicate product variant " + in.ID.String())
		}
		claimed[*in.ID] = true
	}

	variants := make([]entity.ProductVariant, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" || in.Price.IsNegative() || in.Quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid product variant")
		}

		var id uuid.UUID
		if in.ID != nil {
			id = *in.ID
		} else if match, ok := byName[strings.ToLower(name)]; ok && !claimed[match] {
			id = match
			claimed[match] = true
		}

		variants = append(variants, entity.ProductVariant{
			ID:       id,
			Name:     name,
			Price:    in.Price,
			Quantity: in.Quantity,
		})
	}

	return variants, nil
}
