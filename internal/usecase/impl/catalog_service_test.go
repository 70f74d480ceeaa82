package impl

import (
	"context"
	"testing"

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

func TestCatalogService_Create_WithVariants(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	srv := NewCatalogService(productRepo, newDiscardLogger())
	ctx := context.Background()
	duration := 60

	productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Name == "Class pack" && len(p.Variants) == 2 && p.Variants[1].Name == "10 classes"
		})).
		Return(nil)

	product, err := srv.Create(ctx, &usecase.ProductInput{
		Name:            " Class pack ",
		Price:           decimal.NewFromInt(100),
		DurationMinutes: &duration,
		Variants: []usecase.ProductVariantInput{
			{Name: "5 classes", Price: decimal.NewFromInt(95), Quantity: 5},
			{Name: "10 classes", Price: decimal.NewFromInt(180), Quantity: 10},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 60, *product.DurationMinutes)
}

func TestCatalogService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.ProductInput
	}{
		{"missing name", usecase.ProductInput{Price: decimal.NewFromInt(10)}},
		{"negative price", usecase.ProductInput{Name: "Drop-in", Price: decimal.NewFromInt(-1)}},
		{"unnamed variant", usecase.ProductInput{
			Name:     "Drop-in",
			Price:    decimal.NewFromInt(10),
			Variants: []usecase.ProductVariantInput{{Price: decimal.NewFromInt(5)}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewCatalogService(mockRepo.NewMockProductRepository(t), newDiscardLogger())

			_, err := srv.Create(context.Background(), &tt.input)

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_Update_ReplacesVariants(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	srv := NewCatalogService(productRepo, newDiscardLogger())
	ctx := context.Background()
	product := newTestProduct("Drop-in", "20.00")
	product.Variants = []entity.ProductVariant{{ID: uuid.New(), Name: "old"}}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	productRepo.EXPECT().Update(ctx, product).Return(nil)

	updated, err := srv.Update(ctx, product.ID, &usecase.ProductInput{Name: "Drop-in class", Price: decimal.NewFromInt(22)})

	require.NoError(t, err)
	assert.Equal(t, "Drop-in class", updated.Name)
	assert.Empty(t, updated.Variants)
}

func TestCatalogService_Update_KeepsVariantIDs(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	srv := NewCatalogService(productRepo, newDiscardLogger())
	ctx := context.Background()
	fivePack := entity.ProductVariant{ID: uuid.New(), Name: "5 classes", Price: decimal.NewFromInt(90), Quantity: 5}
	tenPack := entity.ProductVariant{ID: uuid.New(), Name: "10 classes", Price: decimal.NewFromInt(170), Quantity: 10}
	product := newTestProduct("Class pack", "20.00")
	product.Variants = []entity.ProductVariant{fivePack, tenPack}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	productRepo.EXPECT().Update(ctx, product).Return(nil)

	updated, err := srv.Update(ctx, product.ID, &usecase.ProductInput{
		Name:        "Class pack",
		Description: "Now valid for six months",
		Price:       decimal.NewFromInt(20),
		Variants: []usecase.ProductVariantInput{
			{ID: &tenPack.ID, Name: "10 classes", Price: decimal.NewFromInt(160), Quantity: 10},
			{Name: "5 Classes", Price: decimal.NewFromInt(90), Quantity: 5},
			{Name: "20 classes", Price: decimal.NewFromInt(300), Quantity: 20},
		},
	})

	require.NoError(t, err)
	require.Len(t, updated.Variants, 3)
	assert.Equal(t, tenPack.ID, updated.Variants[0].ID)
	assert.True(t, decimal.NewFromInt(160).Equal(updated.Variants[0].Price))
	assert.Equal(t, fivePack.ID, updated.Variants[1].ID)
	assert.Equal(t, uuid.Nil, updated.Variants[2].ID)
}

func TestCatalogService_Update_RejectsVariantIDs(t *testing.T) {
	existing := entity.ProductVariant{ID: uuid.New(), Name: "5 classes", Price: decimal.NewFromInt(90), Quantity: 5}

	tests := []struct {
		name     string
		variants []usecase.ProductVariantInput
	}{
		{"unknown id", []usecase.ProductVariantInput{
			{ID: func() *uuid.UUID { id := uuid.New(); return &id }(), Name: "5 classes", Price: decimal.NewFromInt(90)},
		}},
		{"same id twice", []usecase.ProductVariantInput{
			{ID: &existing.ID, Name: "5 classes", Price: decimal.NewFromInt(90)},
			{ID: &existing.ID, Name: "5 classes again", Price: decimal.NewFromInt(90)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := mockRepo.NewMockProductRepository(t)
			srv := NewCatalogService(productRepo, newDiscardLogger())
			ctx := context.Background()
			product := newTestProduct("Class pack", "20.00")
			product.Variants = []entity.ProductVariant{existing}

			productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			_, err := srv.Update(ctx, product.ID, &usecase.ProductInput{
				Name:     "Class pack",
				Price:    decimal.NewFromInt(20),
				Variants: tt.variants,
			})

			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCatalogService_Delete_NotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	srv := NewCatalogService(productRepo, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()

	productRepo.EXPECT().Delete(ctx, id).Return(repository.ErrProductNotFound)

	err := srv.Delete(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
