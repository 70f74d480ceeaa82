package postgres

import (
	"context"
	"testing"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_VariantsSyncedOnUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Class Pack", "100",
		entity.ProductVariant{Name: "5 classes", Price: decimal.NewFromInt(100), Quantity: 5},
		entity.ProductVariant{Name: "10 classes", Price: decimal.NewFromInt(180), Quantity: 10},
	)
	require.Len(t, product.Variants, 2)

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, found.Variants, 2)

	found.Name = "Class Pass"
	found.Variants = []entity.ProductVariant{{Name: "20 classes", Price: decimal.NewFromInt(320), Quantity: 20}}
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Class Pass", found.Name)
	require.Len(t, found.Variants, 1)
	assert.Equal(t, 20, found.Variants[0].Quantity)

	assert.ErrorIs(t, repo.Update(ctx, &entity.Product{ID: uuid.New(), Name: "ghost"}), repository.ErrProductNotFound)
}

func TestProductRepository_EditKeepsCartVariantPrice(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	carts := NewCartRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Private Session", "20",
		entity.ProductVariant{Name: "90 minutes", Price: decimal.NewFromInt(90), Quantity: 1},
	)
	variantID := product.Variants[0].ID

	cart := &entity.Cart{GuestHandle: "variant-edit-handle"}
	require.NoError(t, carts.Create(ctx, cart))
	require.NoError(t, carts.AddItem(ctx, &entity.CartItem{CartID: cart.ID, ProductID: product.ID, VariantID: &variantID, Quantity: 1}))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	found.Description = "One-to-one practice in the small studio"
	require.NoError(t, repo.Update(ctx, found))

	edited, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, edited.Variants, 1)
	assert.Equal(t, variantID, edited.Variants[0].ID)

	loaded, err := carts.FindByGuestHandle(ctx, cart.GuestHandle)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90).Equal(loaded.Total()), "total was %s", loaded.Total())
}

func TestProductRepository_RemovedVariantLeavesCarts(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	carts := NewCartRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Class Pack", "20",
		entity.ProductVariant{Name: "5 classes", Price: decimal.NewFromInt(90), Quantity: 5},
		entity.ProductVariant{Name: "10 classes", Price: decimal.NewFromInt(170), Quantity: 10},
	)
	fivePack, tenPack := product.Variants[0], product.Variants[1]

	cart := &entity.Cart{GuestHandle: "variant-removed-handle"}
	require.NoError(t, carts.Create(ctx, cart))
	require.NoError(t, carts.AddItem(ctx, &entity.CartItem{CartID: cart.ID, ProductID: product.ID, VariantID: &fivePack.ID, Quantity: 1}))
	require.NoError(t, carts.AddItem(ctx, &entity.CartItem{CartID: cart.ID, ProductID: product.ID, VariantID: &tenPack.ID, Quantity: 1}))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	found.Variants = []entity.ProductVariant{tenPack}
	found.Variants[0].Price = decimal.NewFromInt(160)
	require.NoError(t, repo.Update(ctx, found))

	loaded, err := carts.FindByGuestHandle(ctx, cart.GuestHandle)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, tenPack.ID, *loaded.Items[0].VariantID)
	assert.True(t, decimal.NewFromInt(160).Equal(loaded.Total()), "total was %s", loaded.Total())
}

func TestProductRepository_ListAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	first := seedProduct(t, db, "Flow Class", "30")
	seedProduct(t, db, "Mat Rental", "10")

	products, err := repo.List(ctx, repository.ListParams{})
	require.NoError(t, err)
	assert.Len(t, products, 2)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), repository.ErrProductNotFound)
}
