package postgres

import (
	"context"
	"testing"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_GuestCartLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	_, err := repo.FindByGuestHandle(ctx, "")
	assert.ErrorIs(t, err, repository.ErrCartNotFound)

	cart := &entity.Cart{GuestHandle: "guest-handle-1"}
	require.NoError(t, repo.Create(ctx, cart))

	found, err := repo.FindByGuestHandle(ctx, "guest-handle-1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, found.ID)
	assert.True(t, found.IsGuest())
	assert.True(t, found.IsEmpty())
}

func TestCartRepository_ItemsKeepDuplicatesAndTotal(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "cart@example.com")
	productA := seedProduct(t, db, "Flow Class", "30")
	productB := seedProduct(t, db, "Mat Rental", "10")

	cart := &entity.Cart{UserID: &user.ID}
	require.NoError(t, repo.Create(ctx, cart))

	require.NoError(t, repo.AddItem(ctx, &entity.CartItem{CartID: cart.ID, ProductID: productA.ID, Quantity: 1}))
	require.NoError(t, repo.AddItem(ctx, &entity.CartItem{CartID: cart.ID, ProductID: productA.ID, Quantity: 1}))
	require.NoError(t, repo.AddItem(ctx, &entity.CartItem{CartID: cart.ID, ProductID: productB.ID, Quantity: 1}))

	found, err := repo.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 3)
	require.NotNil(t, found.Items[0].Product)
	assert.Equal(t, "Flow Class", found.Items[0].Product.Name)
	assert.True(t, decimal.RequireFromString("70").Equal(found.Total()), "total was %s", found.Total())
}

func TestCartRepository_AddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	cart := &entity.Cart{GuestHandle: "guest-handle-2"}
	require.NoError(t, repo.Create(ctx, cart))

	err := repo.AddItem(ctx, &entity.CartItem{CartID: cart.ID, ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartRepository_RemoveAndClear(t *testing.T) {
	db := newTestDB(t)
	repo := NewCartRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Private Session", "90")
	cart := &entity.Cart{GuestHandle: "guest-handle-3"}
	other := &entity.Cart{GuestHandle: "guest-handle-4"}
	require.NoError(t, repo.Create(ctx, cart))
	require.NoError(t, repo.Create(ctx, other))

	item := &entity.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2}
	require.NoError(t, repo.AddItem(ctx, item))
	require.NoError(t, repo.AddItem(ctx, &entity.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 1}))

	// An item is only removable through the cart that owns it.
	assert.ErrorIs(t, repo.RemoveItem(ctx, other.ID, item.ID), repository.ErrCartItemNotFound)
	require.NoError(t, repo.RemoveItem(ctx, cart.ID, item.ID))

	found, err := repo.FindByGuestHandle(ctx, "guest-handle-3")
	require.NoError(t, err)
	assert.Len(t, found.Items, 1)

	require.NoError(t, repo.ClearItems(ctx, cart.ID))
	found, err = repo.FindByGuestHandle(ctx, "guest-handle-3")
	require.NoError(t, err)
	assert.True(t, found.IsEmpty())
}
