package impl

import (
	"context"
	"testing"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	mockRepo "sarahkyoga/internal/mocks/repository"
	mockUsecase "sarahkyoga/internal/mocks/usecase"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartResolver_Resolve_UserCartExists(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	resolver := NewCartResolver(cartRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()
	cart := newTestCart(&userID)

	cartRepo.EXPECT().FindByUserID(ctx, userID).Return(cart, nil)

	resolved, err := resolver.Resolve(ctx, usecase.CartOwner{UserID: &userID, GuestHandle: "ignored"}, false)

	require.NoError(t, err)
	assert.Same(t, cart, resolved.Cart)
	assert.False(t, resolved.Created)
}

func TestCartResolver_Resolve_UserCartCreatedEvenWithoutCreateFlag(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	resolver := NewCartResolver(cartRepo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrCartNotFound)
	cartRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.Cart) bool {
			return c.UserID != nil && *c.UserID == userID && c.GuestHandle == ""
		})).
		Return(nil)

	resolved, err := resolver.Resolve(ctx, usecase.CartOwner{UserID: &userID}, false)

	require.NoError(t, err)
	assert.True(t, resolved.Created)
}

func TestCartResolver_Resolve_GuestHandleFound(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	resolver := NewCartResolver(cartRepo, newDiscardLogger())

	ctx := context.Background()
	cart := newTestCart(nil)

	cartRepo.EXPECT().FindByGuestHandle(ctx, cart.GuestHandle).Return(cart, nil)

	resolved, err := resolver.Resolve(ctx, usecase.CartOwner{GuestHandle: cart.GuestHandle}, true)

	require.NoError(t, err)
	assert.Same(t, cart, resolved.Cart)
	assert.False(t, resolved.Created)
}

func TestCartResolver_Resolve_GuestMissingWithoutCreate(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	resolver := NewCartResolver(cartRepo, newDiscardLogger())

	ctx := context.Background()

	cartRepo.EXPECT().FindByGuestHandle(ctx, "stale").Return(nil, repository.ErrCartNotFound)

	resolved, err := resolver.Resolve(ctx, usecase.CartOwner{GuestHandle: "stale"}, false)

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrCartNotFound))
}

func TestCartResolver_Resolve_AnonymousWithoutCreate(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	resolver := NewCartResolver(cartRepo, newDiscardLogger())

	_, err := resolver.Resolve(context.Background(), usecase.CartOwner{}, false)

	assert.True(t, errors.Is(err, domainerrors.ErrCartNotFound))
}

func TestCartResolver_Resolve_CreatesGuestCartWithNewHandle(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	resolver := NewCartResolver(cartRepo, newDiscardLogger())

	ctx := context.Background()

	cartRepo.EXPECT().FindByGuestHandle(ctx, "stale").Return(nil, repository.ErrCartNotFound)
	cartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Run(func(ctx context.Context, cart *entity.Cart) {
			cart.ID = uuid.New()
		}).
		Return(nil)

	resolved, err := resolver.Resolve(ctx, usecase.CartOwner{GuestHandle: "stale"}, true)

	require.NoError(t, err)
	assert.True(t, resolved.Created)
	assert.Nil(t, resolved.Cart.UserID)
	assert.NotEmpty(t, resolved.Cart.GuestHandle)
	assert.NotEqual(t, "stale", resolved.Cart.GuestHandle)
}

func TestCartResolver_Resolve_LookupError(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	resolver := NewCartResolver(cartRepo, newDiscardLogger())

	ctx := context.Background()

	cartRepo.EXPECT().FindByGuestHandle(ctx, "h").Return(nil, errors.New("db down"))

	_, err := resolver.Resolve(ctx, usecase.CartOwner{GuestHandle: "h"}, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find guest cart")
}

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	resolver    *mockUsecase.MockCartResolver
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	resolver := mockUsecase.NewMockCartResolver(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCartService(CartServiceParams{
		Resolver:    resolver,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		resolver:    resolver,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_AddItem_NewGuestCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := newTestProduct("Drop-in class", "20.00")
	cart := newTestCart(nil)
	owner := usecase.CartOwner{}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.resolver.EXPECT().Resolve(ctx, owner, true).Return(&usecase.ResolvedCart{Cart: cart, Created: true}, nil)
	fx.cartRepo.EXPECT().
		AddItem(ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.CartID == cart.ID && item.ProductID == product.ID && item.Quantity == 2
		})).
		Return(nil)

	reloaded := newTestCart(nil, cartLine(product, 2))
	reloaded.ID, reloaded.GuestHandle = cart.ID, cart.GuestHandle
	fx.resolver.EXPECT().
		Resolve(ctx, usecase.CartOwner{GuestHandle: cart.GuestHandle}, false).
		Return(&usecase.ResolvedCart{Cart: reloaded}, nil)

	resolved, err := fx.service.AddItem(ctx, owner, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 2})

	require.NoError(t, err)
	assert.True(t, resolved.Created)
	assert.Equal(t, "40", resolved.Cart.Total().String())
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), usecase.CartOwner{}, &usecase.AddCartItemInput{ProductID: uuid.New(), Quantity: 0})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, usecase.CartOwner{}, &usecase.AddCartItemInput{ProductID: productID, Quantity: 1})

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_AddItem_ForeignVariant(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	product := newTestProduct("Class pack", "100.00")
	variantID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.AddItem(ctx, usecase.CartOwner{}, &usecase.AddCartItemInput{
		ProductID: product.ID,
		VariantID: &variantID,
		Quantity:  1,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrVariantNotFound))
}

func TestCartService_RemoveItem_NotInCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := usecase.CartOwner{UserID: &userID}
	cart := newTestCart(&userID)
	itemID := uuid.New()

	fx.resolver.EXPECT().Resolve(ctx, owner, false).Return(&usecase.ResolvedCart{Cart: cart}, nil)
	fx.cartRepo.EXPECT().RemoveItem(ctx, cart.ID, itemID).Return(repository.ErrCartItemNotFound)

	_, err := fx.service.RemoveItem(ctx, owner, itemID)

	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_RemoveItem_NoCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	owner := usecase.CartOwner{GuestHandle: "gone"}

	fx.resolver.EXPECT().Resolve(ctx, owner, false).Return(nil, domainerrors.ErrCartNotFound.WrapMessage("no cart"))

	_, err := fx.service.RemoveItem(ctx, owner, uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrCartNotFound))
}

func TestCartService_Clear(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := usecase.CartOwner{UserID: &userID}
	cart := newTestCart(&userID)

	fx.resolver.EXPECT().Resolve(ctx, owner, false).Return(&usecase.ResolvedCart{Cart: cart}, nil)
	fx.cartRepo.EXPECT().ClearItems(ctx, cart.ID).Return(nil)

	require.NoError(t, fx.service.Clear(ctx, owner))
}
