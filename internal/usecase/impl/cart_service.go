// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartResolver implements the CartResolver interface.
type cartResolver struct {
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// NewCartResolver is the constructor for cartResolver.
func NewCartResolver(cartRepo repository.CartRepository, logger *slog.Logger) usecase.CartResolver {
	return &cartResolver{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// Resolve returns the owner's cart. Signed-in users always get one; guests only when createIfMissing.
func (r *cartResolver) Resolve(ctx context.Context, owner usecase.CartOwner, createIfMissing bool) (*usecase.ResolvedCart, error) {
	if owner.IsAuthenticated() {
		return r.resolveUserCart(ctx, *owner.UserID)
	}

	if owner.GuestHandle != "" {
		cart, err := r.cartRepo.FindByGuestHandle(ctx, owner.GuestHandle)
		if err == nil {
			return &usecase.ResolvedCart{Cart: cart}, nil
		}
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(err, "failed to find guest cart")
		}
	}

	if !createIfMissing {
		return nil, domainerrors.ErrCartNotFound.WrapMessage("no cart for this request")
	}

	cart := &entity.Cart{GuestHandle: uuid.NewString()}
	if err := r.cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create guest cart")
	}
	deliverycontext.GetLoggerOrDefault(ctx, r.logger).Debug("Created guest cart", slog.String("cartID", cart.ID.String()))

	return &usecase.ResolvedCart{Cart: cart, Created: true}, nil
}

func (r *cartResolver) resolveUserCart(ctx context.Context, userID uuid.UUID) (*usecase.ResolvedCart, error) {
	cart, err := r.cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		return &usecase.ResolvedCart{Cart: cart}, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find user cart")
	}

	cart = &entity.Cart{UserID: &userID}
	if err := r.cartRepo.Create(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create user cart")
	}

	return &usecase.ResolvedCart{Cart: cart, Created: true}, nil
}

// cartService implements the CartUsecase interface.
type cartService struct {
	resolver    usecase.CartResolver
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Resolver    usecase.CartResolver
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		resolver:    params.Resolver,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the owner's cart, creating an empty one on first use.
func (srv *cartService) GetCart(ctx context.Context, owner usecase.CartOwner) (*usecase.ResolvedCart, error) {
	return srv.resolver.Resolve(ctx, owner, true)
}

// AddItem appends a new line; adding the same product twice keeps two lines.
func (srv *cartService) AddItem(ctx context.Context, owner usecase.CartOwner, input *usecase.AddCartItemInput) (*usecase.ResolvedCart, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("cannot add unknown product")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}
	if input.VariantID != nil && product.Variant(*input.VariantID) == nil {
		return nil, domainerrors.ErrVariantNotFound.WrapMessage("variant does not belong to product")
	}

	resolved, err := srv.resolver.Resolve(ctx, owner, true)
	if err != nil {
		return nil, err
	}

	item := &entity.CartItem{
		CartID:    resolved.Cart.ID,
		ProductID: product.ID,
		VariantID: input.VariantID,
		Quantity:  input.Quantity,
	}
	if err := srv.cartRepo.AddItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}
	srv.log(ctx).Debug("Added cart item", slog.Any("cartID", resolved.Cart.ID), slog.Any("productID", product.ID))

	return srv.reload(ctx, resolved.Cart, resolved.Created)
}

// RemoveItem deletes a line that belongs to the owner's cart.
func (srv *cartService) RemoveItem(ctx context.Context, owner usecase.CartOwner, itemID uuid.UUID) (*usecase.ResolvedCart, error) {
	resolved, err := srv.resolver.Resolve(ctx, owner, false)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.RemoveItem(ctx, resolved.Cart.ID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound.WrapMessage("item is not in this cart")
		}

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.reload(ctx, resolved.Cart, false)
}

// Clear empties the owner's cart.
func (srv *cartService) Clear(ctx context.Context, owner usecase.CartOwner) error {
	resolved, err := srv.resolver.Resolve(ctx, owner, false)
	if err != nil {
		return err
	}

	return errors.Wrap(srv.cartRepo.ClearItems(ctx, resolved.Cart.ID), "failed to clear cart")
}

// reload fetches the cart again so items carry their products.
func (srv *cartService) reload(ctx context.Context, cart *entity.Cart, created bool) (*usecase.ResolvedCart, error) {
	resolved, err := srv.resolver.Resolve(ctx, ownerOf(cart), false)
	if err != nil {
		return nil, err
	}
	resolved.Created = created

	return resolved, nil
}

func ownerOf(cart *entity.Cart) usecase.CartOwner {
	return usecase.CartOwner{UserID: cart.UserID, GuestHandle: cart.GuestHandle}
}
