package repository

import (
	"context"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCartNotFound is returned when no cart matches the owner.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when the item does not exist in the cart.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines cart persistence. Carts are loaded with items and their products.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	FindByGuestHandle(ctx context.Context, handle string) (*entity.Cart, error)
	Create(ctx context.Context, cart *entity.Cart) error

	// AddItem always inserts a new row.
	AddItem(ctx context.Context, item *entity.CartItem) error

	// RemoveItem deletes the item only when it belongs to cartID.
	RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// ClearItems deletes every item of the cart.
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}
