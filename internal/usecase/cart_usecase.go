// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sarahkyoga/internal/domain/entity"

	"github.com/google/uuid"
)

// CartOwner identifies whose cart a request operates on. UserID wins over GuestHandle.
type CartOwner struct {
	UserID      *uuid.UUID
	GuestHandle string
}

// IsAuthenticated reports whether the owner is a signed-in user.
func (o CartOwner) IsAuthenticated() bool {
	return o.UserID != nil
}

// ResolvedCart is the cart selected for a request.
type ResolvedCart struct {
	Cart    *entity.Cart
	Created bool
}

// AddCartItemInput defines a line to append to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
}

// CartResolver selects exactly one cart per owner, creating it when allowed.
type CartResolver interface {
	Resolve(ctx context.Context, owner CartOwner, createIfMissing bool) (*ResolvedCart, error)
}

// CartUsecase defines the cart operations exposed to shoppers.
type CartUsecase interface {
	GetCart(ctx context.Context, owner CartOwner) (*ResolvedCart, error)
	AddItem(ctx context.Context, owner CartOwner, input *AddCartItemInput) (*ResolvedCart, error)
	RemoveItem(ctx context.Context, owner CartOwner, itemID uuid.UUID) (*ResolvedCart, error)
	Clear(ctx context.Context, owner CartOwner) error
}
