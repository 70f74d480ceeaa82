package repository

import (
	"context"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when an order already exists for the payment reference.
	ErrDuplicateOrder = errors.New("order already exists for payment")
)

// OrderRepository defines order persistence. Orders are loaded with their items.
type OrderRepository interface {
	// Create inserts the order and its items.
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByPaymentReference(ctx context.Context, reference string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	List(ctx context.Context, params ListParams) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	CountByPromoCode(ctx context.Context, promoCodeID uuid.UUID) (int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Stats returns the number of orders and the sum of their totals.
	Stats(ctx context.Context) (*entity.OrderStats, error)
}
