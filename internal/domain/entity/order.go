package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an order may move from s to next.
// Only pending orders change state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == OrderPending && (next == OrderCompleted || next == OrderCancelled)
}

// Order is the frozen record of a paid cart.
type Order struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	OrderNumber      string
	PaymentReference string // payment intent or checkout session id; unique
	Subtotal         decimal.Decimal
	Discount         decimal.Decimal
	Total            decimal.Decimal
	PromoCodeID      *uuid.UUID
	Status           OrderStatus
	Items            []OrderItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderItem freezes a cart line at the price paid.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	VariantID   *uuid.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// OrderStats aggregates orders for the admin dashboard.
type OrderStats struct {
	Count   int64
	Revenue decimal.Decimal
}
