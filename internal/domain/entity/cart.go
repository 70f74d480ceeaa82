package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is a bag of line items owned either by a user or by a guest handle.
type Cart struct {
	ID          uuid.UUID
	UserID      *uuid.UUID // set for signed-in owners
	GuestHandle string     // set for guest owners; echoed to the client
	Items       []CartItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CartItem is one row of a cart. Repeated adds of the same product produce separate rows.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
	Product   *Product // loaded with the cart
	CreatedAt time.Time
}

// IsGuest reports whether the cart is owned by a guest handle.
func (c *Cart) IsGuest() bool {
	return c.UserID == nil
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// UnitPrice returns the current price of the item: the variant price when a
// variant is selected, otherwise the product price.
func (i *CartItem) UnitPrice() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	if i.VariantID != nil {
		if v := i.Product.Variant(*i.VariantID); v != nil {
			return v.Price
		}
	}

	return i.Product.Price
}

// LineTotal is UnitPrice times Quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Total sums the line totals using current prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].LineTotal())
	}

	return total
}
