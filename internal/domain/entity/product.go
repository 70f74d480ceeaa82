package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry: a class, a class pack or a private session.
type Product struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Price           decimal.Decimal
	DurationMinutes *int
	Variants        []ProductVariant
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProductVariant is a priced option of a product, e.g. a 5-class pack.
type ProductVariant struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int // stock or class count
}

// Variant returns the variant with the given ID, or nil when the product has none.
func (p *Product) Variant(id uuid.UUID) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}

	return nil
}
