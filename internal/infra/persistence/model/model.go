// Package model holds the GORM models of the relational store.
// They are exported so the GORM Gen tool can use them from other packages.
package model

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 for a new row.
func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// All lists every model, in dependency order, for migrations and query generation.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&ProductVariantModel{},
		&CartModel{},
		&CartItemModel{},
		&PromoCodeModel{},
		&OrderModel{},
		&OrderItemModel{},
		&NewsletterModel{},
		&SubscriberModel{},
		&WorkshopModel{},
		&WorkshopVersionModel{},
	}
}
