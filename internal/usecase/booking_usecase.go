package usecase

import (
	"context"

	"sarahkyoga/internal/domain/entity"
)

// BookingInput requests a private session in the given slot.
type BookingInput struct {
	Slot  entity.TimeRange
	Name  string
	Email string
	Phone string
	Notes string
}

// BookingUsecase defines calendar availability and booking.
type BookingUsecase interface {
	// Availability returns the busy periods inside the window.
	Availability(ctx context.Context, window entity.TimeRange) ([]entity.TimeRange, error)
	Book(ctx context.Context, input *BookingInput) (*entity.Booking, error)
}

// DashboardUsecase aggregates admin dashboard counts.
type DashboardUsecase interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}
