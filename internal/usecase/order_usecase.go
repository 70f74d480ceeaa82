package usecase

import (
	"context"

	"sarahkyoga/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckInCode is a PNG QR code for an order.
type CheckInCode struct {
	OrderNumber string
	PNG         []byte
}

// OrderUsecase defines order queries and status changes.
type OrderUsecase interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	// CheckInCode is available to the order owner and to admins.
	CheckInCode(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*CheckInCode, error)
}
