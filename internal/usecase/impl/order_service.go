package impl

import (
	"context"
	"log/slog"

	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/domain/service"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(orderRepo repository.OrderRepository, qrService service.QRCodeService, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		qrService: qrService,
		logger:    logger,
	}
}

func (srv *orderService) ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

func (srv *orderService) ListAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx, repository.ListParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

func (srv *orderService) Get(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage(id.String())
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// UpdateStatus moves a pending order to completed or cancelled.
func (srv *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	order, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WrapMessage(string(order.Status) + " -> " + string(status))
	}

	if err := srv.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}
	order.Status = status
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Order status changed",
		slog.String("orderNumber", order.OrderNumber), slog.String("status", string(status)))

	return order, nil
}

// CheckInCode renders the order number as a QR code for the studio front desk.
func (srv *orderService) CheckInCode(ctx context.Context, requesterID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*usecase.CheckInCode, error) {
	order, err := srv.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != requesterID {
		// Hide other users' orders entirely.
		return nil, domainerrors.ErrOrderNotFound.WrapMessage(orderID.String())
	}

	png, err := srv.qrService.GenerateOrderQR(order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in code")
	}

	return &usecase.CheckInCode{OrderNumber: order.OrderNumber, PNG: png}, nil
}
