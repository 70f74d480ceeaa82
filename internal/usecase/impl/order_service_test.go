package impl

import (
	"context"
	"testing"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	mockRepo "sarahkyoga/internal/mocks/repository"
	mockSvc "sarahkyoga/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		current entity.OrderStatus
		next    entity.OrderStatus
		wantErr error
	}{
		{"pending to completed", entity.OrderPending, entity.OrderCompleted, nil},
		{"pending to cancelled", entity.OrderPending, entity.OrderCancelled, nil},
		{"completed to cancelled", entity.OrderCompleted, entity.OrderCancelled, domainerrors.ErrInvalidStatusTransition},
		{"cancelled to pending", entity.OrderCancelled, entity.OrderPending, domainerrors.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			srv := NewOrderService(orderRepo, mockSvc.NewMockQRCodeService(t), newDiscardLogger())

			ctx := context.Background()
			order := &entity.Order{ID: uuid.New(), Status: tt.current}

			orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
			if tt.wantErr == nil {
				orderRepo.EXPECT().UpdateStatus(ctx, order.ID, tt.next).Return(nil)
			}

			updated, err := srv.UpdateStatus(ctx, order.ID, tt.next)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, updated.Status)
		})
	}
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	srv := NewOrderService(mockRepo.NewMockOrderRepository(t), mockSvc.NewMockQRCodeService(t), newDiscardLogger())

	_, err := srv.UpdateStatus(context.Background(), uuid.New(), entity.OrderStatus("shipped"))

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_Get_NotFound(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	srv := NewOrderService(orderRepo, mockSvc.NewMockQRCodeService(t), newDiscardLogger())

	ctx := context.Background()
	id := uuid.New()

	orderRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := srv.Get(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_CheckInCode(t *testing.T) {
	ownerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: ownerID, OrderNumber: "K7Q2M9XA"}

	t.Run("owner", func(t *testing.T) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		qr := mockSvc.NewMockQRCodeService(t)
		srv := NewOrderService(orderRepo, qr, newDiscardLogger())
		ctx := context.Background()

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		qr.EXPECT().GenerateOrderQR("K7Q2M9XA").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		code, err := srv.CheckInCode(ctx, ownerID, false, order.ID)

		require.NoError(t, err)
		assert.Equal(t, "K7Q2M9XA", code.OrderNumber)
		assert.NotEmpty(t, code.PNG)
	})

	t.Run("admin", func(t *testing.T) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		qr := mockSvc.NewMockQRCodeService(t)
		srv := NewOrderService(orderRepo, qr, newDiscardLogger())
		ctx := context.Background()

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
		qr.EXPECT().GenerateOrderQR("K7Q2M9XA").Return([]byte{1}, nil)

		_, err := srv.CheckInCode(ctx, uuid.New(), true, order.ID)

		require.NoError(t, err)
	})

	t.Run("other user", func(t *testing.T) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		srv := NewOrderService(orderRepo, mockSvc.NewMockQRCodeService(t), newDiscardLogger())
		ctx := context.Background()

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		_, err := srv.CheckInCode(ctx, uuid.New(), false, order.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})
}
