package postgres

import (
	"context"
	"time"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrder
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	*order = *toOrderDomain(orderM)

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *orderRepository) FindByPaymentReference(ctx context.Context, reference string) (*entity.Order, error) {
	return repo.findOne(ctx, "payment_reference = ?", reference)
}

func (repo *orderRepository) findOne(ctx context.Context, query string, arg any) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where(query, arg).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return repo.list(ctx, repo.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (repo *orderRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Order, error) {
	return repo.list(ctx, paginate(repo.db.WithContext(ctx), params))
}

func (repo *orderRepository) list(_ context.Context, query *gorm.DB) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	if err := query.
		Preload("Items").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) CountByPromoCode(ctx context.Context, promoCodeID uuid.UUID) (int64, error) {
	return repo.count(ctx, "promo_code_id = ?", promoCodeID)
}

func (repo *orderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return repo.count(ctx, "user_id = ?", userID)
}

func (repo *orderRepository) count(ctx context.Context, query string, arg any) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where(query, arg).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// Stats counts orders and sums their totals. An empty table yields zero revenue.
func (repo *orderRepository) Stats(ctx context.Context) (*entity.OrderStats, error) {
	var row struct {
		Count   int64
		Revenue decimal.NullDecimal
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COUNT(*) AS count, SUM(total) AS revenue").
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate orders")
	}

	stats := &entity.OrderStats{Count: row.Count, Revenue: decimal.Zero}
	if row.Revenue.Valid {
		stats.Revenue = row.Revenue.Decimal
	}

	return stats, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:               data.ID,
		UserID:           data.UserID,
		OrderNumber:      data.OrderNumber,
		PaymentReference: data.PaymentReference,
		Subtotal:         data.Subtotal,
		Discount:         data.Discount,
		Total:            data.Total,
		PromoCodeID:      data.PromoCodeID,
		Status:           entity.OrderStatus(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
		Items:            make([]entity.OrderItem, 0, len(data.Items)),
	}
	for _, itemM := range data.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			VariantID:   itemM.VariantID,
			ProductName: itemM.ProductName,
			Quantity:    itemM.Quantity,
			UnitPrice:   itemM.UnitPrice,
		})
	}

	return order
}

// fromOrderDomain assigns IDs to the order and items that have none.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	orderM := &model.OrderModel{
		ID:               data.ID,
		UserID:           data.UserID,
		OrderNumber:      data.OrderNumber,
		PaymentReference: data.PaymentReference,
		Subtotal:         data.Subtotal,
		Discount:         data.Discount,
		Total:            data.Total,
		PromoCodeID:      data.PromoCodeID,
		Status:           string(data.Status),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	if orderM.ID == uuid.Nil {
		orderM.ID = model.NewID()
	}

	for _, item := range data.Items {
		itemM := model.OrderItemModel{
			ID:          item.ID,
			OrderID:     orderM.ID,
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
		if itemM.ID == uuid.Nil {
			itemM.ID = model.NewID()
		}
		orderM.Items = append(orderM.Items, itemM)
	}

	return orderM
}
