package postgres

import (
	"context"
	"testing"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(userID, productID uuid.UUID, reference, total string) *entity.Order {
	amount := decimal.RequireFromString(total)

	return &entity.Order{
		UserID:           userID,
		OrderNumber:      "AB12CD34",
		PaymentReference: reference,
		Subtotal:         amount,
		Discount:         decimal.Zero,
		Total:            amount,
		Status:           entity.OrderPending,
		Items: []entity.OrderItem{
			{ProductID: productID, ProductName: "Flow Class", Quantity: 1, UnitPrice: amount},
		},
	}
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "buyer@example.com")
	product := seedProduct(t, db, "Flow Class", "30")

	order := newTestOrder(user.ID, product.ID, "pi_123", "30")
	require.NoError(t, repo.Create(ctx, order))
	assert.NotEqual(t, uuid.Nil, order.ID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	found, err := repo.FindByPaymentReference(ctx, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Flow Class", found.Items[0].ProductName)
	assert.True(t, decimal.NewFromInt(30).Equal(found.Total))

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_DuplicatePaymentReference(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "twice@example.com")
	product := seedProduct(t, db, "Flow Class", "30")

	require.NoError(t, repo.Create(ctx, newTestOrder(user.ID, product.ID, "cs_same", "30")))
	err := repo.Create(ctx, newTestOrder(user.ID, product.ID, "cs_same", "30"))
	assert.ErrorIs(t, err, repository.ErrDuplicateOrder)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "status@example.com")
	product := seedProduct(t, db, "Flow Class", "30")
	order := newTestOrder(user.ID, product.ID, "pi_status", "30")
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entity.OrderCompleted))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, found.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entity.OrderCompleted), repository.ErrOrderNotFound)
}

func TestOrderRepository_CountsAndStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	promos := NewPromoCodeRepository(db)
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Count)
	assert.True(t, stats.Revenue.IsZero())

	user := seedUser(t, db, "stats@example.com")
	product := seedProduct(t, db, "Flow Class", "30")
	promo := newTestPromo("STATS")
	require.NoError(t, promos.Create(ctx, promo))

	withPromo := newTestOrder(user.ID, product.ID, "pi_1", "80")
	withPromo.PromoCodeID = &promo.ID
	require.NoError(t, repo.Create(ctx, withPromo))
	require.NoError(t, repo.Create(ctx, newTestOrder(user.ID, product.ID, "pi_2", "19.50")))

	byPromo, err := repo.CountByPromoCode(ctx, promo.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, byPromo)

	byUser, err := repo.CountByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, byUser)

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Count)
	assert.True(t, decimal.RequireFromString("99.5").Equal(stats.Revenue), "revenue was %s", stats.Revenue)

	mine, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := repo.List(ctx, repository.ListParams{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
