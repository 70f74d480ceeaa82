package postgres

import (
	"context"
	"testing"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPromo(code string) *entity.PromoCode {
	return &entity.PromoCode{
		Code:         code,
		DiscountType: entity.DiscountPercentage,
		Value:        decimal.NewFromInt(20),
		IsActive:     true,
	}
}

func TestPromoCodeRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoCodeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestPromo("SPRING20")))

	found, err := repo.FindByCode(ctx, "SPRING20")
	require.NoError(t, err)
	assert.Equal(t, entity.DiscountPercentage, found.DiscountType)
	assert.True(t, decimal.NewFromInt(20).Equal(found.Value))

	exists, err := repo.ExistsByCode(ctx, "SPRING20")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(ctx, "MISSING")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByCode(ctx, "MISSING")
	assert.ErrorIs(t, err, repository.ErrPromoCodeNotFound)

	assert.ErrorIs(t, repo.Create(ctx, newTestPromo("SPRING20")), repository.ErrDuplicatePromoCode)
}

func TestPromoCodeRepository_UpdateWritesFalse(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoCodeRepository(db)
	ctx := context.Background()

	promo := newTestPromo("SUMMER")
	require.NoError(t, repo.Create(ctx, promo))

	promo.IsActive = false
	require.NoError(t, repo.Update(ctx, promo))

	found, err := repo.FindByID(ctx, promo.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPromoCodeRepository_IncrementUsage(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoCodeRepository(db)
	ctx := context.Background()

	promo := newTestPromo("REDEEM")
	require.NoError(t, repo.Create(ctx, promo))

	require.NoError(t, repo.IncrementUsage(ctx, promo.ID))
	require.NoError(t, repo.IncrementUsage(ctx, promo.ID))

	found, err := repo.FindByID(ctx, promo.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.UsedCount)

	// Update never touches used_count.
	found.Description = "two redemptions"
	found.UsedCount = 0
	require.NoError(t, repo.Update(ctx, found))

	found, err = repo.FindByID(ctx, promo.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, found.UsedCount)
	assert.Equal(t, "two redemptions", found.Description)
}

func TestPromoCodeRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPromoCodeRepository(db)
	ctx := context.Background()

	promo := newTestPromo("GONE")
	require.NoError(t, repo.Create(ctx, promo))

	require.NoError(t, repo.Delete(ctx, promo.ID))
	assert.ErrorIs(t, repo.Delete(ctx, promo.ID), repository.ErrPromoCodeNotFound)
}
