package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestPromoCode_Apply(t *testing.T) {
	tests := []struct {
		name         string
		discountType DiscountType
		value        string
		total        string
		wantDiscount string
		wantTotal    string
	}{
		{"percentage of 100", DiscountPercentage, "20", "100", "20", "80"},
		{"percentage keeps fractions", DiscountPercentage, "15", "33.33", "4.9995", "28.3305"},
		{"fixed amount capped at total", DiscountFixedAmount, "75", "50", "50", "0"},
		{"fixed amount below total", DiscountFixedAmount, "10", "45.50", "10", "35.5"},
		{"free class", DiscountFreeClass, "0", "120", "120", "0"},
		{"percentage above 100 clamps total", DiscountPercentage, "150", "10", "15", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := &PromoCode{DiscountType: tt.discountType, Value: decimal.RequireFromString(tt.value)}

			discount, newTotal := promo.Apply(decimal.RequireFromString(tt.total))

			assert.True(t, decimal.RequireFromString(tt.wantDiscount).Equal(discount), "discount = %s", discount)
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(newTotal), "newTotal = %s", newTotal)
		})
	}
}

func TestPromoCode_Rejection(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		promo PromoCode
		want  PromoRejection
	}{
		{"active and unlimited", PromoCode{IsActive: true}, PromoAccepted},
		{"inactive wins over expired", PromoCode{IsActive: false, ExpiresAt: &past}, PromoInactive},
		{"expired even if active", PromoCode{IsActive: true, ExpiresAt: &past}, PromoExpired},
		{"expired wins over limit", PromoCode{IsActive: true, ExpiresAt: &past, MaxUses: intPtr(1), UsedCount: 1}, PromoExpired},
		{"used count equals max uses", PromoCode{IsActive: true, ExpiresAt: &future, MaxUses: intPtr(3), UsedCount: 3}, PromoLimitReached},
		{"under the cap", PromoCode{IsActive: true, MaxUses: intPtr(3), UsedCount: 2}, PromoAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.promo.Rejection(now))
		})
	}
}
