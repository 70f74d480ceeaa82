package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/usecase"
	"sarahkyoga/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	promoCodeLength       = 8
	promoGenerateAttempts = 10
)

// normalizePromoCode matches the stored upper-case form.
func normalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// promoService implements the PromoEvaluator and PromoAdminUsecase interfaces.
type promoService struct {
	promoRepo repository.PromoCodeRepository
	orderRepo repository.OrderRepository
	now       func() time.Time
	logger    *slog.Logger
}

// PromoServiceParams holds dependencies for PromoService, injected by Fx.
type PromoServiceParams struct {
	fx.In

	PromoRepo repository.PromoCodeRepository
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

func newPromoService(params PromoServiceParams) *promoService {
	return &promoService{
		promoRepo: params.PromoRepo,
		orderRepo: params.OrderRepo,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// NewPromoEvaluator is the constructor for the promo code evaluator.
func NewPromoEvaluator(params PromoServiceParams) usecase.PromoEvaluator {
	return newPromoService(params)
}

// NewPromoAdminService is the constructor for the promo code admin operations.
func NewPromoAdminService(params PromoServiceParams) usecase.PromoAdminUsecase {
	return newPromoService(params)
}

func (srv *promoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ValidateAndPrice checks existence, active flag, expiry and usage cap in that order, then prices the total.
func (srv *promoService) ValidateAndPrice(ctx context.Context, code string, total decimal.Decimal) (*usecase.PromoQuote, error) {
	normalized := normalizePromoCode(code)
	if normalized == "" {
		return nil, domainerrors.ErrPromoNotFound.WrapMessage("empty promo code")
	}

	promo, err := srv.promoRepo.FindByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrPromoCodeNotFound) {
			return nil, domainerrors.ErrPromoNotFound.WrapMessage(normalized)
		}

		return nil, errors.Wrap(err, "failed to find promo code")
	}

	switch promo.Rejection(srv.now()) {
	case entity.PromoInactive:
		return nil, domainerrors.ErrPromoInactive.WrapMessage(normalized)
	case entity.PromoExpired:
		return nil, domainerrors.ErrPromoExpired.WrapMessage(normalized)
	case entity.PromoLimitReached:
		return nil, domainerrors.ErrPromoLimitReached.WrapMessage(normalized)
	}

	discount, newTotal := promo.Apply(total)

	return &usecase.PromoQuote{
		PromoCode: promo,
		Discount:  discount,
		NewTotal:  newTotal,
	}, nil
}

// Redeem increments the usage count; the cap is not re-checked here.
func (srv *promoService) Redeem(ctx context.Context, promoID, orderID uuid.UUID) error {
	if err := srv.promoRepo.IncrementUsage(ctx, promoID); err != nil {
		return errors.Wrap(err, "failed to redeem promo code")
	}
	srv.log(ctx).Info("Promo code redeemed", slog.Any("promoID", promoID), slog.Any("orderID", orderID))

	return nil
}

// Create stores a new promo code, generating the code when none is given.
func (srv *promoService) Create(ctx context.Context, input *usecase.CreatePromoCodeInput) (*entity.PromoCode, error) {
	if err := validateDiscount(input.DiscountType, input.Value); err != nil {
		return nil, err
	}

	code := normalizePromoCode(input.Code)
	if code == "" {
		generated, err := srv.generateCode(ctx)
		if err != nil {
			return nil, err
		}
		code = generated
	}

	promo := &entity.PromoCode{
		Code:         code,
		DiscountType: input.DiscountType,
		Value:        input.Value,
		MaxUses:      input.MaxUses,
		ExpiresAt:    input.ExpiresAt,
		IsActive:     true,
		Description:  input.Description,
	}
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}

	if err := srv.promoRepo.Create(ctx, promo); err != nil {
		if errors.Is(err, repository.ErrDuplicatePromoCode) {
			return nil, domainerrors.ErrPromoAlreadyExists.WrapMessage(code)
		}

		return nil, errors.Wrap(err, "failed to create promo code")
	}
	srv.log(ctx).Info("Promo code created", slog.String("code", promo.Code), slog.Any("type", promo.DiscountType))

	return promo, nil
}

func (srv *promoService) generateCode(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= promoGenerateAttempts; attempt++ {
		code, err := util.RandomCode(promoCodeLength, util.CodeAlphabet)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate promo code")
		}

		exists, err := srv.promoRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", errors.Wrap(err, "failed to check promo code")
		}
		if !exists {
			return code, nil
		}
		srv.log(ctx).Debug("Generated promo code collided", slog.Int("attempt", attempt))
	}

	return "", domainerrors.ErrPromoCodeGeneration.WrapMessage("all attempts collided")
}

// Update applies the provided fields.
func (srv *promoService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdatePromoCodeInput) (*entity.PromoCode, error) {
	promo, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DiscountType != nil {
		promo.DiscountType = *input.DiscountType
	}
	if input.Value != nil {
		promo.Value = *input.Value
	}
	if input.ClearMaxUses {
		promo.MaxUses = nil
	} else if input.MaxUses != nil {
		promo.MaxUses = input.MaxUses
	}
	if input.ClearExpiry {
		promo.ExpiresAt = nil
	} else if input.ExpiresAt != nil {
		promo.ExpiresAt = input.ExpiresAt
	}
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}
	if input.Description != nil {
		promo.Description = *input.Description
	}

	if err := validateDiscount(promo.DiscountType, promo.Value); err != nil {
		return nil, err
	}

	if err := srv.save(ctx, promo); err != nil {
		return nil, err
	}

	return promo, nil
}

// Deactivate turns the code off while keeping it for order history.
func (srv *promoService) Deactivate(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error) {
	promo, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	promo.IsActive = false

	if err := srv.save(ctx, promo); err != nil {
		return nil, err
	}

	return promo, nil
}

func (srv *promoService) save(ctx context.Context, promo *entity.PromoCode) error {
	if err := srv.promoRepo.Update(ctx, promo); err != nil {
		if errors.Is(err, repository.ErrPromoCodeNotFound) {
			return domainerrors.ErrPromoNotFound.WrapMessage(promo.ID.String())
		}

		return errors.Wrap(err, "failed to update promo code")
	}

	return nil
}

// Delete removes a code that no order references.
func (srv *promoService) Delete(ctx context.Context, id uuid.UUID) error {
	count, err := srv.orderRepo.CountByPromoCode(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count orders for promo code")
	}
	if count > 0 {
		srv.log(ctx).Warn("Refused to delete referenced promo code", slog.Any("promoID", id), slog.Int64("orders", count))

		return domainerrors.ErrPromoInUse.WrapMessage(id.String())
	}

	if err := srv.promoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPromoCodeNotFound) {
			return domainerrors.ErrPromoNotFound.WrapMessage(id.String())
		}

		return errors.Wrap(err, "failed to delete promo code")
	}

	return nil
}

func (srv *promoService) Get(ctx context.Context, id uuid.UUID) (*entity.PromoCode, error) {
	promo, err := srv.promoRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPromoCodeNotFound) {
			return nil, domainerrors.ErrPromoNotFound.WrapMessage(id.String())
		}

		return nil, errors.Wrap(err, "failed to find promo code")
	}

	return promo, nil
}

func (srv *promoService) List(ctx context.Context, limit, offset int) ([]*entity.PromoCode, error) {
	promos, err := srv.promoRepo.List(ctx, repository.ListParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promo codes")
	}

	return promos, nil
}

func validateDiscount(discountType entity.DiscountType, value decimal.Decimal) error {
	if !discountType.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown discount type")
	}
	if value.IsNegative() {
		return domainerrors.ErrValidationFailed.WrapMessage("discount value cannot be negative")
	}
	if discountType == entity.DiscountPercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return domainerrors.ErrValidationFailed.WrapMessage("percentage cannot exceed 100")
	}

	return nil
}
