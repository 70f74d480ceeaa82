package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sarahkyoga/config"
	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/constants"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/domain/service"
	"sarahkyoga/internal/usecase"
	"sarahkyoga/internal/util"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const orderNumberLength = 8

const (
	defaultConfirmationSubject = "Your Sarah K Yoga order {orderId}"
	defaultConfirmationText    = "Hi {firstName},\n\nThank you for your order {orderId}. We look forward to seeing you on the mat.\n"
)

// orderFinalizer implements the OrderFinalizer interface.
type orderFinalizer struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	cartRepo       repository.CartRepository
	resolver       usecase.CartResolver
	promoEvaluator usecase.PromoEvaluator
	gateway        service.PaymentGateway
	emailSender    service.EmailSender
	notifier       service.NotificationService
	emailConfig    *config.EmailConfig
	logger         *slog.Logger
}

// OrderFinalizerParams holds dependencies for OrderFinalizer, injected by Fx.
type OrderFinalizerParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	CartRepo       repository.CartRepository
	Resolver       usecase.CartResolver
	PromoEvaluator usecase.PromoEvaluator
	Gateway        service.PaymentGateway
	EmailSender    service.EmailSender
	Notifier       service.NotificationService `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderFinalizer is the constructor for orderFinalizer.
func NewOrderFinalizer(params OrderFinalizerParams) usecase.OrderFinalizer {
	var emailConfig *config.EmailConfig
	if params.Config != nil {
		emailConfig = params.Config.Email
	}

	return &orderFinalizer{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		cartRepo:       params.CartRepo,
		resolver:       params.Resolver,
		promoEvaluator: params.PromoEvaluator,
		gateway:        params.Gateway,
		emailSender:    params.EmailSender,
		notifier:       params.Notifier,
		emailConfig:    emailConfig,
		logger:         params.Logger,
	}
}

func (f *orderFinalizer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, f.logger)
}

// Finalize converts a paid cart into an order. Only payment verification, cart checks and the
// order insert can fail the call; redemption, email, push and cart cleanup are logged on failure.
func (f *orderFinalizer) Finalize(ctx context.Context, input *usecase.FinalizeInput) (*usecase.FinalizeOutput, error) {
	logger := f.log(ctx).With(slog.String("paymentReference", input.PaymentReference))

	payment, err := f.verifyPayment(ctx, input.PaymentReference)
	if err != nil {
		return nil, err
	}

	existing, err := f.orderRepo.FindByPaymentReference(ctx, input.PaymentReference)
	if err == nil {
		logger.Info("Payment already finalized", slog.String("orderNumber", existing.OrderNumber))

		return &usecase.FinalizeOutput{Order: existing, AlreadyFinalized: true}, nil
	}
	if !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(err, "failed to check existing order")
	}

	resolved, err := f.resolver.Resolve(ctx, input.Owner, false)
	if err != nil {
		return nil, err
	}
	cart := resolved.Cart
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart.WrapMessage("nothing to finalize")
	}

	subtotal := cart.Total()
	discount, total := decimal.Zero, subtotal
	var promo *entity.PromoCode
	if code := promoCodeFor(input, payment); code != "" {
		quote, err := f.promoEvaluator.ValidateAndPrice(ctx, code, subtotal)
		if err != nil {
			logger.Warn("Promo code rejected at finalize, creating order without discount", slog.String("code", code), slog.Any("error", err))
		} else {
			promo = quote.PromoCode
			discount, total = quote.Discount, quote.NewTotal
		}
	}
	if isFreeOrderReference(input.PaymentReference) && !total.IsZero() {
		return nil, domainerrors.ErrPaymentNotCompleted.WrapMessage(
			fmt.Sprintf("order total %s is not covered by a promo code", total.StringFixed(2)))
	}

	orderNumber, err := util.RandomCode(orderNumberLength, util.CodeAlphabet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order number")
	}

	order := &entity.Order{
		OrderNumber:      orderNumber,
		PaymentReference: input.PaymentReference,
		Subtotal:         subtotal,
		Discount:         discount,
		Total:            total,
		Status:           entity.OrderPending,
		Items:            orderItemsFrom(cart),
	}
	if promo != nil {
		order.PromoCodeID = &promo.ID
	}

	var customer *entity.User
	err = f.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := f.findCustomer(ctx, repoFactory.NewUserRepository(), input, payment)
		if err != nil {
			return err
		}
		order.UserID = user.ID
		customer = user

		return repoFactory.NewOrderRepository().Create(ctx, order)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateOrder) {
			// A concurrent confirmation won the insert.
			existing, findErr := f.orderRepo.FindByPaymentReference(ctx, input.PaymentReference)
			if findErr == nil {
				return &usecase.FinalizeOutput{Order: existing, AlreadyFinalized: true}, nil
			}
		}
		logger.Error("Failed to persist order", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}
	logger.Info("Order created", slog.String("orderNumber", order.OrderNumber), slog.String("total", order.Total.StringFixed(2)))

	if promo != nil {
		if err := f.promoEvaluator.Redeem(ctx, promo.ID, order.ID); err != nil {
			logger.Error("Failed to redeem promo code", slog.Any("promoID", promo.ID), slog.Any("error", err))
		}
	}

	firstName := strings.TrimSpace(input.FirstName)
	if firstName == "" {
		firstName = customer.FirstName()
	}
	if err := f.sendConfirmation(ctx, customer.Email, firstName, order); err != nil {
		logger.Warn("Failed to send order confirmation", slog.Any("error", err))
	}

	f.notifyAdmins(ctx, order)

	if err := f.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		logger.Warn("Failed to clear cart after order", slog.Any("cartID", cart.ID), slog.Any("error", err))
	}

	return &usecase.FinalizeOutput{Order: order}, nil
}

func (f *orderFinalizer) verifyPayment(ctx context.Context, reference string) (*service.Payment, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("payment reference is required")
	}
	if isFreeOrderReference(reference) {
		// Settled against the cart total after pricing.
		return &service.Payment{Reference: reference, Status: service.PaymentStatusSucceeded, Amount: decimal.Zero}, nil
	}

	payment, err := f.gateway.RetrievePayment(ctx, reference)
	if err != nil {
		f.log(ctx).Error("Failed to retrieve payment", slog.String("paymentReference", reference), slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage("failed to retrieve payment")
	}
	if !payment.Succeeded() {
		return nil, domainerrors.ErrPaymentNotCompleted.WrapMessage(fmt.Sprintf("payment status is %q", payment.Status))
	}

	return payment, nil
}

// findCustomer returns the signed-in user, or finds or provisions a guest account by email.
func (f *orderFinalizer) findCustomer(
	ctx context.Context,
	userRepo repository.UserRepository,
	input *usecase.FinalizeInput,
	payment *service.Payment,
) (*entity.User, error) {
	if input.Owner.IsAuthenticated() {
		user, err := userRepo.FindByID(ctx, *input.Owner.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load customer")
		}

		return user, nil
	}

	email := normalizeEmail(input.GuestEmail)
	if email == "" {
		email = normalizeEmail(payment.Email)
	}
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required for guest checkout")
	}

	user, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find guest customer")
	}

	user = &entity.User{
		Email: email,
		Name:  strings.TrimSpace(input.FirstName),
		Role:  entity.RoleGuest,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to provision guest customer")
	}
	f.log(ctx).Info("Provisioned guest customer", slog.Any("userID", user.ID))

	return user, nil
}

func (f *orderFinalizer) sendConfirmation(ctx context.Context, to, firstName string, order *entity.Order) error {
	template := f.confirmationTemplate(order)
	values := map[string]string{
		"firstName": firstName,
		"orderId":   order.OrderNumber,
	}

	msg := &service.EmailMessage{
		To:      to,
		Subject: util.ReplacePlaceholders(template.Subject, values),
		Text:    util.ReplacePlaceholders(template.Text, values),
		HTML:    util.ReplacePlaceholders(template.HTML, values),
	}
	if f.emailConfig != nil {
		msg.Bcc = f.emailConfig.Bcc
	}

	return f.emailSender.Send(ctx, msg)
}

// confirmationTemplate picks the template of the first item's product, then the default one.
func (f *orderFinalizer) confirmationTemplate(order *entity.Order) config.EmailTemplateConfig {
	if f.emailConfig != nil {
		if len(order.Items) > 0 {
			if tmpl, ok := f.emailConfig.Templates[order.Items[0].ProductID.String()]; ok {
				return tmpl
			}
		}
		if tmpl, ok := f.emailConfig.Templates[constants.EmailTemplateDefault]; ok {
			return tmpl
		}
	}

	return config.EmailTemplateConfig{
		Subject: defaultConfirmationSubject,
		Text:    defaultConfirmationText,
	}
}

func (f *orderFinalizer) notifyAdmins(ctx context.Context, order *entity.Order) {
	if f.notifier == nil {
		return
	}

	body := fmt.Sprintf("Order %s for $%s", order.OrderNumber, order.Total.StringFixed(2))
	data := map[string]string{
		"order_id":     order.ID.String(),
		"order_number": order.OrderNumber,
	}
	if err := f.notifier.SendTopicNotification(ctx, constants.AdminOrdersTopic, "New order", body, data); err != nil {
		f.log(ctx).Warn("Failed to notify admins of new order", slog.Any("error", err))
	}
}

func isFreeOrderReference(reference string) bool {
	return strings.HasPrefix(reference, constants.FreeOrderReferencePrefix)
}

func promoCodeFor(input *usecase.FinalizeInput, payment *service.Payment) string {
	if code := strings.TrimSpace(input.PromoCode); code != "" {
		return code
	}

	return strings.TrimSpace(payment.Metadata[constants.PaymentMetadataPromoCode])
}

// orderItemsFrom freezes the cart lines at their current prices.
func orderItemsFrom(cart *entity.Cart) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		orderItem := entity.OrderItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice(),
		}
		if item.Product != nil {
			orderItem.ProductName = item.Product.Name
			if item.VariantID != nil {
				if variant := item.Product.Variant(*item.VariantID); variant != nil {
					orderItem.ProductName += " - " + variant.Name
				}
			}
		}
		items = append(items, orderItem)
	}

	return items
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
