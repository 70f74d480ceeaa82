package handler

import (
	"time"

	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// AuthResponse is returned by every sign-in route.
type AuthResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

// ProductVariantResponse is a priced option of a product.
type ProductVariantResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID              uuid.UUID                `json:"id"`
	Name            string                   `json:"name"`
	Description     string                   `json:"description"`
	Price           decimal.Decimal          `json:"price"`
	DurationMinutes *int                     `json:"durationMinutes,omitempty"`
	Variants        []ProductVariantResponse `json:"variants"`
}

func newProductResponse(product *entity.Product) *ProductResponse {
	if product == nil {
		return nil
	}

	variants := make([]ProductVariantResponse, len(product.Variants))
	for i, v := range product.Variants {
		variants[i] = ProductVariantResponse{ID: v.ID, Name: v.Name, Price: v.Price, Quantity: v.Quantity}
	}

	return &ProductResponse{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		Price:           product.Price,
		DurationMinutes: product.DurationMinutes,
		Variants:        variants,
	}
}

// CartItemResponse is one cart line priced at current prices.
type CartItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"productId"`
	VariantID   *uuid.UUID      `json:"variantId,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// CartResponse is the resolved cart with its subtotal.
type CartResponse struct {
	ID          uuid.UUID          `json:"id"`
	GuestHandle string             `json:"guestHandle,omitempty"`
	Items       []CartItemResponse `json:"items"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
}

func newCartResponse(cart *entity.Cart) *CartResponse {
	items := make([]CartItemResponse, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		name := ""
		if item.Product != nil {
			name = item.Product.Name
			if item.VariantID != nil {
				if v := item.Product.Variant(*item.VariantID); v != nil {
					name += " - " + v.Name
				}
			}
		}
		items[i] = CartItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice(),
			LineTotal:   item.LineTotal(),
		}
	}

	return &CartResponse{
		ID:          cart.ID,
		GuestHandle: cart.GuestHandle,
		Items:       items,
		Subtotal:    cart.Total(),
	}
}

// PricingResponse is the checkout total with the promo applied.
type PricingResponse struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	PromoCode string          `json:"promoCode,omitempty"`
}

func newPricingResponse(pricing usecase.CheckoutPricing) PricingResponse {
	return PricingResponse{
		Subtotal:  pricing.Subtotal,
		Discount:  pricing.Discount,
		Total:     pricing.Total,
		PromoCode: pricing.PromoCode,
	}
}

// OrderItemResponse is a frozen order line.
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"productId"`
	VariantID   *uuid.UUID      `json:"variantId,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber string              `json:"orderNumber"`
	UserID      uuid.UUID           `json:"userId"`
	Status      entity.OrderStatus  `json:"status"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	Discount    decimal.Decimal     `json:"discount"`
	Total       decimal.Decimal     `json:"total"`
	PromoCodeID *uuid.UUID          `json:"promoCodeId,omitempty"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func newOrderResponse(order *entity.Order) *OrderResponse {
	if order == nil {
		return nil
	}

	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	return &OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Status:      order.Status,
		Subtotal:    order.Subtotal,
		Discount:    order.Discount,
		Total:       order.Total,
		PromoCodeID: order.PromoCodeID,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}

func newOrderResponses(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, len(orders))
	for i, order := range orders {
		out[i] = newOrderResponse(order)
	}

	return out
}

// PromoCodeResponse is the admin view of a promo code.
type PromoCodeResponse struct {
	ID           uuid.UUID           `json:"id"`
	Code         string              `json:"code"`
	DiscountType entity.DiscountType `json:"discountType"`
	Value        decimal.Decimal     `json:"value"`
	MaxUses      *int                `json:"maxUses,omitempty"`
	UsedCount    int                 `json:"usedCount"`
	ExpiresAt    *time.Time          `json:"expiresAt,omitempty"`
	IsActive     bool                `json:"isActive"`
	Description  string              `json:"description,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func newPromoCodeResponse(promo *entity.PromoCode) *PromoCodeResponse {
	if promo == nil {
		return nil
	}

	return &PromoCodeResponse{
		ID:           promo.ID,
		Code:         promo.Code,
		DiscountType: promo.DiscountType,
		Value:        promo.Value,
		MaxUses:      promo.MaxUses,
		UsedCount:    promo.UsedCount,
		ExpiresAt:    promo.ExpiresAt,
		IsActive:     promo.IsActive,
		Description:  promo.Description,
		CreatedAt:    promo.CreatedAt,
	}
}

// NewsletterResponse is a newsletter draft or issue.
type NewsletterResponse struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Content     string                 `json:"content"`
	Style       entity.NewsletterStyle `json:"style"`
	IsDraft     bool                   `json:"isDraft"`
	PublishedAt *time.Time             `json:"publishedAt,omitempty"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func newNewsletterResponse(newsletter *entity.Newsletter) *NewsletterResponse {
	if newsletter == nil {
		return nil
	}

	return &NewsletterResponse{
		ID:          newsletter.ID,
		Title:       newsletter.Title,
		Content:     newsletter.Content,
		Style:       newsletter.Style,
		IsDraft:     newsletter.IsDraft,
		PublishedAt: newsletter.PublishedAt,
		UpdatedAt:   newsletter.UpdatedAt,
	}
}

// SubscriberResponse is a newsletter recipient.
type SubscriberResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func newSubscriberResponse(subscriber *entity.Subscriber) *SubscriberResponse {
	if subscriber == nil {
		return nil
	}

	return &SubscriberResponse{
		ID:        subscriber.ID,
		Email:     subscriber.Email,
		IsActive:  subscriber.IsActive,
		CreatedAt: subscriber.CreatedAt,
	}
}

// WorkshopResponse is a workshop entry.
type WorkshopResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Slug        string                `json:"slug"`
	Description string                `json:"description"`
	Location    string                `json:"location"`
	StartsAt    time.Time             `json:"startsAt"`
	EndsAt      time.Time             `json:"endsAt"`
	Price       decimal.Decimal       `json:"price"`
	Capacity    int                   `json:"capacity"`
	Status      entity.WorkshopStatus `json:"status"`
	Version     int                   `json:"version"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

func newWorkshopResponse(workshop *entity.Workshop) *WorkshopResponse {
	if workshop == nil {
		return nil
	}

	return &WorkshopResponse{
		ID:          workshop.ID,
		Title:       workshop.Title,
		Slug:        workshop.Slug,
		Description: workshop.Description,
		Location:    workshop.Location,
		StartsAt:    workshop.StartsAt,
		EndsAt:      workshop.EndsAt,
		Price:       workshop.Price,
		Capacity:    workshop.Capacity,
		Status:      workshop.Status,
		Version:     workshop.Version,
		UpdatedAt:   workshop.UpdatedAt,
	}
}

func newWorkshopResponses(workshops []*entity.Workshop) []*WorkshopResponse {
	out := make([]*WorkshopResponse, len(workshops))
	for i, workshop := range workshops {
		out[i] = newWorkshopResponse(workshop)
	}

	return out
}

// WorkshopVersionResponse is one snapshot in a workshop's history.
type WorkshopVersionResponse struct {
	Version   int                   `json:"version"`
	Status    entity.WorkshopStatus `json:"status"`
	Snapshot  *WorkshopResponse     `json:"snapshot"`
	CreatedAt time.Time             `json:"createdAt"`
}

// BookingResponse confirms a private session.
type BookingResponse struct {
	Slot    entity.TimeRange `json:"slot"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	EventID string           `json:"eventId"`
	Link    string           `json:"link,omitempty"`
}
