package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sarahkyoga/config"
	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/domain/repository"
	mockRepo "sarahkyoga/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:       4,
			AccessTokenTTL:   time.Hour,
			PasswordResetTTL: time.Hour,
		},
		Email: &config.EmailConfig{
			Provider: "log",
			From:     "studio@example.com",
			Bcc:      "owner@example.com",
		},
	}
	cfg.HTTP.PublicBaseURL = "https://yoga.example.com"

	return cfg
}

// expectTx runs the transaction body against a fresh factory and returns its error.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func newTestProduct(name string, price string) *entity.Product {
	return &entity.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func newTestCart(userID *uuid.UUID, items ...entity.CartItem) *entity.Cart {
	cart := &entity.Cart{ID: uuid.New(), UserID: userID}
	if userID == nil {
		cart.GuestHandle = uuid.NewString()
	}
	for _, item := range items {
		item.ID = uuid.New()
		item.CartID = cart.ID
		cart.Items = append(cart.Items, item)
	}

	return cart
}

func cartLine(product *entity.Product, quantity int) entity.CartItem {
	return entity.CartItem{ProductID: product.ID, Product: product, Quantity: quantity}
}
