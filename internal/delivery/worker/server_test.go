package worker

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sarahkyoga/config"
	"sarahkyoga/internal/delivery/worker/handler"
	"sarahkyoga/internal/domain/service"
	mockUsecase "sarahkyoga/internal/mocks/usecase"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestWorkerConfig() *config.Config {
	cfg := &config.Config{Worker: &config.WorkerConfig{Port: 8081, PushPath: "/pubsub/push"}}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	return cfg
}

func TestNewServer_RequiresWorkerConfig(t *testing.T) {
	_, err := NewServer(ServerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.Error(t, err)
}

func TestWorkerRoutes(t *testing.T) {
	cfg := newTestWorkerConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deliveryUC := mockUsecase.NewMockNewsletterDeliveryUsecase(t)
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, DeliveryUC: deliveryUC})
	e := newEcho(cfg, logger, cfg.Worker.PushPath, pushHandler)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "mailworker")
	})

	t.Run("push on configured path", func(t *testing.T) {
		newsletterID := uuid.New()
		deliveryUC.EXPECT().Deliver(mock.Anything, newsletterID).
			Return(&usecase.DeliveryReport{NewsletterID: newsletterID, Recipients: 3}, nil).Once()

		data, err := json.Marshal(service.NewsletterEvent{NewsletterID: newsletterID.String()})
		require.NoError(t, err)
		var msg handler.PubSubMessage
		msg.Message.Data = base64.StdEncoding.EncodeToString(data)
		msg.Message.MessageID = "msg-1"
		body, err := json.Marshal(msg)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/pubsub/push", bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/push", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
