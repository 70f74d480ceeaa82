package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sarahkyoga/config"
	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/constants"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/service"
	mockUsecase "sarahkyoga/internal/mocks/usecase"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNewsletterDeliveryUsecase) {
	deliveryUC := mockUsecase.NewMockNewsletterDeliveryUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DeliveryUC: deliveryUC,
	}), deliveryUC
}

func newPushRequest(t *testing.T, event any) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-from-api"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func servePush(h *PushHandler, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	newsletterID := uuid.New()

	testCases := []struct {
		name           string
		deliverErr     error
		expectedStatus int
	}{
		{name: "delivered", expectedStatus: http.StatusOK},
		{name: "provider outage is retried", deliverErr: domainerrors.ErrUpstreamFailure.WrapMessage("every newsletter send failed"), expectedStatus: http.StatusServiceUnavailable},
		{name: "database error is retried", deliverErr: errors.New("connection refused"), expectedStatus: http.StatusServiceUnavailable},
		{name: "deleted newsletter is acknowledged", deliverErr: domainerrors.ErrNewsletterNotFound, expectedStatus: http.StatusOK},
		{name: "draft newsletter is acknowledged", deliverErr: domainerrors.ErrValidationFailed.WrapMessage("draft"), expectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, deliveryUC := newPushHandler(t, nil)

			call := deliveryUC.EXPECT().Deliver(mock.Anything, newsletterID).Once()
			if tc.deliverErr != nil {
				call.Return(nil, tc.deliverErr)
			} else {
				call.Return(&usecase.DeliveryReport{NewsletterID: newsletterID, Recipients: 3, Failed: 1}, nil)
			}

			rec := servePush(h, newPushRequest(t, &service.NewsletterEvent{NewsletterID: newsletterID.String()}))

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_InvalidPayloads(t *testing.T) {
	h, _ := newPushHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewBufferString(`{"message":{"data":"%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, servePush(h, req).Code)

	req = httptest.NewRequest(http.MethodPost, "/push", bytes.NewBufferString(`{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("not json"))+`"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	assert.Equal(t, http.StatusBadRequest, servePush(h, req).Code)

	// A malformed id can never be delivered, so the message is acknowledged
	rec := servePush(h, newPushRequest(t, &service.NewsletterEvent{NewsletterID: "not-a-uuid"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_PropagatesRequestID(t *testing.T) {
	h, deliveryUC := newPushHandler(t, nil)
	newsletterID := uuid.New()

	deliveryUC.EXPECT().Deliver(mock.MatchedBy(func(ctx context.Context) bool {
		return deliverycontext.GetRequestIDFromContext(ctx) == "req-from-api"
	}), newsletterID).Return(&usecase.DeliveryReport{NewsletterID: newsletterID}, nil).Once()

	rec := servePush(h, newPushRequest(t, &service.NewsletterEvent{NewsletterID: newsletterID.String(), RequestID: "req-from-event"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	h, deliveryUC := newPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	newsletterID := uuid.New()
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "google-signed" {
			return nil, errors.New("bad signature")
		}
		assert.Equal(t, "http://example.com/push", audience)

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	rec := servePush(h, newPushRequest(t, &service.NewsletterEvent{NewsletterID: newsletterID.String()}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	deliveryUC.EXPECT().Deliver(mock.Anything, newsletterID).Return(&usecase.DeliveryReport{NewsletterID: newsletterID}, nil).Once()

	req := newPushRequest(t, &service.NewsletterEvent{NewsletterID: newsletterID.String()})
	req.Header.Set(echo.HeaderAuthorization, "Bearer google-signed")
	rec = servePush(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
