package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"sarahkyoga/config"
	"sarahkyoga/internal/domain/constants"
	"sarahkyoga/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishNewsletterEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishNewsletterEvent(context.Background(), &service.NewsletterEvent{
		RequestID:    "req-1",
		NewsletterID: "nl-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "nl-1", received.Message.Attributes["newsletter_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])
	assert.Equal(t, localSubscription, received.Subscription)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.NewsletterEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "nl-1", event.NewsletterID)
}

func newFastLocalPublisher(endpoint string) *localHTTPPublisher {
	publisher := NewLocalHTTPPublisher(endpoint, slog.New(slog.DiscardHandler)).(*localHTTPPublisher)
	publisher.backoff = time.Millisecond

	return publisher
}

func TestLocalHTTPPublisher_RetriesUnavailableWorker(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newFastLocalPublisher(server.URL).PublishNewsletterEvent(context.Background(), &service.NewsletterEvent{NewsletterID: "nl-1"})

	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantCalls int32
	}{
		{name: "unavailable exhausts attempts", status: http.StatusServiceUnavailable, wantCalls: localMaxAttempts},
		{name: "bad request is not retried", status: http.StatusBadRequest, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := newFastLocalPublisher(server.URL).PublishNewsletterEvent(context.Background(), &service.NewsletterEvent{NewsletterID: "nl-1"})

			assert.ErrorContains(t, err, strconv.Itoa(tt.status))
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestEncodeNewsletterEvent(t *testing.T) {
	msg, err := encodeNewsletterEvent(&service.NewsletterEvent{NewsletterID: "nl-9", PublishedAt: 1780000000})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"event_type":    constants.NewsletterEventType,
		"newsletter_id": "nl-9",
		"published_at":  "1780000000",
	}, msg.attributes)

	_, err = encodeNewsletterEvent(&service.NewsletterEvent{})
	assert.Error(t, err)
}

func TestNewEventPublisher_NotConfigured(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	err = publisher.PublishNewsletterEvent(context.Background(), &service.NewsletterEvent{NewsletterID: "nl-1"})
	assert.ErrorIs(t, err, service.ErrPublishingDisabled)
}

func TestNewEventPublisher_UnknownProvider(t *testing.T) {
	_, err := NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
		Logger: slog.New(slog.DiscardHandler),
	})
	assert.ErrorContains(t, err, "unknown pubsub provider")
}

func TestValidatePubSubConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.PubSubConfig
		wantErr string
	}{
		{name: "local", cfg: config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/pubsub/push"}},
		{name: "local without endpoint", cfg: config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint"},
		{name: "google", cfg: config.PubSubConfig{Provider: "google", ProjectID: "studio", TopicID: "newsletters"}},
		{name: "google without project", cfg: config.PubSubConfig{Provider: "google", TopicID: "newsletters"}, wantErr: "project ID"},
		{name: "google without topic", cfg: config.PubSubConfig{Provider: "google", ProjectID: "studio"}, wantErr: "topic ID"},
		{name: "unknown", cfg: config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePubSubConfig(&tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewEventPublisher_Local(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/pubsub/push"}},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	assert.IsType(t, &localHTTPPublisher{}, publisher)
	lc.RequireStart().RequireStop()
}
