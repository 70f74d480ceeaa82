package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription     = "projects/local/subscriptions/newsletter-delivery"
	localMaxAttempts      = 3
	localRetryBaseBackoff = 500 * time.Millisecond
)

// localHTTPPublisher pushes events straight to the mail worker in the Pub/Sub push format.
// Like Pub/Sub it redelivers when the worker answers 5xx, a bounded number of times.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	backoff    time.Duration
	logger     *slog.Logger
}

// PubSubPushMessage is the body Pub/Sub sends to push subscriptions
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates the development publisher for endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		backoff: localRetryBaseBackoff,
		logger:  logger,
	}
}

// PublishNewsletterEvent delivers the event to the worker, retrying on 5xx and transport errors
func (p *localHTTPPublisher) PublishNewsletterEvent(ctx context.Context, event *service.NewsletterEvent) error {
	msg, err := encodeNewsletterEvent(event)
	if err != nil {
		return err
	}

	pushMsg := PubSubPushMessage{Subscription: localSubscription}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	pushMsg.Message.Attributes = msg.attributes
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	logger := p.logger.With(slog.String("newsletter_id", event.NewsletterID), slog.String("message_id", pushMsg.Message.MessageID))

	var lastErr error
	for attempt := 1; attempt <= localMaxAttempts; attempt++ {
		retry, err := p.push(ctx, body, event.RequestID)
		if err == nil {
			logger.Info("Newsletter event pushed to worker", slog.Int("attempt", attempt))

			return nil
		}
		lastErr = err
		if !retry || attempt == localMaxAttempts {
			break
		}

		logger.Warn("Worker push failed, retrying", slog.Int("attempt", attempt), slog.Any("error", err))
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.backoff * time.Duration(attempt)):
		}
	}

	return lastErr
}

// push sends one delivery attempt and reports whether a failure is worth retrying
func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode >= http.StatusInternalServerError,
			errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	return false, nil
}

// Close is a no-op; the HTTP client holds no resources
func (p *localHTTPPublisher) Close() error {
	return nil
}
