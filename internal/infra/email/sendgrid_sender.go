// Package email implements the domain EmailSender.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sarahkyoga/config"
	"sarahkyoga/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultSendGridBaseURL = "https://api.sendgrid.com"
	sendGridSendPath       = "/v3/mail/send"
)

type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridPersonalization struct {
	To  []sendGridAddress `json:"to"`
	Bcc []sendGridAddress `json:"bcc,omitempty"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

// sendGridSender posts messages to the SendGrid v3 mail API
type sendGridSender struct {
	apiKey     string
	endpoint   string
	from       sendGridAddress
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSendGridSender creates an EmailSender for the SendGrid v3 API
func NewSendGridSender(cfg *config.EmailConfig, logger *slog.Logger) (service.EmailSender, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("sendgrid api key is required")
	}
	if cfg.From == "" {
		return nil, errors.New("sender address is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultSendGridBaseURL
	}

	return &sendGridSender{
		apiKey:   cfg.APIKey,
		endpoint: strings.TrimRight(baseURL, "/") + sendGridSendPath,
		from:     sendGridAddress{Email: cfg.From, Name: cfg.FromName},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}, nil
}

// Send delivers one message. SendGrid answers 202 when the message is accepted.
func (s *sendGridSender) Send(ctx context.Context, msg *service.EmailMessage) error {
	personalization := sendGridPersonalization{To: []sendGridAddress{{Email: msg.To}}}
	if msg.Bcc != "" && !strings.EqualFold(msg.Bcc, msg.To) {
		personalization.Bcc = []sendGridAddress{{Email: msg.Bcc}}
	}

	payload := sendGridRequest{
		Personalizations: []sendGridPersonalization{personalization},
		From:             s.from,
		Subject:          msg.Subject,
	}
	// text/plain must come before text/html
	if msg.Text != "" {
		payload.Content = append(payload.Content, sendGridContent{Type: "text/plain", Value: msg.Text})
	}
	if msg.HTML != "" {
		payload.Content = append(payload.Content, sendGridContent{Type: "text/html", Value: msg.HTML})
	}
	if len(payload.Content) == 0 {
		return errors.New("email has no content")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "sendgrid request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("sendgrid returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	s.logger.Debug("[SendGrid] Email accepted",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return nil
}
