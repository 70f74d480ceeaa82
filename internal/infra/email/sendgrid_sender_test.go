package email

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sarahkyoga/config"
	"sarahkyoga/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendGridSender_Send(t *testing.T) {
	var got sendGridRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, sendGridSendPath, r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender, err := NewSendGridSender(&config.EmailConfig{
		APIKey:   "SG.key",
		BaseURL:  server.URL,
		From:     "hello@studio.test",
		FromName: "Studio",
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	err = sender.Send(context.Background(), &service.EmailMessage{
		To:      "student@example.com",
		Bcc:     "owner@studio.test",
		Subject: "Your order",
		Text:    "Thanks",
		HTML:    "<p>Thanks</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer SG.key", auth)
	assert.Equal(t, "hello@studio.test", got.From.Email)
	require.Len(t, got.Personalizations, 1)
	assert.Equal(t, "student@example.com", got.Personalizations[0].To[0].Email)
	assert.Equal(t, "owner@studio.test", got.Personalizations[0].Bcc[0].Email)
	require.Len(t, got.Content, 2)
	assert.Equal(t, "text/plain", got.Content[0].Type)
	assert.Equal(t, "text/html", got.Content[1].Type)
}

func TestSendGridSender_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer server.Close()

	sender, err := NewSendGridSender(&config.EmailConfig{APIKey: "SG.key", BaseURL: server.URL, From: "a@b.c"}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	err = sender.Send(context.Background(), &service.EmailMessage{To: "x@y.z", Subject: "s", Text: "t"})
	assert.ErrorContains(t, err, "401")
	assert.ErrorContains(t, err, "bad key")
}

func TestSendGridSender_NoContent(t *testing.T) {
	sender, err := NewSendGridSender(&config.EmailConfig{APIKey: "k", From: "a@b.c"}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	assert.Error(t, sender.Send(context.Background(), &service.EmailMessage{To: "x@y.z"}))
}

func TestNewEmailSender(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	sender, err := NewEmailSender(&config.Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &logSender{}, sender)

	_, err = NewEmailSender(&config.Config{Email: &config.EmailConfig{Provider: "smtp"}}, logger)
	assert.Error(t, err)

	_, err = NewEmailSender(&config.Config{Email: &config.EmailConfig{Provider: "sendgrid"}}, logger)
	assert.Error(t, err)
}
