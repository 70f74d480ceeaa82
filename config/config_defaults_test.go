package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Stripe:   &StripeConfig{},
		Calendar: &CalendarConfig{CalendarID: "primary"},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Hour, cfg.Auth.PasswordResetTTL)
	assert.Equal(t, defaultPasswordMinLength, cfg.Auth.PasswordMinLength)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, defaultCalendarTimeZone, cfg.Calendar.TimeZone)
	assert.Equal(t, &WorkerConfig{Port: 8081, PushPath: "/pubsub/push"}, cfg.Worker)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{PasswordResetTTL: 15 * time.Minute, PasswordMinLength: 12},
		Stripe: &StripeConfig{Currency: "eur"},
		Worker: &WorkerConfig{Port: 9090, PushPath: "/push"},
	}
	cfg.HTTP.MaxRequestBodySize = "512KB"

	applyDefaults(cfg)

	assert.Equal(t, "512KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 15*time.Minute, cfg.Auth.PasswordResetTTL)
	assert.Equal(t, 12, cfg.Auth.PasswordMinLength)
	assert.Equal(t, "eur", cfg.Stripe.Currency)
	assert.Equal(t, 9090, cfg.Worker.Port)
	assert.Equal(t, "/push", cfg.Worker.PushPath)
	assert.Nil(t, cfg.Calendar)
}
