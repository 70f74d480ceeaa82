package google

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"sarahkyoga/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestService(validate validateFunc) *AuthServiceImpl {
	return &AuthServiceImpl{
		clientID: "test-client-id",
		validate: validate,
		logger:   slog.New(slog.DiscardHandler),
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	var gotAudience string
	svc := newTestService(func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{
			Issuer:  "https://accounts.google.com",
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":          "student@example.com",
				"name":           "Sam Student",
				"email_verified": true,
			},
		}, nil
	})

	user, err := svc.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "test-client-id", gotAudience)
	assert.Equal(t, "google-sub-1", user.ID)
	assert.Equal(t, "student@example.com", user.Email)
	assert.Equal(t, "Sam Student", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestAuthService_VerifyIDToken_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload *idtoken.Payload
		err     error
	}{
		{name: "validator error", err: errors.New("bad signature")},
		{name: "wrong issuer", payload: &idtoken.Payload{Issuer: "evil.example.com", Claims: map[string]any{"email": "a@b.c", "email_verified": true}}},
		{name: "unverified email", payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email": "a@b.c", "email_verified": "false"}}},
		{name: "missing email", payload: &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(func(context.Context, string, string) (*idtoken.Payload, error) {
				return tt.payload, tt.err
			})

			user, err := svc.VerifyIDToken(context.Background(), "token")
			assert.Error(t, err)
			assert.Nil(t, user)
		})
	}
}

func TestAuthService_NotConfigured(t *testing.T) {
	svc := NewAuthService(&config.Config{}, slog.New(slog.DiscardHandler))

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.ErrorContains(t, err, "not configured")
}
