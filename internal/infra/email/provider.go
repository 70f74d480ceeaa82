package email

import (
	"log/slog"

	"sarahkyoga/config"
	"sarahkyoga/internal/domain/constants"
	"sarahkyoga/internal/domain/service"

	"github.com/pkg/errors"
)

// NewEmailSender creates an EmailSender based on configuration
func NewEmailSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	if cfg.Email == nil || cfg.Email.Provider == "" {
		logger.Info("Email not configured, using log sender")

		return NewLogSender(logger), nil
	}

	switch cfg.Email.Provider {
	case constants.EmailProviderSendGrid:
		logger.Info("Using SendGrid email sender", slog.String("from", cfg.Email.From))

		return NewSendGridSender(cfg.Email, logger)
	case constants.EmailProviderLog:
		return NewLogSender(logger), nil
	default:
		return nil, errors.Errorf("unknown email provider: %s", cfg.Email.Provider)
	}
}
