package email

import (
	"context"
	"log/slog"

	"sarahkyoga/internal/domain/service"
)

// logSender writes messages to the log instead of delivering them, for local development
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates an EmailSender that only logs
func NewLogSender(logger *slog.Logger) service.EmailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, msg *service.EmailMessage) error {
	s.logger.InfoContext(ctx, "[LogEmail] Email not delivered, logging only",
		slog.String("to", msg.To),
		slog.String("bcc", msg.Bcc),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)

	return nil
}
