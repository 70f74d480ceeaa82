package impl

import (
	"context"
	"log/slog"

	"sarahkyoga/config"
	deliverycontext "sarahkyoga/internal/delivery/context"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/domain/service"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// newsletterDeliveryService implements the NewsletterDeliveryUsecase interface.
type newsletterDeliveryService struct {
	newsletterRepo repository.NewsletterRepository
	subscriberRepo repository.SubscriberRepository
	emailSender    service.EmailSender
	renderer       *newsletterRenderer
	logger         *slog.Logger
}

// NewNewsletterDeliveryService is the constructor for newsletterDeliveryService.
func NewNewsletterDeliveryService(
	newsletterRepo repository.NewsletterRepository,
	subscriberRepo repository.SubscriberRepository,
	emailSender service.EmailSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NewsletterDeliveryUsecase {
	return &newsletterDeliveryService{
		newsletterRepo: newsletterRepo,
		subscriberRepo: subscriberRepo,
		emailSender:    emailSender,
		renderer:       newNewsletterRenderer(cfg),
		logger:         logger,
	}
}

// Deliver sends the published newsletter to each active subscriber. Individual failures are
// counted; the call fails with an upstream error only when every send failed.
func (srv *newsletterDeliveryService) Deliver(ctx context.Context, newsletterID uuid.UUID) (*usecase.DeliveryReport, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.Any("newsletterID", newsletterID))

	newsletter, err := findNewsletter(ctx, srv.newsletterRepo, newsletterID)
	if err != nil {
		return nil, err
	}
	if newsletter.IsDraft {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("draft newsletters are not delivered")
	}

	subscribers, err := srv.subscriberRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	report := &usecase.DeliveryReport{NewsletterID: newsletterID, Recipients: len(subscribers)}
	for _, subscriber := range subscribers {
		if err := srv.emailSender.Send(ctx, srv.renderer.message(newsletter, subscriber.Email)); err != nil {
			report.Failed++
			logger.Warn("Failed to send newsletter", slog.Any("subscriberID", subscriber.ID), slog.Any("error", err))
		}
	}

	if report.Recipients > 0 && report.Failed == report.Recipients {
		return report, domainerrors.ErrUpstreamFailure.WrapMessage("every newsletter send failed")
	}
	logger.Info("Newsletter delivery finished", slog.Int("recipients", report.Recipients), slog.Int("failed", report.Failed))

	return report, nil
}
