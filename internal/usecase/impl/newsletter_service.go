package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"sarahkyoga/config"
	deliverycontext "sarahkyoga/internal/delivery/context"
	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/domain/service"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// newsletterService implements the NewsletterUsecase interface.
type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	subscriberRepo repository.SubscriberRepository
	publisher      service.EventPublisher
	delivery       usecase.NewsletterDeliveryUsecase
	renderer       *newsletterRenderer
	emailSender    service.EmailSender
	now            func() time.Time
	logger         *slog.Logger
}

// NewsletterServiceParams holds dependencies for NewsletterService, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	NewsletterRepo repository.NewsletterRepository
	SubscriberRepo repository.SubscriberRepository
	Publisher      service.EventPublisher
	Delivery       usecase.NewsletterDeliveryUsecase
	EmailSender    service.EmailSender
	Config         *config.Config
	Logger         *slog.Logger
}

// NewNewsletterService is the constructor for newsletterService.
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		newsletterRepo: params.NewsletterRepo,
		subscriberRepo: params.SubscriberRepo,
		publisher:      params.Publisher,
		delivery:       params.Delivery,
		renderer:       newNewsletterRenderer(params.Config),
		emailSender:    params.EmailSender,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *newsletterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *newsletterService) Create(ctx context.Context, input *usecase.NewsletterInput) (*entity.Newsletter, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("newsletter title is required")
	}

	newsletter := &entity.Newsletter{
		Title:   title,
		Content: input.Content,
		Style:   input.Style,
		IsDraft: true,
	}
	if err := srv.newsletterRepo.Create(ctx, newsletter); err != nil {
		return nil, errors.Wrap(err, "failed to create newsletter")
	}

	return newsletter, nil
}

// Update edits a draft; published newsletters are read-only.
func (srv *newsletterService) Update(ctx context.Context, id uuid.UUID, input *usecase.NewsletterInput) (*entity.Newsletter, error) {
	newsletter, err := srv.draft(ctx, id)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("newsletter title is required")
	}
	newsletter.Title = title
	newsletter.Content = input.Content
	newsletter.Style = input.Style

	if err := srv.newsletterRepo.Update(ctx, newsletter); err != nil {
		return nil, errors.Wrap(err, "failed to update newsletter")
	}

	return newsletter, nil
}

// Delete removes a draft.
func (srv *newsletterService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.draft(ctx, id); err != nil {
		return err
	}

	return errors.Wrap(srv.newsletterRepo.Delete(ctx, id), "failed to delete newsletter")
}

func (srv *newsletterService) Get(ctx context.Context, id uuid.UUID) (*entity.Newsletter, error) {
	return findNewsletter(ctx, srv.newsletterRepo, id)
}

func (srv *newsletterService) List(ctx context.Context, limit, offset int) ([]*entity.Newsletter, error) {
	newsletters, err := srv.newsletterRepo.List(ctx, repository.ListParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list newsletters")
	}

	return newsletters, nil
}

// Publish stamps the newsletter and hands delivery to the worker, or delivers inline when
// publishing is unavailable.
func (srv *newsletterService) Publish(ctx context.Context, id uuid.UUID) (*entity.Newsletter, error) {
	newsletter, err := srv.draft(ctx, id)
	if err != nil {
		return nil, err
	}

	publishedAt := srv.now()
	newsletter.IsDraft = false
	newsletter.PublishedAt = &publishedAt
	if err := srv.newsletterRepo.Update(ctx, newsletter); err != nil {
		return nil, errors.Wrap(err, "failed to publish newsletter")
	}

	event := &service.NewsletterEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		NewsletterID: newsletter.ID.String(),
		PublishedAt:  publishedAt.Unix(),
	}
	err = srv.publisher.PublishNewsletterEvent(ctx, event)
	if err == nil {
		srv.log(ctx).Info("Newsletter queued for delivery", slog.Any("newsletterID", newsletter.ID))

		return newsletter, nil
	}

	if errors.Is(err, service.ErrPublishingDisabled) {
		srv.log(ctx).Info("Publishing disabled, delivering newsletter inline", slog.Any("newsletterID", newsletter.ID))
	} else {
		srv.log(ctx).Error("Failed to queue newsletter, delivering inline", slog.Any("newsletterID", newsletter.ID), slog.Any("error", err))
	}

	report, err := srv.delivery.Deliver(ctx, newsletter.ID)
	if err != nil {
		srv.log(ctx).Error("Inline newsletter delivery failed", slog.Any("newsletterID", newsletter.ID), slog.Any("error", err))
	} else {
		srv.log(ctx).Info("Newsletter delivered", slog.Int("recipients", report.Recipients), slog.Int("failed", report.Failed))
	}

	return newsletter, nil
}

// SendTest emails the newsletter, draft or not, to a single address.
func (srv *newsletterService) SendTest(ctx context.Context, id uuid.UUID, email string) error {
	newsletter, err := findNewsletter(ctx, srv.newsletterRepo, id)
	if err != nil {
		return err
	}

	msg := srv.renderer.message(newsletter, normalizeEmail(email))
	msg.Subject = "[Test] " + msg.Subject
	if err := srv.emailSender.Send(ctx, msg); err != nil {
		srv.log(ctx).Error("Failed to send test newsletter", slog.Any("newsletterID", id), slog.Any("error", err))

		return domainerrors.ErrUpstreamFailure.WrapMessage("failed to send test email")
	}

	return nil
}

// Subscribe is idempotent and re-activates a previous subscription.
func (srv *newsletterService) Subscribe(ctx context.Context, email string) (*entity.Subscriber, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}

	subscriber, err := srv.subscriberRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if subscriber.IsActive {
			return subscriber, nil
		}
		subscriber.IsActive = true
		if err := srv.subscriberRepo.Update(ctx, subscriber); err != nil {
			return nil, errors.Wrap(err, "failed to re-activate subscriber")
		}

		return subscriber, nil
	case errors.Is(err, repository.ErrSubscriberNotFound):
		subscriber = &entity.Subscriber{Email: email, IsActive: true}
		if err := srv.subscriberRepo.Create(ctx, subscriber); err != nil {
			return nil, errors.Wrap(err, "failed to create subscriber")
		}

		return subscriber, nil
	default:
		return nil, errors.Wrap(err, "failed to find subscriber")
	}
}

func (srv *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	subscriber, err := srv.subscriberRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrSubscriberNotFound) {
			return domainerrors.ErrSubscriberNotFound.WrapMessage("unknown email")
		}

		return errors.Wrap(err, "failed to find subscriber")
	}
	if !subscriber.IsActive {
		return nil
	}

	subscriber.IsActive = false

	return errors.Wrap(srv.subscriberRepo.Update(ctx, subscriber), "failed to deactivate subscriber")
}

func (srv *newsletterService) ListSubscribers(ctx context.Context, limit, offset int) ([]*entity.Subscriber, error) {
	subscribers, err := srv.subscriberRepo.List(ctx, repository.ListParams{Limit: limit, Offset: offset})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	return subscribers, nil
}

// draft loads the newsletter and rejects it once published.
func (srv *newsletterService) draft(ctx context.Context, id uuid.UUID) (*entity.Newsletter, error) {
	newsletter, err := findNewsletter(ctx, srv.newsletterRepo, id)
	if err != nil {
		return nil, err
	}
	if !newsletter.IsDraft {
		return nil, domainerrors.ErrNewsletterPublished.WrapMessage(id.String())
	}

	return newsletter, nil
}

func findNewsletter(ctx context.Context, repo repository.NewsletterRepository, id uuid.UUID) (*entity.Newsletter, error) {
	newsletter, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNewsletterNotFound) {
			return nil, domainerrors.ErrNewsletterNotFound.WrapMessage(id.String())
		}

		return nil, errors.Wrap(err, "failed to find newsletter")
	}

	return newsletter, nil
}
