package impl

import (
	"context"
	"strings"
	"testing"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	"sarahkyoga/internal/domain/repository"
	"sarahkyoga/internal/domain/service"
	mockRepo "sarahkyoga/internal/mocks/repository"
	mockSvc "sarahkyoga/internal/mocks/service"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryServiceFixtures struct {
	service        usecase.NewsletterDeliveryUsecase
	newsletterRepo *mockRepo.MockNewsletterRepository
	subscriberRepo *mockRepo.MockSubscriberRepository
	emailSender    *mockSvc.MockEmailSender
}

func createTestDeliveryService(t *testing.T) deliveryServiceFixtures {
	fx := deliveryServiceFixtures{
		newsletterRepo: mockRepo.NewMockNewsletterRepository(t),
		subscriberRepo: mockRepo.NewMockSubscriberRepository(t),
		emailSender:    mockSvc.NewMockEmailSender(t),
	}
	fx.service = NewNewsletterDeliveryService(fx.newsletterRepo, fx.subscriberRepo, fx.emailSender, newTestConfig(), newDiscardLogger())

	return fx
}

func publishedNewsletter() *entity.Newsletter {
	newsletter := draftNewsletter()
	newsletter.IsDraft = false
	newsletter.PublishedAt = &newsletterTestNow

	return newsletter
}

func subscribers(emails ...string) []*entity.Subscriber {
	out := make([]*entity.Subscriber, 0, len(emails))
	for _, email := range emails {
		out = append(out, &entity.Subscriber{ID: uuid.New(), Email: email, IsActive: true})
	}

	return out
}

func TestNewsletterDeliveryService_Deliver(t *testing.T) {
	fx := createTestDeliveryService(t)
	ctx := context.Background()
	newsletter := publishedNewsletter()

	fx.newsletterRepo.EXPECT().FindByID(ctx, newsletter.ID).Return(newsletter, nil)
	fx.subscriberRepo.EXPECT().ListActive(ctx).Return(subscribers("a@example.com", "b@example.com"), nil)
	fx.emailSender.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *service.EmailMessage) bool {
			return msg.To == "a@example.com" &&
				msg.Subject == newsletter.Title &&
				strings.Contains(msg.Text, "unsubscribe?email=a%40example.com")
		})).
		Return(nil).
		Once()
	fx.emailSender.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *service.EmailMessage) bool { return msg.To == "b@example.com" })).
		Return(errors.New("mailbox full")).
		Once()

	report, err := fx.service.Deliver(ctx, newsletter.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Recipients)
	assert.Equal(t, 1, report.Failed)
}

func TestNewsletterDeliveryService_Deliver_AllFailed(t *testing.T) {
	fx := createTestDeliveryService(t)
	ctx := context.Background()
	newsletter := publishedNewsletter()

	fx.newsletterRepo.EXPECT().FindByID(ctx, newsletter.ID).Return(newsletter, nil)
	fx.subscriberRepo.EXPECT().ListActive(ctx).Return(subscribers("a@example.com"), nil)
	fx.emailSender.EXPECT().Send(ctx, mock.Anything).Return(errors.New("provider down"))

	report, err := fx.service.Deliver(ctx, newsletter.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
	assert.Equal(t, 1, report.Failed)
}

func TestNewsletterDeliveryService_Deliver_NoSubscribers(t *testing.T) {
	fx := createTestDeliveryService(t)
	ctx := context.Background()
	newsletter := publishedNewsletter()

	fx.newsletterRepo.EXPECT().FindByID(ctx, newsletter.ID).Return(newsletter, nil)
	fx.subscriberRepo.EXPECT().ListActive(ctx).Return(nil, nil)

	report, err := fx.service.Deliver(ctx, newsletter.ID)

	require.NoError(t, err)
	assert.Zero(t, report.Recipients)
}

func TestNewsletterDeliveryService_Deliver_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		found     *entity.Newsletter
		findErr   error
		expectErr error
	}{
		{
			name:      "draft",
			found:     draftNewsletter(),
			expectErr: domainerrors.ErrValidationFailed,
		},
		{
			name:      "missing",
			findErr:   repository.ErrNewsletterNotFound,
			expectErr: domainerrors.ErrNewsletterNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeliveryService(t)
			ctx := context.Background()
			id := uuid.New()

			fx.newsletterRepo.EXPECT().FindByID(ctx, id).Return(tt.found, tt.findErr)

			report, err := fx.service.Deliver(ctx, id)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.Nil(t, report)
		})
	}
}
