package handler

import (
	"net/http"
	"testing"
	"time"

	"sarahkyoga/internal/domain/entity"
	domainerrors "sarahkyoga/internal/domain/errors"
	mockUsecase "sarahkyoga/internal/mocks/usecase"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupNewsletterRoutes(t *testing.T) (*echo.Echo, *mockUsecase.MockNewsletterUsecase) {
	newsletterUC := mockUsecase.NewMockNewsletterUsecase(t)
	h := NewNewsletterHandler(NewsletterHandlerParams{NewsletterUC: newsletterUC})

	e := newTestEcho()
	e.POST("/api/v1/newsletter/subscribe", h.Subscribe)
	e.POST("/api/v1/newsletter/unsubscribe", h.Unsubscribe)
	e.POST("/api/v1/admin/newsletters", h.CreateNewsletter)
	e.PUT("/api/v1/admin/newsletters/:id", h.UpdateNewsletter)
	e.POST("/api/v1/admin/newsletters/:id/publish", h.PublishNewsletter)
	e.POST("/api/v1/admin/newsletters/:id/test", h.SendTestNewsletter)

	return e, newsletterUC
}

func TestNewsletterHandler_SubscribeAndUnsubscribe(t *testing.T) {
	e, newsletterUC := setupNewsletterRoutes(t)

	newsletterUC.EXPECT().Subscribe(mock.Anything, "reader@example.com").
		Return(&entity.Subscriber{ID: uuid.New(), Email: "reader@example.com", IsActive: true}, nil).Once()
	newsletterUC.EXPECT().Unsubscribe(mock.Anything, "reader@example.com").Return(nil).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/newsletter/subscribe", map[string]any{"email": "reader@example.com"}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeData[SubscriberResponse](t, rec).IsActive)

	rec = serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/newsletter/unsubscribe", map[string]any{"email": "reader@example.com"}))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/newsletter/subscribe", map[string]any{"email": "not-an-email"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email: email", decodeError(t, rec).Details)
}

func TestNewsletterHandler_CreateDraft(t *testing.T) {
	e, newsletterUC := setupNewsletterRoutes(t)

	style := entity.NewsletterStyle{FontFamily: "Georgia", TextAlign: "center"}
	newsletterUC.EXPECT().Create(mock.Anything, &usecase.NewsletterInput{
		Title:   "Spring schedule",
		Content: "<p>New classes</p>",
		Style:   style,
	}).Return(&entity.Newsletter{ID: uuid.New(), Title: "Spring schedule", Style: style, IsDraft: true}, nil).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/admin/newsletters", map[string]any{
		"title":   "Spring schedule",
		"content": "<p>New classes</p>",
		"style":   style,
	}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeData[NewsletterResponse](t, rec)
	assert.True(t, body.IsDraft)
	assert.Equal(t, "Georgia", body.Style.FontFamily)
}

func TestNewsletterHandler_UpdatePublishedIsRejected(t *testing.T) {
	e, newsletterUC := setupNewsletterRoutes(t)

	id := uuid.New()
	newsletterUC.EXPECT().Update(mock.Anything, id, mock.Anything).
		Return(nil, domainerrors.ErrNewsletterPublished.WrapMessage(id.String())).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPut, "/api/v1/admin/newsletters/"+id.String(), map[string]any{
		"title": "Edited",
	}))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestNewsletterHandler_PublishAndSendTest(t *testing.T) {
	e, newsletterUC := setupNewsletterRoutes(t)

	id := uuid.New()
	publishedAt := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	newsletterUC.EXPECT().Publish(mock.Anything, id).
		Return(&entity.Newsletter{ID: id, Title: "April", PublishedAt: &publishedAt}, nil).Once()
	newsletterUC.EXPECT().SendTest(mock.Anything, id, "owner@example.com").Return(nil).Once()

	rec := serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/admin/newsletters/"+id.String()+"/publish", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	body := decodeData[NewsletterResponse](t, rec)
	assert.False(t, body.IsDraft)
	assert.True(t, publishedAt.Equal(*body.PublishedAt))

	rec = serve(e, newJSONRequest(t, http.MethodPost, "/api/v1/admin/newsletters/"+id.String()+"/test", map[string]any{
		"email": "owner@example.com",
	}))
	assert.Equal(t, http.StatusOK, rec.Code)
}
