package handler

import (
	"net/http"

	"sarahkyoga/internal/delivery/api/response"
	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NewsletterHandlerParams holds dependencies for NewsletterHandler, injected by Fx.
type NewsletterHandlerParams struct {
	fx.In

	NewsletterUC usecase.NewsletterUsecase
}

// NewsletterHandler serves the composer, publishing and subscriber routes
type NewsletterHandler struct {
	newsletterUC usecase.NewsletterUsecase
}

// NewNewsletterHandler is the constructor for NewsletterHandler
func NewNewsletterHandler(params NewsletterHandlerParams) *NewsletterHandler {
	return &NewsletterHandler{newsletterUC: params.NewsletterUC}
}

// NewsletterRequest holds the composer fields
type NewsletterRequest struct {
	Title   string                 `json:"title" validate:"required,max=200"`
	Content string                 `json:"content"`
	Style   entity.NewsletterStyle `json:"style"`
}

func (r *NewsletterRequest) toInput() *usecase.NewsletterInput {
	return &usecase.NewsletterInput{Title: r.Title, Content: r.Content, Style: r.Style}
}

// EmailRequest carries a single address
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe adds or reactivates a subscriber
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	subscriber, err := h.newsletterUC.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSubscriberResponse(subscriber))
}

// Unsubscribe deactivates a subscriber
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	var req EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.newsletterUC.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListSubscribers returns a page of subscribers
func (h *NewsletterHandler) ListSubscribers(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return err
	}

	subscribers, err := h.newsletterUC.ListSubscribers(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*SubscriberResponse, len(subscribers))
	for i, subscriber := range subscribers {
		out[i] = newSubscriberResponse(subscriber)
	}

	return response.Page(c, out, limit, offset)
}

// ListNewsletters returns a page of newsletters
func (h *NewsletterHandler) ListNewsletters(c echo.Context) error {
	limit, offset, err := pagination(c)
	if err != nil {
		return err
	}

	newsletters, err := h.newsletterUC.List(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*NewsletterResponse, len(newsletters))
	for i, newsletter := range newsletters {
		out[i] = newNewsletterResponse(newsletter)
	}

	return response.Page(c, out, limit, offset)
}

// GetNewsletter returns one newsletter
func (h *NewsletterHandler) GetNewsletter(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	newsletter, err := h.newsletterUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNewsletterResponse(newsletter))
}

// CreateNewsletter saves a new draft
func (h *NewsletterHandler) CreateNewsletter(c echo.Context) error {
	var req NewsletterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	newsletter, err := h.newsletterUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newNewsletterResponse(newsletter))
}

// UpdateNewsletter edits a draft
func (h *NewsletterHandler) UpdateNewsletter(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req NewsletterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	newsletter, err := h.newsletterUC.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNewsletterResponse(newsletter))
}

// DeleteNewsletter removes a newsletter
func (h *NewsletterHandler) DeleteNewsletter(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.newsletterUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// PublishNewsletter publishes a draft and starts delivery
func (h *NewsletterHandler) PublishNewsletter(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	newsletter, err := h.newsletterUC.Publish(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, newNewsletterResponse(newsletter))
}

// SendTestNewsletter mails the newsletter to one address
func (h *NewsletterHandler) SendTestNewsletter(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req EmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.newsletterUC.SendTest(c.Request().Context(), id, req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Test email sent"})
}
