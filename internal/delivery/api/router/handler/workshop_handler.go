package handler

import (
	"context"
	"net/http"
	"time"

	"sarahkyoga/internal/delivery/api/response"
	"sarahkyoga/internal/domain/entity"
	"sarahkyoga/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// WorkshopHandlerParams holds dependencies for WorkshopHandler, injected by Fx.
type WorkshopHandlerParams struct {
	fx.In

	WorkshopUC usecase.WorkshopUsecase
}

// WorkshopHandler serves the public workshop listing and its admin collection
type WorkshopHandler struct {
	workshopUC usecase.WorkshopUsecase
}

// NewWorkshopHandler is the constructor for WorkshopHandler
func NewWorkshopHandler(params WorkshopHandlerParams) *WorkshopHandler {
	return &WorkshopHandler{workshopUC: params.WorkshopUC}
}

// WorkshopRequest holds the editable workshop fields; an empty slug is derived from the title
type WorkshopRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Slug        string          `json:"slug" validate:"max=200"`
	Description string          `json:"description"`
	Location    string          `json:"location" validate:"max=200"`
	StartsAt    time.Time       `json:"startsAt" validate:"required"`
	EndsAt      time.Time       `json:"endsAt" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Capacity    int             `json:"capacity" validate:"gte=0"`
}

func (r *WorkshopRequest) toInput() *usecase.WorkshopInput {
	return &usecase.WorkshopInput{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Location:    r.Location,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Price:       r.Price,
		Capacity:    r.Capacity,
	}
}

// ListPublishedWorkshops returns every published workshop
func (h *WorkshopHandler) ListPublishedWorkshops(c echo.Context) error {
	workshops, err := h.workshopUC.ListPublished(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newWorkshopResponses(workshops))
}

// GetPublishedWorkshop returns a published workshop by slug
func (h *WorkshopHandler) GetPublishedWorkshop(c echo.Context) error {
	workshop, err := h.workshopUC.GetPublished(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newWorkshopResponse(workshop))
}

// ListWorkshops returns drafts and published workshops
func (h *WorkshopHandler) ListWorkshops(c echo.Context) error {
	workshops, err := h.workshopUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newWorkshopResponses(workshops))
}

// GetWorkshop returns one workshop in any state
func (h *WorkshopHandler) GetWorkshop(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	workshop, err := h.workshopUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newWorkshopResponse(workshop))
}

// CreateWorkshop saves a new draft
func (h *WorkshopHandler) CreateWorkshop(c echo.Context) error {
	var req WorkshopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	workshop, err := h.workshopUC.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newWorkshopResponse(workshop))
}

// UpdateWorkshop edits a workshop and records a new version
func (h *WorkshopHandler) UpdateWorkshop(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req WorkshopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	workshop, err := h.workshopUC.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newWorkshopResponse(workshop))
}

// PublishWorkshop makes a workshop public
func (h *WorkshopHandler) PublishWorkshop(c echo.Context) error {
	return h.changeStatus(c, h.workshopUC.Publish)
}

// UnpublishWorkshop returns a workshop to draft
func (h *WorkshopHandler) UnpublishWorkshop(c echo.Context) error {
	return h.changeStatus(c, h.workshopUC.Unpublish)
}

func (h *WorkshopHandler) changeStatus(c echo.Context, change func(ctx context.Context, id uuid.UUID) (*entity.Workshop, error)) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	workshop, err := change(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newWorkshopResponse(workshop))
}

// DeleteWorkshop removes a workshop and its history
func (h *WorkshopHandler) DeleteWorkshop(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.workshopUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListWorkshopVersions returns the snapshots of a workshop, newest first
func (h *WorkshopHandler) ListWorkshopVersions(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	versions, err := h.workshopUC.ListVersions(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*WorkshopVersionResponse, len(versions))
	for i, version := range versions {
		out[i] = &WorkshopVersionResponse{
			Version:   version.Version,
			Status:    version.Status,
			Snapshot:  newWorkshopResponse(&version.Snapshot),
			CreatedAt: version.CreatedAt,
		}
	}

	return response.Success(c, http.StatusOK, out)
}
