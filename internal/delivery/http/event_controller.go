package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventmicrosite/internal/delivery/http/helpers"
	"eventmicrosite/internal/domain"
)

// eventRequest is the body for POST /api/events and PUT /api/events/{id}.
// Server-generated fields (id, timestamps) are accepted but ignored.
type eventRequest struct {
	domain.Event
}

func (r *eventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "title is required")
	}
	return errs
}

type EventController struct {
	Service domain.EventService
	Logger  *slog.Logger
}

func NewEventController(svc domain.EventService, logger *slog.Logger) *EventController {
	return &EventController{Service: svc, Logger: logger}
}

// List godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Event}
// @Router /api/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// Get godoc
// @Summary Get an event with all child collections
// @Description Resolves the path segment as a numeric id first, then as a slug.
// @Tags events
// @Produce json
// @Param idOrSlug path string true "Event id or slug"
// @Success 200 {object} helpers.APIResponse{data=domain.EventDetail}
// @Failure 404 {object} helpers.APIResponse
// @Router /api/events/{idOrSlug} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := c.Service.GetDetail(r.Context(), r.PathValue("idOrSlug"))
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	if detail.Guests == nil {
		detail.Guests = []*domain.Guest{}
	}
	if detail.Speakers == nil {
		detail.Speakers = []*domain.Person{}
	}
	if detail.Hosts == nil {
		detail.Hosts = []*domain.Person{}
	}
	if detail.Schedule == nil {
		detail.Schedule = []*domain.ScheduleItem{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body eventRequest true "Event content; slug is derived from the title when omitted"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse
// @Router /api/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.Create(r.Context(), &req.Event)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			c.Logger.Error("event create failed on slug collision", "slug", req.Slug, "err", err)
		}
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, created)
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event id"
// @Param event body eventRequest true "Full event content; every column is overwritten"
// @Success 200 {object} helpers.APIResponse{data=domain.Event}
// @Failure 404 {object} helpers.APIResponse
// @Router /api/events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req eventRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.Update(r.Context(), id, &req.Event)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete an event and all of its child rows
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Duplicate godoc
// @Summary Duplicate an event
// @Description Deep-copies the event and every child row under a new slug; the copy starts unpublished.
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 404 {object} helpers.APIResponse
// @Router /api/events/{id}/duplicate [post]
func (c *EventController) Duplicate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	dup, err := c.Service.Duplicate(r.Context(), id)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, dup)
}
