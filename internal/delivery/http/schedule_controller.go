package http

import (
	"log/slog"
	"net/http"
	"strings"

	h "eventmicrosite/internal/delivery/http/helpers"
	"eventmicrosite/internal/domain"
)

// scheduleRequest is the body for schedule item writes. Time is a free-text
// label, not a parsed timestamp.
type scheduleRequest struct {
	EventID     int64  `json:"eventId"`
	Time        string `json:"time"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

func (r *scheduleRequest) Validate() []string {
	var errs []string
	if r.EventID <= 0 {
		errs = append(errs, "eventId is required")
	}
	if strings.TrimSpace(r.Time) == "" {
		errs = append(errs, "time is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		errs = append(errs, "description is required")
	}
	return errs
}

func (r *scheduleRequest) toDomain() *domain.ScheduleItem {
	return &domain.ScheduleItem{
		EventID:     r.EventID,
		Time:        r.Time,
		Description: r.Description,
		SortOrder:   r.SortOrder,
	}
}

type ScheduleController struct {
	Service domain.ScheduleService
	Logger  *slog.Logger
}

func NewScheduleController(svc domain.ScheduleService, logger *slog.Logger) *ScheduleController {
	return &ScheduleController{Service: svc, Logger: logger}
}

func (c *ScheduleController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := idParam(w, r, "eventID")
	if !ok {
		return
	}
	items, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	if items == nil {
		items = []*domain.ScheduleItem{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, items)
}

func (c *ScheduleController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	item, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, item)
}

func (c *ScheduleController) Create(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.Create(r.Context(), req.toDomain())
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, created)
}

func (c *ScheduleController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req scheduleRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.Update(r.Context(), id, req.toDomain())
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, updated)
}

func (c *ScheduleController) Delete(w http.ResponseWriter, r *http.Request) {
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
