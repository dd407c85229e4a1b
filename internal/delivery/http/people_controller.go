package http

import (
	"log/slog"
	"net/http"
	"strings"

	h "eventmicrosite/internal/delivery/http/helpers"
	"eventmicrosite/internal/domain"
)

// personRequest is the body for host and speaker writes.
type personRequest struct {
	EventID   int64  `json:"eventId"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	SortOrder int    `json:"sortOrder"`
}

func (r *personRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if r.EventID <= 0 {
		errs = append(errs, "eventId is required")
	}
	return errs
}

func (r *personRequest) toDomain() *domain.Person {
	return &domain.Person{
		EventID:   r.EventID,
		Name:      r.Name,
		Title:     r.Title,
		Company:   r.Company,
		Bio:       r.Bio,
		Image:     r.Image,
		SortOrder: r.SortOrder,
	}
}

// guestRequest is the body for guest writes. Badge is optional and limited
// to the known badge values.
type guestRequest struct {
	personRequest
	Badge *string `json:"badge"`
}

func (r *guestRequest) Validate() []string {
	errs := r.personRequest.Validate()
	if r.Badge != nil && *r.Badge != "" &&
		*r.Badge != domain.BadgePartner && *r.Badge != domain.BadgePatron {
		errs = append(errs, "badge must be PARTNER or PATRON")
	}
	return errs
}

func (r *guestRequest) toDomain() *domain.Guest {
	return &domain.Guest{
		EventID:   r.EventID,
		Name:      r.Name,
		Title:     r.Title,
		Company:   r.Company,
		Bio:       r.Bio,
		Image:     r.Image,
		Badge:     r.Badge,
		SortOrder: r.SortOrder,
	}
}

// PersonController serves hosts or speakers; one instance is mounted per
// entity kind.
type PersonController struct {
	Service domain.PersonService
	Logger  *slog.Logger
}

func NewPersonController(svc domain.PersonService, logger *slog.Logger) *PersonController {
	return &PersonController{Service: svc, Logger: logger}
}

func (c *PersonController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := idParam(w, r, "eventID")
	if !ok {
		return
	}
	people, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	if people == nil {
		people = []*domain.Person{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, people)
}

func (c *PersonController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	p, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, p)
}

func (c *PersonController) Create(w http.ResponseWriter, r *http.Request) {
	var req personRequest
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

func (c *PersonController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req personRequest
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

func (c *PersonController) Delete(w http.ResponseWriter, r *http.Request) {
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

// GuestController serves guests, which carry an optional badge and a
// different listing order than hosts and speakers.
type GuestController struct {
	Service domain.GuestService
	Logger  *slog.Logger
}

func NewGuestController(svc domain.GuestService, logger *slog.Logger) *GuestController {
	return &GuestController{Service: svc, Logger: logger}
}

func (c *GuestController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := idParam(w, r, "eventID")
	if !ok {
		return
	}
	guests, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	if guests == nil {
		guests = []*domain.Guest{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, guests)
}

func (c *GuestController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	g, err := c.Service.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, g)
}

func (c *GuestController) Create(w http.ResponseWriter, r *http.Request) {
	var req guestRequest
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

func (c *GuestController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req guestRequest
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

func (c *GuestController) Delete(w http.ResponseWriter, r *http.Request) {
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
