package http

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventmicrosite/internal/delivery/http/middleware"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Events   *EventController
	Hosts    *PersonController
	Speakers *PersonController
	Guests   *GuestController
	Schedule *ScheduleController
	Auth     *AuthController
	Site     *SiteController
	Upload   *UploadController
}

// NewRouter initializes the HTTP router with all application routes.
// Mutating routes and the admin event listing are wrapped with the admin
// predicate; public reads stay open (the site gate runs further out).
func NewRouter(c Controllers, sessions *scs.SessionManager) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(sessions)

	// Events
	mux.HandleFunc("GET /api/events", admin(c.Events.List))
	mux.HandleFunc("GET /api/events/{idOrSlug}", c.Events.Get)
	mux.HandleFunc("POST /api/events", admin(c.Events.Create))
	mux.HandleFunc("PUT /api/events/{id}", admin(c.Events.Update))
	mux.HandleFunc("DELETE /api/events/{id}", admin(c.Events.Delete))
	mux.HandleFunc("POST /api/events/{id}/duplicate", admin(c.Events.Duplicate))

	// Hosts
	mux.HandleFunc("GET /api/hosts/event/{eventID}", c.Hosts.ListByEvent)
	mux.HandleFunc("GET /api/hosts/{id}", c.Hosts.Get)
	mux.HandleFunc("POST /api/hosts", admin(c.Hosts.Create))
	mux.HandleFunc("PUT /api/hosts/{id}", admin(c.Hosts.Update))
	mux.HandleFunc("DELETE /api/hosts/{id}", admin(c.Hosts.Delete))

	// Speakers
	mux.HandleFunc("GET /api/speakers/event/{eventID}", c.Speakers.ListByEvent)
	mux.HandleFunc("GET /api/speakers/{id}", c.Speakers.Get)
	mux.HandleFunc("POST /api/speakers", admin(c.Speakers.Create))
	mux.HandleFunc("PUT /api/speakers/{id}", admin(c.Speakers.Update))
	mux.HandleFunc("DELETE /api/speakers/{id}", admin(c.Speakers.Delete))

	// Guests
	mux.HandleFunc("GET /api/guests/event/{eventID}", c.Guests.ListByEvent)
	mux.HandleFunc("GET /api/guests/{id}", c.Guests.Get)
	mux.HandleFunc("POST /api/guests", admin(c.Guests.Create))
	mux.HandleFunc("PUT /api/guests/{id}", admin(c.Guests.Update))
	mux.HandleFunc("DELETE /api/guests/{id}", admin(c.Guests.Delete))

	// Schedule
	mux.HandleFunc("GET /api/schedule/event/{eventID}", c.Schedule.ListByEvent)
	mux.HandleFunc("GET /api/schedule/{id}", c.Schedule.Get)
	mux.HandleFunc("POST /api/schedule", admin(c.Schedule.Create))
	mux.HandleFunc("PUT /api/schedule/{id}", admin(c.Schedule.Update))
	mux.HandleFunc("DELETE /api/schedule/{id}", admin(c.Schedule.Delete))

	// Auth
	mux.HandleFunc("POST /api/auth/login", c.Auth.Login)
	mux.HandleFunc("POST /api/auth/logout", c.Auth.Logout)
	mux.HandleFunc("GET /api/auth/session", c.Auth.Session)

	// Site access gate endpoints
	mux.HandleFunc("POST /api/site/verify-password", c.Site.VerifyPassword)
	mux.HandleFunc("GET /api/site/check-access", c.Site.CheckAccess)

	// Upload and media
	mux.HandleFunc("POST /api/upload/image", admin(c.Upload.UploadImage))
	mux.HandleFunc("GET /media/{id}/{filename}", c.Upload.ServeMedia)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
