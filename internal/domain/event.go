package domain

import (
	"context"
	"time"
)

// Event represents a published or draft event microsite. The scalar content
// fields map 1:1 to columns; several of them hold rich-text HTML produced by
// the admin editor and are sanitized before storage.
// swagger:model Event
type Event struct {
	ID                  int64      `json:"id"`
	Title               string     `json:"title"`
	Slug                string     `json:"slug"`
	Subtitle            string     `json:"subtitle"`
	EventDate           *time.Time `json:"eventDate"`
	EventTime           string     `json:"eventTime"`
	Location            string     `json:"location"`
	Venue               string     `json:"venue"`
	HeroImage           string     `json:"heroImage"`
	Description         string     `json:"description"`
	DescriptionImage    string     `json:"descriptionImage"`
	ScheduleHeading     string     `json:"scheduleHeading"`
	ScheduleIntro       string     `json:"scheduleIntro"`
	AgendaContent       string     `json:"agendaContent"`
	ScheduleImage       string     `json:"scheduleImage"`
	WelcomeMessage      string     `json:"welcomeMessage"`
	Signature           string     `json:"signature"`
	ContactName         string     `json:"contactName"`
	ContactTitle        string     `json:"contactTitle"`
	ContactEmail        string     `json:"contactEmail"`
	ContactPhone        string     `json:"contactPhone"`
	PartnerName         string     `json:"partnerName"`
	PartnerLogo         string     `json:"partnerLogo"`
	PartnerDescription  string     `json:"partnerDescription"`
	PartnerWebsite      string     `json:"partnerWebsite"`
	TestimonialText     string     `json:"testimonialText"`
	TestimonialAuthor   string     `json:"testimonialAuthor"`
	TestimonialTitle    string     `json:"testimonialTitle"`
	TestimonialCompany  string     `json:"testimonialCompany"`
	TestimonialImage    string     `json:"testimonialImage"`
	PartnerHeroImage    string     `json:"partnerHeroImage"`
	ConnectIntro        string     `json:"connectIntro"`
	ConnectInstructions string     `json:"connectInstructions"`
	ConnectLink         string     `json:"connectLink"`
	ConnectImage        string     `json:"connectImage"`
	IsPublished         bool       `json:"isPublished"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// EventDetail is an event together with all of its child collections, as
// served on the public event page.
type EventDetail struct {
	Event
	Guests   []*Guest        `json:"guests"`
	Speakers []*Person       `json:"speakers"`
	Hosts    []*Person       `json:"hosts"`
	Schedule []*ScheduleItem `json:"schedule"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	Create(ctx context.Context, e *Event) error
	// Update overwrites every content column of the target row and returns
	// ErrNotFound when the id does not exist.
	Update(ctx context.Context, e *Event) error
	// Delete removes the event and all of its child rows in one transaction.
	Delete(ctx context.Context, id int64) error
	// Duplicate deep-copies the event and every child row under a new
	// title/slug, forcing the copy to unpublished, in one transaction.
	Duplicate(ctx context.Context, id int64, title, slug string) (*Event, error)
}

// EventService defines the business logic for event microsites.
type EventService interface {
	List(ctx context.Context) ([]*Event, error)
	// GetDetail resolves idOrSlug (numeric id first, then slug) and loads the
	// event with all child collections.
	GetDetail(ctx context.Context, idOrSlug string) (*EventDetail, error)
	Create(ctx context.Context, e *Event) (*Event, error)
	Update(ctx context.Context, id int64, e *Event) (*Event, error)
	Delete(ctx context.Context, id int64) error
	Duplicate(ctx context.Context, id int64) (*Event, error)
}
