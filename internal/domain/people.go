package domain

import (
	"context"
	"time"
)

// Guest badge values. An empty badge means no badge.
const (
	BadgePartner = "PARTNER"
	BadgePatron  = "PATRON"
)

// Person is a host or speaker attached to an event. Hosts and speakers share
// the same shape and the same read ordering (sort order, then full name).
// swagger:model Person
type Person struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Bio       string    `json:"bio"`
	Image     string    `json:"image"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Guest is a person with an optional badge. Guests are listed by extracted
// surname then full name, unlike hosts and speakers.
// swagger:model Guest
type Guest struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Bio       string    `json:"bio"`
	Image     string    `json:"image"`
	Badge     *string   `json:"badge"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PersonRepository defines storage for hosts or speakers. The same interface
// is implemented once per table.
type PersonRepository interface {
	ListByEventID(ctx context.Context, eventID int64) ([]*Person, error)
	GetByID(ctx context.Context, id int64) (*Person, error)
	Create(ctx context.Context, p *Person) error
	Update(ctx context.Context, p *Person) error
	Delete(ctx context.Context, id int64) error
}

// GuestRepository defines storage for guests.
type GuestRepository interface {
	ListByEventID(ctx context.Context, eventID int64) ([]*Guest, error)
	GetByID(ctx context.Context, id int64) (*Guest, error)
	Create(ctx context.Context, g *Guest) error
	Update(ctx context.Context, g *Guest) error
	Delete(ctx context.Context, id int64) error
}

// PersonService defines business logic for hosts or speakers.
type PersonService interface {
	ListByEvent(ctx context.Context, eventID int64) ([]*Person, error)
	Get(ctx context.Context, id int64) (*Person, error)
	Create(ctx context.Context, p *Person) (*Person, error)
	Update(ctx context.Context, id int64, p *Person) (*Person, error)
	Delete(ctx context.Context, id int64) error
}

// GuestService defines business logic for guests.
type GuestService interface {
	ListByEvent(ctx context.Context, eventID int64) ([]*Guest, error)
	Get(ctx context.Context, id int64) (*Guest, error)
	Create(ctx context.Context, g *Guest) (*Guest, error)
	Update(ctx context.Context, id int64, g *Guest) (*Guest, error)
	Delete(ctx context.Context, id int64) error
}
