package domain

import (
	"context"
	"time"
)

// ScheduleItem is a single agenda entry on an event page. Time is a free-text
// label ("9:00 AM", "after lunch"), not a parsed time.
// swagger:model ScheduleItem
type ScheduleItem struct {
	ID          int64     `json:"id"`
	EventID     int64     `json:"eventId"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ScheduleRepository defines storage for schedule items.
type ScheduleRepository interface {
	ListByEventID(ctx context.Context, eventID int64) ([]*ScheduleItem, error)
	GetByID(ctx context.Context, id int64) (*ScheduleItem, error)
	Create(ctx context.Context, item *ScheduleItem) error
	Update(ctx context.Context, item *ScheduleItem) error
	Delete(ctx context.Context, id int64) error
}

// ScheduleService defines business logic for schedule items.
type ScheduleService interface {
	ListByEvent(ctx context.Context, eventID int64) ([]*ScheduleItem, error)
	Get(ctx context.Context, id int64) (*ScheduleItem, error)
	Create(ctx context.Context, item *ScheduleItem) (*ScheduleItem, error)
	Update(ctx context.Context, id int64, item *ScheduleItem) (*ScheduleItem, error)
	Delete(ctx context.Context, id int64) error
}
