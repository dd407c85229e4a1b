package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"eventmicrosite/internal/domain"
)

type eventService struct {
	eventRepo    domain.EventRepository
	hostRepo     domain.PersonRepository
	speakerRepo  domain.PersonRepository
	guestRepo    domain.GuestRepository
	scheduleRepo domain.ScheduleRepository
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(
	eventRepo domain.EventRepository,
	hostRepo domain.PersonRepository,
	speakerRepo domain.PersonRepository,
	guestRepo domain.GuestRepository,
	scheduleRepo domain.ScheduleRepository,
) domain.EventService {
	return &eventService{
		eventRepo:    eventRepo,
		hostRepo:     hostRepo,
		speakerRepo:  speakerRepo,
		guestRepo:    guestRepo,
		scheduleRepo: scheduleRepo,
	}
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetDetail(ctx context.Context, idOrSlug string) (*domain.EventDetail, error) {
	event, err := s.resolve(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	detail := &domain.EventDetail{Event: *event}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail.Guests, err = s.guestRepo.ListByEventID(gctx, event.ID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Speakers, err = s.speakerRepo.ListByEventID(gctx, event.ID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Hosts, err = s.hostRepo.ListByEventID(gctx, event.ID)
		return err
	})
	g.Go(func() error {
		var err error
		detail.Schedule, err = s.scheduleRepo.ListByEventID(gctx, event.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load event children: %w", err)
	}
	return detail, nil
}

// resolve looks the event up by numeric id first, falling back to slug so
// that purely numeric slugs never shadow ids.
func (s *eventService) resolve(ctx context.Context, idOrSlug string) (*domain.Event, error) {
	if id, convErr := strconv.ParseInt(idOrSlug, 10, 64); convErr == nil {
		event, err := s.eventRepo.GetByID(ctx, id)
		if err == nil {
			return event, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get event: %w", err)
		}
	}
	event, err := s.eventRepo.GetBySlug(ctx, idOrSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if strings.TrimSpace(e.Slug) == "" {
		e.Slug = domain.Slugify(e.Title)
	}
	sanitizeEvent(e)
	if err := s.eventRepo.Create(ctx, e); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, err
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return e, nil
}

func (s *eventService) Update(ctx context.Context, id int64, e *domain.Event) (*domain.Event, error) {
	e.ID = id
	if strings.TrimSpace(e.Slug) == "" {
		e.Slug = domain.Slugify(e.Title)
	}
	sanitizeEvent(e)
	if err := s.eventRepo.Update(ctx, e); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return e, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) Duplicate(ctx context.Context, id int64) (*domain.Event, error) {
	src, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	// The millisecond suffix keeps repeated copies of the same event from
	// colliding on the unique slug index.
	title := src.Title + " (Copy)"
	slug := fmt.Sprintf("%s-copy-%d", src.Slug, time.Now().UnixMilli())
	dup, err := s.eventRepo.Duplicate(ctx, id, title, slug)
	if err != nil {
		return nil, fmt.Errorf("duplicate event: %w", err)
	}
	return dup, nil
}

// sanitizeEvent scrubs the rich-text HTML fields in place. Plain-text and
// URL fields are stored as submitted.
func sanitizeEvent(e *domain.Event) {
	e.Description = sanitizeHTML(e.Description)
	e.ScheduleHeading = sanitizeHTML(e.ScheduleHeading)
	e.ScheduleIntro = sanitizeHTML(e.ScheduleIntro)
	e.AgendaContent = sanitizeHTML(e.AgendaContent)
	e.WelcomeMessage = sanitizeHTML(e.WelcomeMessage)
	e.Signature = sanitizeHTML(e.Signature)
	e.PartnerDescription = sanitizeHTML(e.PartnerDescription)
	e.TestimonialText = sanitizeHTML(e.TestimonialText)
	e.ConnectIntro = sanitizeHTML(e.ConnectIntro)
	e.ConnectInstructions = sanitizeHTML(e.ConnectInstructions)
}
