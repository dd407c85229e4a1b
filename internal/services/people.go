package services

import (
	"context"
	"errors"
	"fmt"

	"eventmicrosite/internal/domain"
)

type personService struct {
	repo domain.PersonRepository
	kind string
}

// NewPersonService creates a PersonService over the given repository. kind
// names the entity in wrapped errors ("host" or "speaker").
func NewPersonService(repo domain.PersonRepository, kind string) domain.PersonService {
	return &personService{repo: repo, kind: kind}
}

func (s *personService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Person, error) {
	people, err := s.repo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", s.kind, err)
	}
	return people, nil
}

func (s *personService) Get(ctx context.Context, id int64) (*domain.Person, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", s.kind, err)
	}
	return p, nil
}

func (s *personService) Create(ctx context.Context, p *domain.Person) (*domain.Person, error) {
	p.Bio = sanitizeHTML(p.Bio)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.kind, err)
	}
	return p, nil
}

func (s *personService) Update(ctx context.Context, id int64, p *domain.Person) (*domain.Person, error) {
	p.ID = id
	p.Bio = sanitizeHTML(p.Bio)
	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update %s: %w", s.kind, err)
	}
	return p, nil
}

func (s *personService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete %s: %w", s.kind, err)
	}
	return nil
}

type guestService struct {
	repo domain.GuestRepository
}

// NewGuestService creates a GuestService with the given repository.
func NewGuestService(repo domain.GuestRepository) domain.GuestService {
	return &guestService{repo: repo}
}

func (s *guestService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Guest, error) {
	guests, err := s.repo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, nil
}

func (s *guestService) Get(ctx context.Context, id int64) (*domain.Guest, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return g, nil
}

func (s *guestService) Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error) {
	normalizeGuest(g)
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create guest: %w", err)
	}
	return g, nil
}

func (s *guestService) Update(ctx context.Context, id int64, g *domain.Guest) (*domain.Guest, error) {
	g.ID = id
	normalizeGuest(g)
	if err := s.repo.Update(ctx, g); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update guest: %w", err)
	}
	return g, nil
}

func (s *guestService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete guest: %w", err)
	}
	return nil
}

// normalizeGuest sanitizes the bio and collapses an empty badge to NULL.
func normalizeGuest(g *domain.Guest) {
	g.Bio = sanitizeHTML(g.Bio)
	if g.Badge != nil && *g.Badge == "" {
		g.Badge = nil
	}
}
