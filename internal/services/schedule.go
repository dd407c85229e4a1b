package services

import (
	"context"
	"errors"
	"fmt"

	"eventmicrosite/internal/domain"
)

type scheduleService struct {
	repo domain.ScheduleRepository
}

// NewScheduleService creates a ScheduleService with the given repository.
func NewScheduleService(repo domain.ScheduleRepository) domain.ScheduleService {
	return &scheduleService{repo: repo}
}

func (s *scheduleService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.ScheduleItem, error) {
	items, err := s.repo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list schedule items: %w", err)
	}
	return items, nil
}

func (s *scheduleService) Get(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get schedule item: %w", err)
	}
	return item, nil
}

func (s *scheduleService) Create(ctx context.Context, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	item.Description = sanitizeHTML(item.Description)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create schedule item: %w", err)
	}
	return item, nil
}

func (s *scheduleService) Update(ctx context.Context, id int64, item *domain.ScheduleItem) (*domain.ScheduleItem, error) {
	item.ID = id
	item.Description = sanitizeHTML(item.Description)
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update schedule item: %w", err)
	}
	return item, nil
}

func (s *scheduleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete schedule item: %w", err)
	}
	return nil
}
