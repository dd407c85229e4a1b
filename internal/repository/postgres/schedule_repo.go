package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmicrosite/internal/db"
	"eventmicrosite/internal/domain"
)

type scheduleRepository struct {
	db *db.Executor
}

func NewScheduleRepository(x *db.Executor) domain.ScheduleRepository {
	return &scheduleRepository{db: x}
}

const scheduleColumnList = `id, event_id, time, description, sort_order, created_at, updated_at`

func scanScheduleItem(s scanner) (*domain.ScheduleItem, error) {
	item := &domain.ScheduleItem{}
	err := s.Scan(&item.ID, &item.EventID, &item.Time, &item.Description,
		&item.SortOrder, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *scheduleRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.ScheduleItem, error) {
	query := `
		SELECT ` + scheduleColumnList + `
		FROM schedule_items
		WHERE event_id = $1
		ORDER BY sort_order ASC, time ASC
	`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]*domain.ScheduleItem, 0)
	for rows.Next() {
		item, err := scanScheduleItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *scheduleRepository) GetByID(ctx context.Context, id int64) (*domain.ScheduleItem, error) {
	query := `SELECT ` + scheduleColumnList + ` FROM schedule_items WHERE id = $1`
	item, err := scanScheduleItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *scheduleRepository) Create(ctx context.Context, item *domain.ScheduleItem) error {
	query := `
		INSERT INTO schedule_items (event_id, time, description, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		item.EventID, item.Time, item.Description, item.SortOrder).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *scheduleRepository) Update(ctx context.Context, item *domain.ScheduleItem) error {
	query := `
		UPDATE schedule_items SET
			event_id = $1, time = $2, description = $3, sort_order = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		item.EventID, item.Time, item.Description, item.SortOrder, item.ID).
		Scan(&item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *scheduleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM schedule_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
