package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmicrosite/internal/db"
	"eventmicrosite/internal/domain"
)

type guestRepository struct {
	db *db.Executor
}

func NewGuestRepository(x *db.Executor) domain.GuestRepository {
	return &guestRepository{db: x}
}

const guestColumnList = `id, event_id, name, title, company, bio, image, badge, sort_order, created_at, updated_at`

func scanGuest(s scanner) (*domain.Guest, error) {
	g := &domain.Guest{}
	var badge sql.NullString
	err := s.Scan(&g.ID, &g.EventID, &g.Name, &g.Title, &g.Company, &g.Bio, &g.Image,
		&badge, &g.SortOrder, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if badge.Valid {
		g.Badge = &badge.String
	}
	return g, nil
}

// ListByEventID orders by the extracted surname token, then full name. This
// intentionally differs from the host/speaker ordering and must stay that
// way; the public page groups guests alphabetically by family name.
func (r *guestRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Guest, error) {
	query := `
		SELECT ` + guestColumnList + `
		FROM guests
		WHERE event_id = $1
		ORDER BY substring(name from '([^ ]+)$') ASC, name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *guestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	query := `SELECT ` + guestColumnList + ` FROM guests WHERE id = $1`
	g, err := scanGuest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `
		INSERT INTO guests (event_id, name, title, company, bio, image, badge, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		g.EventID, g.Name, g.Title, g.Company, g.Bio, g.Image, g.Badge, g.SortOrder).
		Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *guestRepository) Update(ctx context.Context, g *domain.Guest) error {
	query := `
		UPDATE guests SET
			event_id = $1, name = $2, title = $3, company = $4,
			bio = $5, image = $6, badge = $7, sort_order = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		g.EventID, g.Name, g.Title, g.Company, g.Bio, g.Image, g.Badge, g.SortOrder, g.ID).
		Scan(&g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *guestRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
