package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmicrosite/internal/db"
	"eventmicrosite/internal/domain"
)

// personRepository serves both the hosts and speakers tables; the two are
// identical in shape and ordering.
type personRepository struct {
	db    *db.Executor
	table string
}

func NewHostRepository(x *db.Executor) domain.PersonRepository {
	return &personRepository{db: x, table: "hosts"}
}

func NewSpeakerRepository(x *db.Executor) domain.PersonRepository {
	return &personRepository{db: x, table: "speakers"}
}

const personColumnList = `id, event_id, name, title, company, bio, image, sort_order, created_at, updated_at`

func scanPerson(s scanner) (*domain.Person, error) {
	p := &domain.Person{}
	err := s.Scan(&p.ID, &p.EventID, &p.Name, &p.Title, &p.Company, &p.Bio, &p.Image,
		&p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListByEventID orders by sort order, tie-broken by full name. Guests order
// differently; see guestRepository.
func (r *personRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Person, error) {
	query := `
		SELECT ` + personColumnList + `
		FROM ` + r.table + `
		WHERE event_id = $1
		ORDER BY sort_order ASC, name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	people := make([]*domain.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (r *personRepository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	query := `SELECT ` + personColumnList + ` FROM ` + r.table + ` WHERE id = $1`
	p, err := scanPerson(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *personRepository) Create(ctx context.Context, p *domain.Person) error {
	query := `
		INSERT INTO ` + r.table + ` (event_id, name, title, company, bio, image, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		p.EventID, p.Name, p.Title, p.Company, p.Bio, p.Image, p.SortOrder).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *personRepository) Update(ctx context.Context, p *domain.Person) error {
	query := `
		UPDATE ` + r.table + ` SET
			event_id = $1, name = $2, title = $3, company = $4,
			bio = $5, image = $6, sort_order = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		p.EventID, p.Name, p.Title, p.Company, p.Bio, p.Image, p.SortOrder, p.ID).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *personRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+r.table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
