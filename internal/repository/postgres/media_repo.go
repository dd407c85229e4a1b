package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmicrosite/internal/db"
	"eventmicrosite/internal/domain"
)

type mediaRepository struct {
	db *db.Executor
}

func NewMediaRepository(x *db.Executor) domain.MediaRepository {
	return &mediaRepository{db: x}
}

func (r *mediaRepository) Create(ctx context.Context, m *domain.Media) error {
	query := `
		INSERT INTO media (filename, mimetype, data)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, m.Filename, m.Mimetype, m.Data).
		Scan(&m.ID, &m.CreatedAt)
}

func (r *mediaRepository) GetByID(ctx context.Context, id int64) (*domain.Media, error) {
	query := `SELECT id, filename, mimetype, data, created_at FROM media WHERE id = $1`
	m := &domain.Media{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.Filename, &m.Mimetype, &m.Data, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
