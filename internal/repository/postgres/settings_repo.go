package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventmicrosite/internal/db"
	"eventmicrosite/internal/domain"
)

type settingsRepository struct {
	db *db.Executor
}

func NewSettingsRepository(x *db.Executor) domain.SettingsRepository {
	return &settingsRepository{db: x}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM site_settings WHERE key = $1`, key).
		Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO site_settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	_, err := r.db.ExecContext(ctx, query, key, value)
	return err
}
