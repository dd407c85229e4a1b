// Package session provides a Postgres-backed store and JSON codec for the
// scs session manager. Sessions survive process restarts; expired rows are
// pruned on a fixed interval independent of request traffic.
package session

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"eventmicrosite/internal/db"
)

// Store implements scs.Store on the session table through the shared query
// executor, so session reads and writes get the same retry policy as every
// repository.
type Store struct {
	db          *db.Executor
	logger      *slog.Logger
	stopCleanup chan bool
}

// NewStore returns a Store that prunes expired sessions every interval. An
// interval of zero disables the prune loop (useful in tests).
func NewStore(x *db.Executor, logger *slog.Logger, interval time.Duration) *Store {
	s := &Store{db: x, logger: logger}
	if interval > 0 {
		s.stopCleanup = make(chan bool)
		go s.cleanupLoop(interval)
	}
	return s
}

// Find returns the payload for a non-expired session token. A store failure
// is logged and reported as "no session" so the owning request degrades to
// anonymous instead of failing.
func (s *Store) Find(token string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(context.Background(),
		`SELECT data FROM session WHERE token = $1 AND expiry > NOW()`, token).
		Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		s.logger.Error("session read failed, treating as no session", "err", err)
		return nil, false, nil
	}
	return data, true, nil
}

// Commit inserts or updates the session row.
func (s *Store) Commit(token string, b []byte, expiry time.Time) error {
	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO session (token, data, expiry)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET data = EXCLUDED.data, expiry = EXCLUDED.expiry
	`, token, b, expiry)
	return err
}

// Delete removes the session row.
func (s *Store) Delete(token string) error {
	_, err := s.db.ExecContext(context.Background(),
		`DELETE FROM session WHERE token = $1`, token)
	return err
}

func (s *Store) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := s.deleteExpired(); err != nil {
				s.logger.Error("session prune failed", "err", err)
			}
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Store) deleteExpired() error {
	_, err := s.db.ExecContext(context.Background(),
		`DELETE FROM session WHERE expiry < NOW()`)
	return err
}

// StopCleanup terminates the prune loop. Call on shutdown.
func (s *Store) StopCleanup() {
	if s.stopCleanup != nil {
		s.stopCleanup <- true
	}
}
