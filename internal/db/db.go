package db

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/lib/pq"

	"eventmicrosite/config"
)

// Open builds the shared connection pool from config. The pool bounds
// concurrent connections and recycles idle ones; it is verified with a ping
// before use.
func Open(cfg *config.Config) (*sql.DB, error) {
	pool, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(cfg.DBMaxConns)
	pool.SetMaxIdleConns(cfg.DBMinIdleConns)
	pool.SetConnMaxIdleTime(cfg.DBIdleTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Transient Postgres error codes: admin_shutdown, crash_shutdown,
// cannot_connect_now. Everything else (constraint, syntax, data errors) is
// treated as permanent.
var transientPqCodes = map[pq.ErrorCode]struct{}{
	"57P01": {},
	"57P02": {},
	"57P03": {},
}

// IsTransient reports whether an error is a connection-level failure worth
// retrying. Constraint violations and other data errors are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		_, ok := transientPqCodes[pqErr.Code]
		return ok
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection terminated")
}

// Executor runs parameterized statements against the pool with bounded retry
// on transient failures. Centralizing retry here keeps resilience logic out
// of the repositories; they only interpret non-transient failures as domain
// errors.
type Executor struct {
	pool        *sql.DB
	logger      *slog.Logger
	retries     int
	baseDelay   time.Duration
	isRetryable func(error) bool
}

// NewExecutor wraps pool with the given retry bound and linear backoff base
// delay. The retryable classifier defaults to IsTransient.
func NewExecutor(pool *sql.DB, logger *slog.Logger, retries int, baseDelay time.Duration) *Executor {
	if retries < 1 {
		retries = 1
	}
	return &Executor{
		pool:        pool,
		logger:      logger,
		retries:     retries,
		baseDelay:   baseDelay,
		isRetryable: IsTransient,
	}
}

// SetRetryable replaces the transient-failure classifier. Intended for
// storage-backend substitution and tests.
func (e *Executor) SetRetryable(fn func(error) bool) {
	e.isRetryable = fn
}

// retry runs fn up to the configured bound, sleeping attempt*baseDelay
// between transient failures. Non-transient errors propagate immediately.
func (e *Executor) retry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= e.retries; attempt++ {
		err = fn()
		if err == nil || !e.isRetryable(err) {
			return err
		}
		if attempt == e.retries {
			break
		}
		e.logger.Warn("query failed, retrying",
			"attempt", attempt, "retries", e.retries, "err", err)
		select {
		case <-time.After(time.Duration(attempt) * e.baseDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// ExecContext executes a statement with retry on transient failures.
func (e *Executor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	err := e.retry(ctx, func() error {
		var err error
		res, err = e.pool.ExecContext(ctx, query, args...)
		return err
	})
	return res, err
}

// QueryContext runs a query with retry on transient failures. Row iteration
// errors after a successful submit are not retried.
func (e *Executor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	var rows *sql.Rows
	err := e.retry(ctx, func() error {
		var err error
		rows, err = e.pool.QueryContext(ctx, query, args...)
		return err
	})
	return rows, err
}

// Row defers execution until Scan so the whole round trip sits inside the
// retry loop, preserving the QueryRowContext(...).Scan(...) call shape.
type Row struct {
	e     *Executor
	ctx   context.Context
	query string
	args  []any
}

// QueryRowContext returns a Row whose Scan executes the query with retry.
func (e *Executor) QueryRowContext(ctx context.Context, query string, args ...any) *Row {
	return &Row{e: e, ctx: ctx, query: query, args: args}
}

// Scan executes the query and scans the single result row, retrying the
// whole operation on transient failures. sql.ErrNoRows is not retried.
func (r *Row) Scan(dest ...any) error {
	return r.e.retry(r.ctx, func() error {
		return r.e.pool.QueryRowContext(r.ctx, r.query, r.args...).Scan(dest...)
	})
}

// BeginTx starts a transaction. Only the begin itself is retried; statements
// inside a transaction must not be resubmitted individually, so callers use
// the *sql.Tx directly.
func (e *Executor) BeginTx(ctx context.Context) (*sql.Tx, error) {
	var tx *sql.Tx
	err := e.retry(ctx, func() error {
		var err error
		tx, err = e.pool.BeginTx(ctx, nil)
		return err
	})
	return tx, err
}
