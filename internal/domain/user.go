package domain

import (
	"context"
	"time"
)

// User roles. Admins can mutate content; viewers only read.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User represents an administrative account. Users are unrelated to events
// and exist only for authentication.
// swagger:model User
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Create(ctx context.Context, u *User) error
	UpdateLastLogin(ctx context.Context, id int64) error
}

// AuthService defines login and site-access verification.
type AuthService interface {
	// Login verifies credentials and records the login time. Returns
	// ErrInvalidCredentials on unknown username or wrong password.
	Login(ctx context.Context, username, password string) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	// VerifySitePassword checks the shared site passphrase against the
	// stored hash. A missing setting counts as a failed check.
	VerifySitePassword(ctx context.Context, password string) (bool, error)
}

// SettingsRepository reads and writes site-wide key/value settings, such as
// the hashed site passphrase.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
