package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"eventmicrosite/internal/domain"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username, password, role string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &domain.User{Username: username, PasswordHash: string(hash), Role: role}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestAuthService_Login(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, newFakeSettingsRepo())
	seeded := seedUser(t, users, "admin", "s3cret", domain.RoleAdmin)

	t.Run("success records the login", func(t *testing.T) {
		u, err := svc.Login(context.Background(), "admin", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, u.ID)
		assert.Equal(t, domain.RoleAdmin, u.Role)
		assert.Equal(t, 1, users.lastLogins[seeded.ID])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "admin", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody", "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_VerifySitePassword(t *testing.T) {
	settings := newFakeSettingsRepo()
	svc := NewAuthService(newFakeUserRepo(), settings)

	t.Run("missing setting fails closed", func(t *testing.T) {
		ok, err := svc.VerifySitePassword(context.Background(), "anything")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	hash, err := bcrypt.GenerateFromPassword([]byte("open-sesame"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, settings.Set(context.Background(), SitePasswordKey, string(hash)))

	t.Run("correct passphrase", func(t *testing.T) {
		ok, err := svc.VerifySitePassword(context.Background(), "open-sesame")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong passphrase", func(t *testing.T) {
		ok, err := svc.VerifySitePassword(context.Background(), "close-sesame")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
