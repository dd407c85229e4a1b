package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"eventmicrosite/internal/domain"
)

// SitePasswordKey is the settings key holding the bcrypt hash of the shared
// site passphrase.
const SitePasswordKey = "site_password"

type authService struct {
	userRepo     domain.UserRepository
	settingsRepo domain.SettingsRepository
}

// NewAuthService creates an AuthService with the given repositories.
func NewAuthService(userRepo domain.UserRepository, settingsRepo domain.SettingsRepository) domain.AuthService {
	return &authService{userRepo: userRepo, settingsRepo: settingsRepo}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (s *authService) VerifySitePassword(ctx context.Context, password string) (bool, error) {
	hash, err := s.settingsRepo.Get(ctx, SitePasswordKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get site password: %w", err)
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}
