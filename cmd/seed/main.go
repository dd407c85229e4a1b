// Command seed creates the default admin account and the shared site
// passphrase. Safe to run repeatedly: existing values are left alone.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"eventmicrosite/config"
	"eventmicrosite/internal/db"
	"eventmicrosite/internal/domain"
	"eventmicrosite/internal/repository/postgres"
	"eventmicrosite/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)

	if err := db.ApplyMigrations(cfg.DBUrl, cfg.MigrationsPath); err != nil {
		logger.Error("failed to apply migrations", "err", err)
		os.Exit(1)
	}

	pool, err := db.Open(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	executor := db.NewExecutor(pool, logger, cfg.DBQueryRetries, cfg.DBRetryDelay)
	users := postgres.NewUserRepository(executor)
	settings := postgres.NewSettingsRepository(executor)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	username := envOr("ADMIN_USERNAME", "admin")
	password := envOr("ADMIN_PASSWORD", "admin")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash admin password", "err", err)
		os.Exit(1)
	}
	err = users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	switch {
	case err == nil:
		logger.Info("admin user created", "username", username)
	case errors.Is(err, domain.ErrDuplicateUsername):
		logger.Info("admin user already exists", "username", username)
	default:
		logger.Error("failed to create admin user", "err", err)
		os.Exit(1)
	}

	if _, err := settings.Get(ctx, services.SitePasswordKey); err == nil {
		logger.Info("site password already set")
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		logger.Error("failed to read site password", "err", err)
		os.Exit(1)
	}

	sitePassword := envOr("SITE_PASSWORD", "changeme")
	siteHash, err := bcrypt.GenerateFromPassword([]byte(sitePassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash site password", "err", err)
		os.Exit(1)
	}
	if err := settings.Set(ctx, services.SitePasswordKey, string(siteHash)); err != nil {
		logger.Error("failed to store site password", "err", err)
		os.Exit(1)
	}
	logger.Info("site password set")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
