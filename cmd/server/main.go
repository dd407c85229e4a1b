package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"

	"eventmicrosite/config"
	"eventmicrosite/internal/db"
	apphttp "eventmicrosite/internal/delivery/http"
	"eventmicrosite/internal/delivery/http/middleware"
	"eventmicrosite/internal/repository/postgres"
	"eventmicrosite/internal/services"
	"eventmicrosite/internal/session"
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
	logger.Info("migrations applied")

	pool, err := db.Open(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	executor := db.NewExecutor(pool, logger, cfg.DBQueryRetries, cfg.DBRetryDelay)

	store := session.NewStore(executor, logger, cfg.SessionPruneInterval)
	defer store.StopCleanup()

	sessions := scs.New()
	sessions.Store = store
	sessions.Codec = session.JSONCodec{}
	sessions.Lifetime = cfg.SessionLifetime
	sessions.Cookie.Name = cfg.SessionCookieName
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.SameSite = http.SameSiteLaxMode
	sessions.Cookie.Secure = cfg.Environment == "production"

	eventRepo := postgres.NewEventRepository(executor)
	hostRepo := postgres.NewHostRepository(executor)
	speakerRepo := postgres.NewSpeakerRepository(executor)
	guestRepo := postgres.NewGuestRepository(executor)
	scheduleRepo := postgres.NewScheduleRepository(executor)
	userRepo := postgres.NewUserRepository(executor)
	settingsRepo := postgres.NewSettingsRepository(executor)
	mediaRepo := postgres.NewMediaRepository(executor)

	eventSvc := services.NewEventService(eventRepo, hostRepo, speakerRepo, guestRepo, scheduleRepo)
	authSvc := services.NewAuthService(userRepo, settingsRepo)
	mediaSvc := services.NewMediaService(mediaRepo)

	controllers := apphttp.Controllers{
		Events:   apphttp.NewEventController(eventSvc, logger),
		Hosts:    apphttp.NewPersonController(services.NewPersonService(hostRepo, "host"), logger),
		Speakers: apphttp.NewPersonController(services.NewPersonService(speakerRepo, "speaker"), logger),
		Guests:   apphttp.NewGuestController(services.NewGuestService(guestRepo), logger),
		Schedule: apphttp.NewScheduleController(services.NewScheduleService(scheduleRepo), logger),
		Auth:     apphttp.NewAuthController(authSvc, sessions, logger),
		Site:     apphttp.NewSiteController(authSvc, sessions, logger),
		Upload:   apphttp.NewUploadController(mediaSvc, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)

	// Outermost first: logging, CORS, sessions, rate limiter, site gate.
	var handler http.Handler = apphttp.NewRouter(controllers, sessions)
	handler = middleware.SiteGate(sessions, handler)
	handler = limiter.Middleware(handler)
	handler = sessions.LoadAndSave(handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
