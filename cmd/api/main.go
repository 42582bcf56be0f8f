package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	genService := service.NewGeneratorService(generator.NewRandom(), cfg.Limits)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	stopPruner := make(chan struct{})
	go limiter.RunPruner(10*time.Minute, stopPruner)

	routes := handler.Routes{
		Generator: handler.NewGeneratorHandler(genService),
		Limiter:   limiter,
		JWTSecret: cfg.JWTSecret,
	}

	// Profiles and stored settings need the database; generation does not.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, profile routes disabled", "error", err)
	} else {
		defer db.Close()

		if err := repository.Migrate(context.Background(), db); err != nil {
			slog.Error("database migration failed", "error", err)
			os.Exit(1)
		}

		profileService := service.NewProfileService(repository.NewProfileRepository(db), cfg.JWTSecret, cfg.JWTExpiry)
		settingsService := service.NewSettingsService(repository.NewSettingsRepository(db), cfg.Limits)

		routes.Profile = handler.NewProfileHandler(profileService)
		routes.Settings = handler.NewSettingsHandler(settingsService, genService)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(routes),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env,
			"min_length", cfg.Limits.MinLength, "max_length", cfg.Limits.MaxLength)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	close(stopPruner)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
