package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reliefworks/donation-system/internal/api"
	"github.com/reliefworks/donation-system/internal/infrastructure/db/postgres"
	"github.com/reliefworks/donation-system/internal/pkg/config"
	"github.com/reliefworks/donation-system/pkg/logger"
)

// @title        Donation Relief Gateway API
// @version      1.0
// @description  Role-gated CRUD gateway for the disaster-relief donation platform.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := postgres.New(ctx, cfg.Postgres.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("database initialization failed")
	}
	defer store.Close()

	e := api.NewRouter(store, cfg, log)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: e,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting donation gateway")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		log.Info().Msg("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("application terminated with error")
	}
}
