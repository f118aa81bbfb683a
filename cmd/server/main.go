// Command server serves the recipe book HTTP API.
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

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/recipebook/recipe-book/internal/api"
	"github.com/recipebook/recipe-book/internal/api/handler"
	"github.com/recipebook/recipe-book/internal/app"
	"github.com/recipebook/recipe-book/internal/infrastructure/config"
	"github.com/recipebook/recipe-book/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "recipebook",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	st, closeStore, err := app.OpenStore(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	svc, err := app.Local(ctx, st, app.LocalOptions{
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.TokenTTL,
		AllowAnonymous: cfg.AllowAnonymousRecipes,
		PublicOrigin:   cfg.PublicOrigin,
		Stateless:      true,
	}, log)
	if err != nil {
		return err
	}

	e := api.NewRouter(api.Dependencies{
		Auth:       svc.Auth,
		Categories: svc.Categories,
		Recipes:    svc.Recipes,
		Reports:    svc.Reports,
		Ready:      map[string]handler.Pinger{"store": st},
		JWTSecret:  cfg.JWTSecret,
		Log:        log,
		Metrics:    true,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.Storage.Driver).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
