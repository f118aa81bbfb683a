// Package app assembles a complete service set, either over a local Record
// Store or against a running API server.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
	"github.com/recipebook/recipe-book/internal/core/service"
	"github.com/recipebook/recipe-book/internal/infrastructure/config"
	"github.com/recipebook/recipe-book/internal/infrastructure/db/memory"
	"github.com/recipebook/recipe-book/internal/infrastructure/db/mongo"
	"github.com/recipebook/recipe-book/internal/infrastructure/db/redis"
	"github.com/recipebook/recipe-book/internal/infrastructure/db/sqlite"
	"github.com/recipebook/recipe-book/internal/infrastructure/remote"
	"github.com/recipebook/recipe-book/internal/infrastructure/store"
)

// Services is one complete set of the service contracts.
type Services struct {
	Auth       ports.AuthService
	Categories ports.CategoryService
	Recipes    ports.RecipeService
	Reports    ports.ReportService
}

// Closer releases a backend.
type Closer func(ctx context.Context) error

func noopCloser(context.Context) error { return nil }

// OpenStore connects the configured key-value backend and wraps it in a Store.
func OpenStore(ctx context.Context, cfg config.StorageConfig, log zerolog.Logger) (*store.Store, Closer, error) {
	opts := store.Options{ResetCorrupt: cfg.ResetCorrupt, Log: log.With().Str("component", "store").Logger()}

	switch cfg.Driver {
	case config.DriverMemory, "":
		return store.New(memory.New(), opts), noopCloser, nil

	case config.DriverSQLite:
		kv, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store.New(kv, opts), func(context.Context) error { return kv.Close() }, nil

	case config.DriverRedis:
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		kv := redis.NewKV(client, "")
		return store.New(kv, opts), func(context.Context) error { return kv.Close() }, nil

	case config.DriverMongo:
		_, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		kv := mongo.NewKV(db)
		return store.New(kv, opts), kv.Close, nil
	}
	return nil, nil, fmt.Errorf("app: unknown storage driver %q", cfg.Driver)
}

// LocalOptions tunes the local service set.
type LocalOptions struct {
	JWTSecret      string
	TokenTTL       time.Duration
	AllowAnonymous bool
	PublicOrigin   string
	// Stateless leaves the active-session slot unused, as the API server
	// does: every request carries its own token.
	Stateless bool
}

// Seed writes the default categories and an empty recipe list to namespaces
// that were never written.
func Seed(ctx context.Context, st *store.Store) error {
	if _, err := store.NewCollection[domain.Category](st, store.KeyCategories).Seed(ctx, domain.DefaultCategories()); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if _, err := store.NewCollection[domain.Recipe](st, store.KeyRecipes).Seed(ctx, []domain.Recipe{}); err != nil {
		return fmt.Errorf("seed recipes: %w", err)
	}
	return nil
}

// Local seeds st and returns the services backed by it.
func Local(ctx context.Context, st *store.Store, opts LocalOptions, log zerolog.Logger) (*Services, error) {
	if err := Seed(ctx, st); err != nil {
		return nil, err
	}

	var slot ports.SessionSlot
	if !opts.Stateless {
		slot = store.NewSessionSlot(st)
	}

	recipes := service.NewRecipeService(
		store.NewCollection[domain.Recipe](st, store.KeyRecipes),
		store.NewBookmarkSets(st),
		service.RecipeOptions{AllowAnonymous: opts.AllowAnonymous, PublicOrigin: opts.PublicOrigin},
		log.With().Str("component", "recipes").Logger(),
	)
	return &Services{
		Auth: service.NewAuthService(store.NewCollection[domain.User](st, store.KeyUsers), slot,
			opts.JWTSecret, opts.TokenTTL, log.With().Str("component", "auth").Logger()),
		Categories: service.NewCategoryService(store.NewCollection[domain.Category](st, store.KeyCategories),
			log.With().Str("component", "categories").Logger()),
		Recipes: recipes,
		Reports: service.NewReportService(recipes, log.With().Str("component", "reports").Logger()),
	}, nil
}

// Remote returns the services of the API at baseURL. The active session is
// kept in slot.
func Remote(baseURL string, slot ports.SessionSlot, log zerolog.Logger) *Services {
	c := remote.NewClient(baseURL, slot, log.With().Str("component", "remote").Logger())
	return &Services{
		Auth:       remote.NewAuthService(c),
		Categories: remote.NewCategoryService(c),
		Recipes:    remote.NewRecipeService(c),
		Reports:    remote.NewReportService(c),
	}
}
