package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
	"github.com/recipebook/recipe-book/internal/infrastructure/config"
	"github.com/recipebook/recipe-book/internal/infrastructure/store"
)

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, _, err := OpenStore(context.Background(), config.StorageConfig{Driver: "etcd"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestLocal_SeedsDefaults(t *testing.T) {
	ctx := context.Background()
	st, closeStore, err := OpenStore(ctx, config.StorageConfig{Driver: config.DriverMemory}, zerolog.Nop())
	require.NoError(t, err)
	defer closeStore(ctx)

	svc, err := Local(ctx, st, LocalOptions{JWTSecret: "secret"}, zerolog.Nop())
	require.NoError(t, err)

	cats, err := svc.Categories.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategories(), cats)

	recipes, err := svc.Recipes.List(ctx, domain.RecipeFilter{})
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestLocal_SeedKeepsEmptiedCategories(t *testing.T) {
	ctx := context.Background()
	st, _, err := OpenStore(ctx, config.StorageConfig{Driver: config.DriverMemory}, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, store.NewCollection[domain.Category](st, store.KeyCategories).Save(ctx, []domain.Category{}))

	svc, err := Local(ctx, st, LocalOptions{}, zerolog.Nop())
	require.NoError(t, err)
	cats, err := svc.Categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestLocal_SQLiteSessionSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "book.db")}

	st, closeStore, err := OpenStore(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	svc, err := Local(ctx, st, LocalOptions{JWTSecret: "secret"}, zerolog.Nop())
	require.NoError(t, err)
	sess, err := svc.Auth.Register(ctx, ports.RegisterInput{Name: "Ana", Username: "ana", Password: "secret1", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NoError(t, closeStore(ctx))

	st, closeStore, err = OpenStore(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeStore(ctx)
	svc, err = Local(ctx, st, LocalOptions{JWTSecret: "secret"}, zerolog.Nop())
	require.NoError(t, err)

	current, err := svc.Auth.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, sess.User.ID, current.User.ID)
}

func TestLocal_StatelessHasNoActiveSession(t *testing.T) {
	ctx := context.Background()
	st, _, err := OpenStore(ctx, config.StorageConfig{Driver: config.DriverMemory}, zerolog.Nop())
	require.NoError(t, err)
	svc, err := Local(ctx, st, LocalOptions{JWTSecret: "secret", Stateless: true}, zerolog.Nop())
	require.NoError(t, err)

	_, err = svc.Auth.Register(ctx, ports.RegisterInput{Name: "Ana", Username: "ana", Password: "secret1", Email: "ana@example.com"})
	require.NoError(t, err)
	current, err := svc.Auth.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}
