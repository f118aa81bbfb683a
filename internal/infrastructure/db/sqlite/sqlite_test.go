package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebook/recipe-book/internal/infrastructure/store"
)

func TestKV_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer kv.Close()

	_, err = kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "k", []byte(`["a"]`)))
	require.NoError(t, kv.Set(ctx, "k", []byte(`["b"]`)))

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `["b"]`, string(got))

	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Delete(ctx, "k"))
	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	assert.NoError(t, kv.Ping(ctx))
}

func TestKV_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "recipes.db")

	kv, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, store.KeyCategories, []byte(`[]`)))
	require.NoError(t, kv.Close())

	kv, err = Open(ctx, path)
	require.NoError(t, err)
	defer kv.Close()

	got, err := kv.Get(ctx, store.KeyCategories)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}
