package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRedisStore creates a miniredis instance and a connected RedisStore.
func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisStore(RedisOptions{
		URL: fmt.Sprintf("redis://%s", mr.Addr()),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestNewRedisStore(t *testing.T) {
	t.Run("successful connection", func(t *testing.T) {
		store := setupRedisStore(t)
		require.NotNil(t, store)
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := NewRedisStore(RedisOptions{URL: "not-a-url"})
		assert.ErrorIs(t, err, ErrStorageFailed)
	})
}

func TestRedisStoreSetGet(t *testing.T) {
	ctx := context.Background()
	store := setupRedisStore(t)

	require.NoError(t, store.Set(ctx, KeySecurityFindings, `[{"id":"f-1"}]`))

	value, err := store.Get(ctx, KeySecurityFindings)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"f-1"}]`, value)
}

func TestRedisStoreGetMissing(t *testing.T) {
	store := setupRedisStore(t)

	_, err := store.Get(context.Background(), KeyToken)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := setupRedisStore(t)

	require.NoError(t, store.Set(ctx, KeyOshMetadata, "{}"))
	require.NoError(t, store.Delete(ctx, KeyOshMetadata))

	_, err := store.Get(ctx, KeyOshMetadata)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.Delete(ctx, KeyOshMetadata))
}

func TestRedisStoreInvalidKey(t *testing.T) {
	ctx := context.Background()
	store := setupRedisStore(t)

	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, store.Set(ctx, "", "x"), ErrInvalidKey)
	assert.ErrorIs(t, store.Delete(ctx, ""), ErrInvalidKey)
}
