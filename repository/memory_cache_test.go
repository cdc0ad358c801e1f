package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		cache := NewMemoryCache()
		_, ok := cache.Get(ctx, "missing")
		require.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		cache := NewMemoryCache()
		require.NoError(t, cache.Set(ctx, "k", "v", 0))

		val, ok := cache.Get(ctx, "k")
		require.True(t, ok)
		require.Equal(t, "v", val)
	})

	t.Run("entry expires after ttl", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		cache := NewMemoryCache()
		cache.now = func() time.Time { return now }

		require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))

		now = now.Add(59 * time.Second)
		_, ok := cache.Get(ctx, "k")
		require.True(t, ok)

		now = now.Add(time.Second)
		_, ok = cache.Get(ctx, "k")
		require.False(t, ok)
		require.Zero(t, cache.Len())
	})

	t.Run("overwrite", func(t *testing.T) {
		cache := NewMemoryCache()
		require.NoError(t, cache.Set(ctx, "k", "old", 0))
		require.NoError(t, cache.Set(ctx, "k", "new", 0))

		val, _ := cache.Get(ctx, "k")
		require.Equal(t, "new", val)
		require.Equal(t, 1, cache.Len())
	})
	t.Run("sweep drops entries nobody reads again", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		cache := NewMemoryCache()
		defer cache.Stop()
		cache.now = func() time.Time { return now }

		for i := 0; i < 100; i++ {
			require.NoError(t, cache.Set(ctx, fmt.Sprintf("k%d", i), "v", time.Minute))
		}
		require.NoError(t, cache.Set(ctx, "forever", "v", 0))

		now = now.Add(48 * time.Hour)
		cache.cleanup()

		require.Equal(t, 1, cache.Len())
		_, ok := cache.Get(ctx, "forever")
		require.True(t, ok)
	})

	t.Run("full cache purges expired entries before evicting", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		cache := NewMemoryCache()
		defer cache.Stop()
		cache.now = func() time.Time { return now }
		cache.maxEntries = 3

		require.NoError(t, cache.Set(ctx, "a", "v", time.Minute))
		require.NoError(t, cache.Set(ctx, "b", "v", time.Minute))
		require.NoError(t, cache.Set(ctx, "c", "v", time.Hour))

		now = now.Add(2 * time.Minute)
		require.NoError(t, cache.Set(ctx, "d", "v", time.Hour))
		require.Equal(t, 2, cache.Len())

		require.NoError(t, cache.Set(ctx, "e", "v", time.Hour))
		require.NoError(t, cache.Set(ctx, "f", "v", time.Hour))
		require.Equal(t, 3, cache.Len())

		val, ok := cache.Get(ctx, "f")
		require.True(t, ok)
		require.Equal(t, "v", val)
	})
}
