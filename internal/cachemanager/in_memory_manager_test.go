package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type digest string

type built struct {
	Regions int
}

func newCache[V any]() *InMemoryCacheManager[digest, V] {
	return NewInMemoryCacheManager[digest, V]("test", DefaultExpiration, DefaultCleanupInterval)
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := newCache[*built]()
	value := &built{Regions: 3}
	cache.Set(context.Background(), "abc", value, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "abc")
	require.True(t, ok)
	require.Same(t, value, got)
	require.Equal(t, 1, cache.Len())
}

func TestInMemoryCacheManager_GetMissing(t *testing.T) {
	cache := newCache[*built]()

	got, ok := cache.Get(context.Background(), "abc")
	require.False(t, ok)
	require.Nil(t, got)
}

func TestInMemoryCacheManager_GetWrongType(t *testing.T) {
	cache := newCache[string]()
	cache.cache.Set("abc", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "abc")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	cache := newCache[string]()
	cache.Set(context.Background(), "abc", "value", time.Millisecond)

	require.Eventually(t, func() bool {
		_, ok := cache.Get(context.Background(), "abc")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestInMemoryCacheManager_GetWithRefresh(t *testing.T) {
	cache := newCache[string]()

	_, ok := cache.GetWithRefresh(context.Background(), "abc", time.Hour)
	require.False(t, ok)

	cache.Set(context.Background(), "abc", "value", 50*time.Millisecond)
	got, ok := cache.GetWithRefresh(context.Background(), "abc", time.Hour)
	require.True(t, ok)
	require.Equal(t, "value", got)

	time.Sleep(80 * time.Millisecond)
	_, ok = cache.Get(context.Background(), "abc")
	require.True(t, ok, "refresh extended the ttl")
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	cache := newCache[string]()
	ctx := context.Background()
	cache.Set(ctx, "a", "1", DefaultExpiration)
	cache.Set(ctx, "b", "2", DefaultExpiration)
	cache.Set(ctx, "c", "3", DefaultExpiration)

	require.NoError(t, cache.Delete(ctx))
	require.NoError(t, cache.Delete(ctx, "a", "b"))
	_, ok := cache.Get(ctx, "a")
	require.False(t, ok)
	require.Equal(t, 1, cache.Len())

	require.NoError(t, cache.Flush(ctx))
	require.Equal(t, 0, cache.Len())
}
