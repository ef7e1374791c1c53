package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	})
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("option-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "page_for_landing", "42", DefaultExpiration)

	got, ok := cache.Get(context.Background(), "page_for_landing")
	require.True(t, ok)
	require.Equal(t, "42", got)
}

func TestInMemoryCacheManager_GetMissingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("option-cache", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "page_for_landing")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetExpiredValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("option-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "page_for_landing", "42", time.Millisecond)

	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get(context.Background(), "page_for_landing")
	require.False(t, ok)
}

func TestInMemoryCacheManager_Delete(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("option-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", DefaultExpiration)
	cache.Set(context.Background(), "b", "2", DefaultExpiration)

	err := cache.Delete(context.Background(), "a")
	require.NoError(t, err)

	_, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)

	got, ok := cache.Get(context.Background(), "b")
	require.True(t, ok)
	require.Equal(t, "2", got)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("option-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", DefaultExpiration)
	cache.Set(context.Background(), "b", "2", DefaultExpiration)

	err := cache.Flush(context.Background())
	require.NoError(t, err)

	_, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)
	_, ok = cache.Get(context.Background(), "b")
	require.False(t, ok)
}
