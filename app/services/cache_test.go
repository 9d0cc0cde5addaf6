package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRemember(t *testing.T) {
	current := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	cache := NewCache(5 * time.Minute)
	cache.now = func() time.Time { return current }

	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return calls, nil
	}

	v, err := cache.Remember("dashboard:summary", compute)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Within the TTL the cached value is served.
	current = current.Add(4 * time.Minute)
	v, err = cache.Remember("dashboard:summary", compute)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, calls)

	// Past the TTL the value is recomputed.
	current = current.Add(2 * time.Minute)
	v, err = cache.Remember("dashboard:summary", compute)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)
}

func TestCacheRememberError(t *testing.T) {
	cache := NewCache(time.Minute)

	boom := errors.New("query failed")
	_, err := cache.Remember("k", func() (interface{}, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	// A failed computation caches nothing.
	v, err := cache.Remember("k", func() (interface{}, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestCacheFlush(t *testing.T) {
	cache := NewCache(time.Hour)

	_, err := cache.Remember("k", func() (interface{}, error) { return 1, nil })
	require.NoError(t, err)

	cache.Flush()

	v, err := cache.Remember("k", func() (interface{}, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}
