package userlang_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/userlang"
)

type fakeRedis struct {
	mu     sync.Mutex
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

// countingStore counts reads that reach the underlying store.
type countingStore struct {
	userlang.Store
	mu    sync.Mutex
	reads int
}

func (s *countingStore) Language(ctx context.Context, id uuid.UUID) (userlang.Language, error) {
	s.mu.Lock()
	s.reads++
	s.mu.Unlock()
	return s.Store.Language(ctx, id)
}

func TestCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("reads through once", func(t *testing.T) {
		t.Parallel()

		backend := &countingStore{Store: userlang.NewMemory()}
		rdb := newFakeRedis()
		store := userlang.NewCached(backend, rdb, userlang.WithCachePrefix("langs"), userlang.WithCacheTTL(time.Minute))

		id := uuid.New()
		require.NoError(t, store.SetLanguage(ctx, id, "en"))

		for range 3 {
			lang, err := store.Language(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "en", lang.Code)
		}
		assert.Equal(t, 1, backend.reads)
		assert.Contains(t, rdb.data, "langs:"+id.String())
		assert.Equal(t, time.Minute, rdb.ttls["langs:"+id.String()])
	})

	t.Run("writes invalidate", func(t *testing.T) {
		t.Parallel()

		rdb := newFakeRedis()
		store := userlang.NewCached(userlang.NewMemory(), rdb)
		id := uuid.New()

		require.NoError(t, store.SetLanguage(ctx, id, "en"))
		_, err := store.Language(ctx, id)
		require.NoError(t, err)

		require.NoError(t, store.SetLanguage(ctx, id, "fr"))
		assert.NotContains(t, rdb.data, "userlang:"+id.String())

		lang, err := store.Language(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "fr", lang.Code)
	})

	t.Run("misses are not cached", func(t *testing.T) {
		t.Parallel()

		rdb := newFakeRedis()
		store := userlang.NewCached(userlang.NewMemory(), rdb)

		_, err := store.Language(ctx, uuid.New())
		require.ErrorIs(t, err, userlang.ErrNotFound)
		assert.Empty(t, rdb.data)
	})

	t.Run("redis failures fall back to the store", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		backend := userlang.NewMemory()
		id := uuid.New()
		require.NoError(t, backend.SetLanguage(ctx, id, "de"))

		rdb := newFakeRedis()
		rdb.getErr = errors.New("i/o timeout")
		rdb.setErr = errors.New("i/o timeout")
		store := userlang.NewCached(backend, rdb, userlang.WithCacheLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

		lang, err := store.Language(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "de", lang.Code)
		assert.Contains(t, buf.String(), "cache read failed")
		assert.Contains(t, buf.String(), "cache write failed")
	})

	t.Run("corrupt entries are replaced", func(t *testing.T) {
		t.Parallel()

		backend := userlang.NewMemory()
		id := uuid.New()
		require.NoError(t, backend.SetLanguage(ctx, id, "it"))

		rdb := newFakeRedis()
		rdb.data["userlang:"+id.String()] = "{not json"
		store := userlang.NewCached(backend, rdb)

		lang, err := store.Language(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "it", lang.Code)
		assert.Contains(t, rdb.data["userlang:"+id.String()], `"code":"it"`)
	})
}

func TestOpenRedis(t *testing.T) {
	t.Parallel()

	_, err := userlang.OpenRedis(context.Background(), userlang.RedisConfig{})
	require.ErrorIs(t, err, userlang.ErrEmptyRedisURL)

	_, err = userlang.OpenRedis(context.Background(), userlang.RedisConfig{URL: "http://localhost:6379"})
	require.ErrorIs(t, err, userlang.ErrFailedToParseURL)
}

func TestCached_Integration(t *testing.T) {
	url := os.Getenv("USERLANG_TEST_REDIS_URL")
	if url == "" {
		t.Skip("USERLANG_TEST_REDIS_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rdb, err := userlang.OpenRedis(ctx, userlang.RedisConfig{URL: url, RetryAttempts: 1})
	require.NoError(t, err)
	defer rdb.Close()

	store := userlang.NewCached(userlang.NewMemory(), rdb, userlang.WithCachePrefix("userlang_test"))
	id := uuid.New()
	require.NoError(t, store.SetLanguage(ctx, id, "es"))

	lang, err := store.Language(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "es", lang.Code)

	raw, err := rdb.Get(ctx, "userlang_test:"+id.String()).Result()
	require.NoError(t, err)
	assert.Contains(t, raw, `"code":"es"`)
}
