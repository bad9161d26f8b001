package userlang

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of redis.UniversalClient the cache uses.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedOption configures a Cached store.
type CachedOption func(*Cached)

// WithCachePrefix sets the key prefix. Keys are stored as "{prefix}:{user id}".
func WithCachePrefix(prefix string) CachedOption {
	return func(c *Cached) {
		c.prefix = prefix
	}
}

// WithCacheTTL sets how long preferences stay cached. Zero or negative
// keeps them until the preference changes.
func WithCacheTTL(ttl time.Duration) CachedOption {
	return func(c *Cached) {
		c.ttl = ttl
	}
}

// WithCacheLogger sets the logger for cache failures.
func WithCacheLogger(l *slog.Logger) CachedOption {
	return func(c *Cached) {
		if l != nil {
			c.log = l
		}
	}
}

// Cached is a read-through Redis cache in front of another Store. Redis
// failures are logged and served from the underlying store.
type Cached struct {
	next   Store
	client RedisClient
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// NewCached wraps next with a Redis cache.
func NewCached(next Store, client RedisClient, opts ...CachedOption) *Cached {
	c := &Cached{
		next:   next,
		client: client,
		prefix: "userlang",
		ttl:    time.Hour,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cached) Language(ctx context.Context, userID uuid.UUID) (Language, error) {
	if err := checkUserID(userID); err != nil {
		return Language{}, err
	}
	key := c.key(userID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var lang Language
		if err := json.Unmarshal(data, &lang); err == nil {
			return lang, nil
		}
		c.log.WarnContext(ctx, "userlang: dropping corrupt cache entry", slog.String("key", key))
		c.del(ctx, key)
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "userlang: cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	lang, err := c.next.Language(ctx, userID)
	if err != nil {
		return Language{}, err
	}

	if data, err := json.Marshal(lang); err == nil {
		if err := c.client.Set(ctx, key, data, max(c.ttl, 0)).Err(); err != nil {
			c.log.WarnContext(ctx, "userlang: cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return lang, nil
}

// SetLanguage updates the underlying store and invalidates the cached entry.
func (c *Cached) SetLanguage(ctx context.Context, userID uuid.UUID, code string) error {
	if err := c.next.SetLanguage(ctx, userID, code); err != nil {
		return err
	}
	c.del(ctx, c.key(userID))
	return nil
}

func (c *Cached) del(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.WarnContext(ctx, "userlang: cache delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (c *Cached) key(userID uuid.UUID) string {
	if c.prefix == "" {
		return userID.String()
	}
	return c.prefix + ":" + userID.String()
}

var _ Store = (*Cached)(nil)
