package userlang

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the preference cache.
type RedisConfig struct {
	URL    string        `env:"REDIS_URL"`
	Prefix string        `env:"USERLANG_CACHE_PREFIX" envDefault:"userlang"`
	TTL    time.Duration `env:"USERLANG_CACHE_TTL" envDefault:"1h"`

	PoolSize      int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	RetryAttempts int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`
}

// OpenRedis creates a Redis client and verifies it with a ping, retrying
// with a linearly growing delay. Both redis:// and rediss:// URLs are
// accepted.
func OpenRedis(ctx context.Context, cfg RedisConfig) (redis.UniversalClient, error) {
	if cfg.URL == "" {
		return nil, ErrEmptyRedisURL
	}
	if !strings.HasPrefix(cfg.URL, "redis://") && !strings.HasPrefix(cfg.URL, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}

	var lastErr error
	for i := range max(cfg.RetryAttempts, 1) {
		client := redis.NewClient(opts)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		if err := wait(ctx, time.Duration(i+1)*cfg.RetryInterval); err != nil {
			return nil, errors.Join(ErrRedisConnectionFail, err)
		}
	}
	return nil, errors.Join(ErrRedisConnectionFail, lastErr)
}
