package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrNilConfig = errors.New("config: nil destination")
	ErrParse     = errors.New("config: failed to parse environment")
)

var (
	dotenvOnce sync.Once
	loaded     sync.Map // reflect.Type -> value
)

// Load fills cfg from the environment. The first call for a type parses the
// environment (after loading .env once, if present); later calls copy the
// cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	key := reflect.TypeFor[T]()
	if v, ok := loaded.Load(key); ok {
		*cfg = v.(T)
		return nil
	}

	dotenvOnce.Do(func() {
		// A missing .env file is fine; the process environment still applies.
		_ = godotenv.Load()
	})

	var fresh T
	if err := env.Parse(&fresh); err != nil {
		return fmt.Errorf("%w: %T: %w", ErrParse, fresh, err)
	}

	v, _ := loaded.LoadOrStore(key, fresh)
	*cfg = v.(T)
	return nil
}

// MustLoad is like Load but panics on error. Use it during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from environ only, bypassing the process environment and
// the cache.
func Parse[T any](cfg *T, environ map[string]string) error {
	if cfg == nil {
		return ErrNilConfig
	}
	if environ == nil {
		environ = map[string]string{}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("%w: %T: %w", ErrParse, *cfg, err)
	}
	return nil
}
