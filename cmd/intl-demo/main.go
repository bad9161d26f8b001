// Command intl-demo serves a small page localized per request.
//
// The locale comes from the "lang" cookie, then Accept-Language. Requests
// carrying a user id (X-User-ID header or user_id cookie) use the stored
// language preference of that user instead.
package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dmitrymomot/intl/middlewares"
	"github.com/dmitrymomot/intl/pkg/config"
	"github.com/dmitrymomot/intl/pkg/intl"
	"github.com/dmitrymomot/intl/pkg/logger"
	"github.com/dmitrymomot/intl/pkg/userlang"
)

//go:embed locales
var localesFS embed.FS

type serverConfig struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	UserLangTimeout   time.Duration `env:"USERLANG_LOOKUP_TIMEOUT" envDefault:"500ms"`
}

type appConfig struct {
	Server   serverConfig
	Log      logger.Config
	Intl     intl.EnvConfig
	S3       intl.S3Config
	Postgres userlang.PostgresConfig
	Redis    userlang.RedisConfig
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(cfg.Log, logger.LocaleExtractor(), middlewares.RequestIDExtractor())
	defer sentry.Flush(2 * time.Second)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var hooks []func(context.Context) error
	probes := checks{}

	if err := intl.Configure(log, cfg.Intl.AvailableLocales...); err != nil {
		return err
	}

	catalog, err := catalogOption(ctx, cfg.S3)
	if err != nil {
		return err
	}
	base, err := intl.NewConfig(append(cfg.Intl.Options(), catalog)...)
	if err != nil {
		return err
	}

	var store userlang.Store = userlang.NewMemory()
	if cfg.Postgres.ConnectionString != "" {
		pool, err := userlang.OpenPostgres(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		hooks = append(hooks, func(context.Context) error { pool.Close(); return nil })
		probes["postgres"] = pool.Ping

		if err := userlang.Migrate(ctx, pool, cfg.Postgres.MigrationsTable, log); err != nil {
			return err
		}
		store = userlang.NewPostgres(pool)
	}
	if cfg.Redis.URL != "" {
		client, err := userlang.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		hooks = append(hooks, func(context.Context) error { return client.Close() })
		probes["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }

		store = userlang.NewCached(store, client,
			userlang.WithCachePrefix(cfg.Redis.Prefix),
			userlang.WithCacheTTL(cfg.Redis.TTL),
			userlang.WithCacheLogger(log),
		)
	}

	srv := &server{
		base:        base,
		cache:       intl.NewFormatterCache(),
		store:       store,
		log:         log,
		now:         time.Now,
		checks:      probes,
		userTimeout: cfg.Server.UserLangTimeout,
	}
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	return serve(ctx, httpServer, cfg.Server.ShutdownTimeout, log, hooks...)
}

// catalogOption reads catalogs from S3 when a bucket is configured and from
// the embedded locales otherwise.
func catalogOption(ctx context.Context, cfg intl.S3Config) (intl.ConfigOption, error) {
	if cfg.Bucket != "" {
		return intl.WithMessagesS3(ctx, intl.NewS3Client(cfg), cfg.Bucket, cfg.Prefix), nil
	}

	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		return nil, err
	}
	return intl.WithMessagesFS(sub), nil
}

// serve runs srv until ctx is done, then shuts it down and runs hooks
// in order within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, log *slog.Logger, hooks ...func(context.Context) error) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	for _, hook := range hooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			log.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		log.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}
	log.Info("shutdown completed")
	return nil
}
