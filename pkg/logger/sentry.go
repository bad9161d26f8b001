package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// withSentry combines base with a Sentry handler. If the SDK cannot be
// initialized the failure is logged and base is returned unchanged.
func withSentry(base slog.Handler, cfg SentryConfig) slog.Handler {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(base).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return base
	}

	// Errors create issues; warnings are kept as searchable logs.
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if strings.EqualFold(cfg.MinLevel, "error") {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return newMultiHandler(base, sentryHandler)
}
