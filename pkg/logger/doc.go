// Package logger builds the application's structured logger.
//
// It wraps log/slog with two additions: context extractors, which copy
// request-scoped values (the request ID, the negotiated locale) onto every
// record, and optional Sentry mirroring.
//
// # Usage
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.New(cfg,
//		logger.LocaleExtractor(),
//		middlewares.RequestIDExtractor(),
//	)
//	log.InfoContext(r.Context(), "order placed", slog.Int("items", 3))
//	// {"level":"INFO","msg":"order placed","items":3,"locale":"es","request_id":"..."}
//
// # Configuration
//
// Config is loaded from the environment:
//
//	LOG_LEVEL           debug, info, warn or error (default info)
//	LOG_FORMAT          json or text (default json)
//	SENTRY_DSN          enables Sentry when set
//	SENTRY_ENVIRONMENT  Sentry environment (default production)
//	SENTRY_MIN_LEVEL    warn or error (default warn)
//
// Without a DSN, or when the Sentry SDK fails to initialize, records go to
// the local handler only, so the same code path runs in development and
// production.
//
// # Context Extractors
//
// A ContextExtractor returns an attribute and whether to add it:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors only see the context passed to the *Context logging methods.
// LogHandlerDecorator applies them to any slog.Handler:
//
//	h := logger.NewLogHandlerDecorator(slog.NewTextHandler(os.Stderr, nil), logger.LocaleExtractor())
package logger
