package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a logger from cfg with optional context extractors.
// When cfg.Sentry.DSN is set, records are mirrored to Sentry as well.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	handler := newHandler(cfg)
	if cfg.Sentry.DSN != "" {
		handler = withSentry(handler, cfg.Sentry)
	}
	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}

func newHandler(cfg Config) slog.Handler {
	var out io.Writer = os.Stdout
	if cfg.Output != nil {
		out = cfg.Output
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.NewTextHandler(out, opts)
	}
	return slog.NewJSONHandler(out, opts)
}
