package logger

import "log/slog"

// NewNope returns a logger that discards everything. Tests and optional
// collaborators use it as the default.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
