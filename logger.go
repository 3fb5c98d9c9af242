package trellis

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// logger is the active logger. A plain variable; trellis is single-threaded
// like the rest of the scene graph.
var logger = slog.New(nopHandler{})

// SetLogger configures the logger used by trellis. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: deferred mutation flushes, monitor transitions
//   - [slog.LevelWarn]: deep trees and oversized child lists in debug mode
//
// Example:
//
//	trellis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger = l
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger
}
