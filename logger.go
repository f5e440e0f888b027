package sandbox

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while scenes or the shell are logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for sandbox and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by sandbox:
//   - [slog.LevelDebug]: surface configuration, frame acquisition, pipeline creation
//   - [slog.LevelInfo]: adapter selection, scene construction, suspend and resume
//   - [slog.LevelWarn]: recoverable surface problems, events dropped before startup
//
// Example:
//
//	sandbox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (backend/, scenes/, app/)
// call this to share one logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
