package observability

import (
	"io"
	"log/slog"

	"github.com/joeycumines/logiface"
	islog "github.com/joeycumines/logiface-slog"
)

// Event is the logiface event type backing Logger, bridged onto log/slog.
type Event = islog.Event

// Logger is the ambient structured-logging facade used throughout spark2026.
// It is a direct alias over [logiface.Logger], the teacher's own logging
// dependency, so callers get the full fluent builder API (Str, Int64, Err,
// ...) without this package re-inventing one.
type Logger = logiface.Logger[*Event]

// NewLogger builds a Logger writing to handler via the logiface-slog
// adapter. Passing nil uses a discarding JSON handler, equivalent to a
// no-op logger, mirroring the teacher's NewNoOpLogger default.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewJSONHandler(io.Discard, nil)
	}
	return logiface.New[*Event](islog.NewLogger(handler))
}

// NoOpLogger returns a Logger that discards everything. Used as the default
// for components constructed without an explicit Logger option.
func NoOpLogger() *Logger {
	return NewLogger(nil)
}
