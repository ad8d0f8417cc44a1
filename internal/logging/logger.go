// Package logging holds the process-wide zerolog logger used by the
// collections package and the multiorder command. It is silent until a
// caller installs a real logger with [SetGlobalLogger].
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger. It starts out as [zerolog.Nop].
var Logger zerolog.Logger

func init() {
	SetGlobalLogger(zerolog.Nop())
}

// SetGlobalLogger replaces [Logger] and makes it the default for
// [zerolog.Ctx] lookups on contexts that carry no logger. It is not safe to
// call while other goroutines are logging.
func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
	zerolog.DefaultContextLogger = &Logger
}

// NewConsoleLogger builds a human-readable logger writing to w at the named
// level. Unknown level names fall back to info.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Trace starts a trace-level event on [Logger]. Snapshot view resolution
// and successful removals log here.
func Trace() *zerolog.Event { return Logger.Trace() }

// Debug starts a debug-level event on [Logger].
func Debug() *zerolog.Event { return Logger.Debug() }
