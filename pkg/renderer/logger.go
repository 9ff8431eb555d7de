package renderer

import (
	"log/slog"
	"sync/atomic"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// loggerPtr stores the package logger. Accessed atomically so that SetLogger
// can be called while renders are running.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(core.NewNopLogger())
}

// SetLogger configures the logger used for render diagnostics. By default the
// renderer produces no log output; pass nil to restore that.
//
// Levels used:
//   - [slog.LevelDebug]: per-pass timing and ray counts
//   - [slog.LevelWarn]: cancelled renders
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = core.NewNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// NewDefaultLogger returns a core.Logger writing info-level records to slog's
// default logger
func NewDefaultLogger() core.Logger {
	return core.NewSlogLogger(slog.Default(), slog.LevelInfo)
}
