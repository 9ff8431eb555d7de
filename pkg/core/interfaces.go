package core

import (
	"context"
	"fmt"
	"log/slog"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// slogLogger adapts a *slog.Logger to the Logger interface
type slogLogger struct {
	l     *slog.Logger
	level slog.Level
}

// NewSlogLogger returns a Logger that writes each formatted message as a single
// slog record at the given level. A nil logger uses slog.Default().
func NewSlogLogger(l *slog.Logger, level slog.Level) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &slogLogger{l: l, level: level}
}

func (s *slogLogger) Printf(format string, args ...interface{}) {
	ctx := context.Background()
	if !s.l.Enabled(ctx, s.level) {
		return
	}
	s.l.Log(ctx, s.level, trimNewline(fmt.Sprintf(format, args...)))
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// nopHandler is a slog.Handler that discards all records
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewNopLogger returns a slog.Logger that silently discards all output
func NewNopLogger() *slog.Logger { return slog.New(nopHandler{}) }
