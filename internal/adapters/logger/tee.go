package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// lockedWriter serializes physical writes to a shared file.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}

// teeHandler sends every record to both handlers.
type teeHandler struct {
	primary   slog.Handler
	secondary slog.Handler
}

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.primary.Enabled(ctx, level) || t.secondary.Enabled(ctx, level)
}

//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs error
	if t.primary.Enabled(ctx, r.Level) {
		errs = errors.Join(errs, t.primary.Handle(ctx, r.Clone()))
	}
	if t.secondary.Enabled(ctx, r.Level) {
		errs = errors.Join(errs, t.secondary.Handle(ctx, r))
	}
	return errs
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return teeHandler{t.primary.WithAttrs(attrs), t.secondary.WithAttrs(attrs)}
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	return teeHandler{t.primary.WithGroup(name), t.secondary.WithGroup(name)}
}
