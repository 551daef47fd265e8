// Package renderlog wraps log/slog with the structured fields the render
// pipeline's coordinator and workers emit, per SPEC_FULL.md §4.10. The
// teacher has no structured-logging dependency of its own (just ad hoc
// fmt.Printf in profiling.go/benchmark.go); this keeps that same "print
// timing info around a phase" habit but with queryable fields instead of
// formatted strings.
package renderlog

import (
	"log/slog"
	"os"
	"time"
)

// Logger is a thin handle around a *slog.Logger scoped to the render
// pipeline.
type Logger struct {
	inner *slog.Logger
}

// New returns a Logger writing structured text to w (os.Stderr if nil).
func New(w *os.File) *Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{inner: slog.New(handler)}
}

func (l *Logger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }

// TileStarted logs a worker picking up a tile.
func (l *Logger) TileStarted(worker, tileX, tileY int) {
	l.Info("tile started", slog.Int("worker", worker), slog.Int("tile_x", tileX), slog.Int("tile_y", tileY))
}

// TileFinished logs a completed tile with its wall-clock cost.
func (l *Logger) TileFinished(worker, tileX, tileY int, elapsed time.Duration) {
	l.Info("tile finished",
		slog.Int("worker", worker),
		slog.Int("tile_x", tileX),
		slog.Int("tile_y", tileY),
		slog.Duration("duration", elapsed))
}

// RenderFinished logs the whole render's wall-clock cost.
func (l *Logger) RenderFinished(tiles int, elapsed time.Duration) {
	l.Info("render finished", slog.Int("tiles", tiles), slog.Duration("duration", elapsed))
}
