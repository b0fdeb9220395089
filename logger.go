package pointgen

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with pointgen-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithLayout adds a layout field to the logger.
func (l *Logger) WithLayout(layout Layout) *Logger {
	return &Logger{
		Logger: l.Logger.With("layout", layout.String()),
	}
}

// WithDataset adds a dataset name field to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// LogGenerate logs a generate operation.
func (l *Logger) LogGenerate(ctx context.Context, req Request, points int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generate failed",
			"layout", req.Layout.String(),
			"amount", req.Amount,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "generate completed",
			"layout", req.Layout.String(),
			"amount", req.Amount,
			"points", points,
			"duration", duration,
		)
	}
}

// LogBatch logs a batch generate operation.
func (l *Logger) LogBatch(ctx context.Context, count int, duration time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch generate failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch generate completed",
			"count", count,
			"duration", duration,
		)
	}
}

// LogStep logs a clustering step.
func (l *Logger) LogStep(ctx context.Context, k, changed int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "step completed",
			"k", k,
			"changed", changed,
		)
	}
}

// LogSnapshot logs a snapshot operation.
func (l *Logger) LogSnapshot(ctx context.Context, name, id string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"dataset", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"dataset", name,
			"id", id,
		)
	}
}
