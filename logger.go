package vecrank

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with vecrank-specific context.
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
	return NewLogger(slog.DiscardHandler)
}

// WithMetric adds a metric name field to the logger.
func (l *Logger) WithMetric(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", name),
	}
}

// WithQuery adds a query identifier field to the logger.
func (l *Logger) WithQuery(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("query", id),
	}
}

// WithN adds the requested match count to the logger.
func (l *Logger) WithN(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("n", n),
	}
}

// LogRank logs a ranking call.
func (l *Logger) LogRank(ctx context.Context, scored, returned int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rank failed",
			"error", err,
			"elapsed", elapsed,
		)
		return
	}
	l.DebugContext(ctx, "rank completed",
		"scored", scored,
		"returned", returned,
		"elapsed", elapsed,
	)
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, name string, entries, dimension int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dataset load failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "dataset loaded",
		"name", name,
		"entries", entries,
		"dimension", dimension,
	)
}
