package hopgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hopgo-specific context.
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
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithSize adds the network size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{Logger: l.Logger.With("size", size)}
}

// LogTrain logs a training operation.
func (l *Logger) LogTrain(ctx context.Context, patterns int, incremental bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "train failed",
			"patterns", patterns,
			"incremental", incremental,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "train completed",
			"patterns", patterns,
			"incremental", incremental,
		)
	}
}

// LogRecall logs a recall operation.
func (l *Logger) LogRecall(ctx context.Context, passes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "recall failed",
			"passes", passes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "recall converged",
			"passes", passes,
		)
	}
}

// LogBatchRecall logs a batch recall operation.
func (l *Logger) LogBatchRecall(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch recall completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch recall completed",
			"count", count,
		)
	}
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot completed",
			"name", name,
		)
	}
}
