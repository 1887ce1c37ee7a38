package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/pavanmanishd/freelist/internal/perf"
)

// Logger wraps slog.Logger with benchmark-specific helpers.
// This keeps field names consistent across commands.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// WithWorkload adds a workload field to the logger.
func (l *Logger) WithWorkload(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("workload", name),
	}
}

// LogRun logs the completion of one workload.
func (l *Logger) LogRun(ctx context.Context, n int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "workload failed",
			"n", n,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "workload completed",
			"n", n,
			"elapsed", elapsed,
		)
	}
}

// LogCounters logs the counter values of one workload.
func (l *Logger) LogCounters(ctx context.Context, counters perf.Counters) {
	args := make([]any, 0, 2*len(counters))
	for _, c := range counters {
		args = append(args, c.Event.String(), c.Value)
	}
	l.DebugContext(ctx, "counters", args...)
}
