package deltae

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/deltae/model"
)

// Logger wraps slog.Logger with deltae-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(m Metric) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", m.String()),
	}
}

// WithShape adds a shape field to the logger.
func (l *Logger) WithShape(s model.Shape) *Logger {
	return &Logger{
		Logger: l.Logger.With("shape", s.String()),
	}
}

// LogDistance logs a batch distance computation.
func (l *Logger) LogDistance(ctx context.Context, m Metric, shape model.Shape, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "distance failed",
			"metric", m.String(),
			"shape", shape.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "distance completed",
			"metric", m.String(),
			"shape", shape.String(),
			"cells", shape.Len(),
			"elapsed", elapsed,
		)
	}
}

// LogSummary logs the reduction of a distance batch.
func (l *Logger) LogSummary(ctx context.Context, m Metric, s Summary) {
	l.InfoContext(ctx, "distance summary",
		"metric", m.String(),
		"count", s.Count,
		"mean", s.Mean,
		"rms", s.RMS,
		"min", s.Min,
		"max", s.Max,
	)
}
