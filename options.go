package deltae

import "log/slog"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	workers          int
	minRowsPerTask   int
}

// Option configures a Calculator.
type Option func(*options)

// WithLogger configures structured logging for distance computations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := deltae.NewJSONLogger(slog.LevelDebug)
//	calc := deltae.New(deltae.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &deltae.BasicMetricsCollector{}
//	calc := deltae.New(deltae.WithMetricsCollector(metrics))
//	// ... use calc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Cells: %d, Avg latency: %dns\n", stats.Cells, stats.AvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithWorkers bounds the number of goroutines evaluating a batch.
// 1 forces sequential evaluation; 0 keeps the default (GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMinRowsPerTask sets the smallest row chunk handed to a worker.
// Batches with fewer rows are evaluated on the calling goroutine.
func WithMinRowsPerTask(n int) Option {
	return func(o *options) {
		o.minRowsPerTask = n
	}
}
