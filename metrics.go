package deltae

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/deltae/distance"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordDistance is called after each batch distance computation.
	// cells is the number of source cells, duration the total time taken,
	// err is nil if successful.
	RecordDistance(metric Metric, cells int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDistance(Metric, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DistanceCount  atomic.Int64
	DistanceErrors atomic.Int64
	Cells          atomic.Int64
	TotalNanos     atomic.Int64

	byMetric [distance.NumMetrics]atomic.Int64
}

// RecordDistance implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDistance(metric Metric, cells int, duration time.Duration, err error) {
	b.DistanceCount.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DistanceErrors.Add(1)
		return
	}
	b.Cells.Add(int64(cells))
	if metric.Valid() {
		b.byMetric[metric].Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	byMetric := make(map[Metric]int64)
	for i := range b.byMetric {
		if n := b.byMetric[i].Load(); n > 0 {
			byMetric[Metric(i)] = n
		}
	}
	return BasicMetricsStats{
		DistanceCount:  b.DistanceCount.Load(),
		DistanceErrors: b.DistanceErrors.Load(),
		Cells:          b.Cells.Load(),
		AvgNanos:       b.getAvgNanos(),
		ByMetric:       byMetric,
	}
}

func (b *BasicMetricsCollector) getAvgNanos() int64 {
	count := b.DistanceCount.Load()
	if count == 0 {
		return 0
	}
	return b.TotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DistanceCount  int64
	DistanceErrors int64
	Cells          int64
	AvgNanos       int64
	// ByMetric counts successful computations per metric.
	ByMetric map[Metric]int64
}
