package deltae

import (
	"context"
	"time"

	"github.com/hupe1980/deltae/batch"
	"github.com/hupe1980/deltae/distance"
	"github.com/hupe1980/deltae/model"
)

// Metric identifies a color-difference formula.
type Metric = distance.Metric

const (
	MetricCIE76            = distance.MetricCIE76
	MetricCIE94GraphicArts = distance.MetricCIE94GraphicArts
	MetricCIE94Textiles    = distance.MetricCIE94Textiles
	MetricCIE2000          = distance.MetricCIE2000
	MetricCMC1To1          = distance.MetricCMC1To1
	MetricCMC2To1          = distance.MetricCMC2To1
	MetricRGB              = distance.MetricRGB
	MetricRGBL             = distance.MetricRGBL
)

// Metrics returns every supported metric in declaration order.
func Metrics() []Metric { return distance.Metrics() }

// ParseMetric resolves a metric by name, e.g. "CIE2000" or "cmc-2to1".
func ParseMetric(s string) (Metric, error) { return distance.ParseMetric(s) }

// Calculator computes color differences between aligned batches.
// It is safe for concurrent use.
type Calculator struct {
	logger    *Logger
	metrics   MetricsCollector
	batchOpts []batch.Option
}

// New creates a Calculator.
func New(optFns ...Option) *Calculator {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}

	var batchOpts []batch.Option
	if o.workers != 0 {
		batchOpts = append(batchOpts, batch.WithWorkers(o.workers))
	}
	if o.minRowsPerTask != 0 {
		batchOpts = append(batchOpts, batch.WithMinRowsPerTask(o.minRowsPerTask))
	}

	return &Calculator{
		logger:    o.logger,
		metrics:   o.metricsCollector,
		batchOpts: batchOpts,
	}
}

// Distance returns, for every cell, the difference of src against ref under
// metric m.
//
// An unknown metric fails with *ErrInvalidMetric before any computation.
// Batches of different shape fail with *ErrShapeMismatch. Both match
// ErrInvalidArgument via errors.Is.
func (c *Calculator) Distance(ctx context.Context, src, ref model.Batch, m Metric) (model.Scalars, error) {
	start := time.Now()
	out, err := c.distance(ctx, src, ref, m)
	elapsed := time.Since(start)

	c.metrics.RecordDistance(m, src.Shape().Len(), elapsed, err)
	c.logger.LogDistance(ctx, m, src.Shape(), elapsed, err)

	return out, err
}

func (c *Calculator) distance(ctx context.Context, src, ref model.Batch, m Metric) (model.Scalars, error) {
	fn, err := distance.Provider(m)
	if err != nil {
		return model.Scalars{}, translateError(err)
	}

	out, err := batch.Apply(ctx, src, ref, batch.Func(fn), c.batchOpts...)
	if err != nil {
		return model.Scalars{}, translateError(err)
	}
	return out, nil
}

// Pair returns the difference of c1 against c2 under metric m.
func (c *Calculator) Pair(c1, c2 model.Triplet, m Metric) (float64, error) {
	fn, err := distance.Provider(m)
	if err != nil {
		return 0, translateError(err)
	}
	return fn(c1, c2), nil
}

var defaultCalculator = New()

// Distance computes color differences with a default Calculator.
func Distance(ctx context.Context, src, ref model.Batch, m Metric) (model.Scalars, error) {
	return defaultCalculator.Distance(ctx, src, ref, m)
}
