package deltae

import (
	"errors"
	"fmt"

	"github.com/hupe1980/deltae/batch"
	"github.com/hupe1980/deltae/distance"
	"github.com/hupe1980/deltae/model"
)

// ErrInvalidArgument matches every argument error returned by deltae.
var ErrInvalidArgument = model.ErrInvalidArgument

// ErrInvalidMetric indicates an unsupported metric identifier.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidMetric struct {
	Metric Metric
	cause  error
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("invalid metric: %v", e.Metric)
}

func (e *ErrInvalidMetric) Unwrap() error { return e.cause }

// ErrShapeMismatch indicates source and reference batches of different shape.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	Source    model.Shape
	Reference model.Shape
	cause     error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: source %s, reference %s", e.Source, e.Reference)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var im *distance.ErrInvalidMetric
	if errors.As(err, &im) {
		return &ErrInvalidMetric{Metric: im.Metric, cause: err}
	}
	var sm *batch.ErrShapeMismatch
	if errors.As(err, &sm) {
		return &ErrShapeMismatch{Source: sm.Source, Reference: sm.Reference, cause: err}
	}

	return err
}
