// Package batch applies a pairwise scalar function across two aligned
// batches of triplets.
//
// Rows are split into contiguous chunks and evaluated concurrently. Every
// cell is computed independently and written exactly once, so the result is
// identical to a sequential run regardless of scheduling.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/deltae/model"
)

// ErrInvalidArgument is the kind shared by all argument errors in deltae.
var ErrInvalidArgument = model.ErrInvalidArgument

// ErrShapeMismatch indicates source and reference batches of different shape.
type ErrShapeMismatch struct {
	Source    model.Shape
	Reference model.Shape
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: source %s, reference %s", e.Source, e.Reference)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ErrShapeMismatch) Is(target error) bool { return target == ErrInvalidArgument }

// Func computes a scalar from an aligned pair of triplets.
type Func func(src, ref model.Triplet) float64

// Options configures Apply.
type Options struct {
	// Workers bounds the number of concurrently evaluated chunks.
	// Values <= 0 select runtime.GOMAXPROCS(0).
	Workers int

	// MinRowsPerTask is the smallest chunk handed to a worker. Batches with
	// fewer rows are evaluated on the calling goroutine.
	MinRowsPerTask int
}

// DefaultOptions returns the default Apply configuration.
func DefaultOptions() Options {
	return Options{
		Workers:        runtime.GOMAXPROCS(0),
		MinRowsPerTask: 64,
	}
}

// Option configures Apply.
type Option func(*Options)

// WithWorkers sets the worker limit. 1 forces a sequential run.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMinRowsPerTask sets the smallest chunk handed to a worker.
func WithMinRowsPerTask(n int) Option {
	return func(o *Options) {
		o.MinRowsPerTask = n
	}
}

// Apply returns a collection of the same shape as src where each cell is
// fn(src[i][j], ref[i][j]).
//
// It fails if the shapes differ or a batch's data does not match its shape;
// it never truncates or pads. The context is checked between rows.
func Apply(ctx context.Context, src, ref model.Batch, fn Func, optFns ...Option) (model.Scalars, error) {
	if err := src.Validate(); err != nil {
		return model.Scalars{}, fmt.Errorf("source: %w", err)
	}
	if err := ref.Validate(); err != nil {
		return model.Scalars{}, fmt.Errorf("reference: %w", err)
	}
	if src.Shape() != ref.Shape() {
		return model.Scalars{}, &ErrShapeMismatch{Source: src.Shape(), Reference: ref.Shape()}
	}

	opts := DefaultOptions()
	for _, o := range optFns {
		o(&opts)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.MinRowsPerTask <= 0 {
		opts.MinRowsPerTask = 1
	}

	out := model.NewScalars(src.Rows, src.Cols)

	if opts.Workers == 1 || src.Rows <= opts.MinRowsPerTask {
		if err := applyRows(ctx, src, ref, out, fn, 0, src.Rows); err != nil {
			return model.Scalars{}, err
		}
		return out, nil
	}

	chunk := (src.Rows + opts.Workers - 1) / opts.Workers
	if chunk < opts.MinRowsPerTask {
		chunk = opts.MinRowsPerTask
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for start := 0; start < src.Rows; start += chunk {
		end := min(start+chunk, src.Rows)
		g.Go(func() error {
			return applyRows(gctx, src, ref, out, fn, start, end)
		})
	}

	if err := g.Wait(); err != nil {
		return model.Scalars{}, err
	}
	return out, nil
}

// applyRows fills rows [start, end) of out. Chunks never overlap.
func applyRows(ctx context.Context, src, ref model.Batch, out model.Scalars, fn Func, start, end int) error {
	cols := src.Cols
	for i := start; i < end; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		base := i * cols
		for j := 0; j < cols; j++ {
			out.Data[base+j] = fn(src.Data[base+j], ref.Data[base+j])
		}
	}
	return nil
}
