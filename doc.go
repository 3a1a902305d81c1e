// Package deltae computes perceptual color differences between batches of
// color samples.
//
// Given a measured (source) batch and a reference batch of the same shape,
// deltae returns one non-negative scalar per aligned pair according to a
// selectable metric: CIE76, CIE94 (graphic arts, textiles), CIEDE2000, CMC
// (1:1, 2:1), and the RGB/RGBL identifiers, which reuse the Euclidean
// formula on RGB inputs. Inputs are expected in the color space the metric
// expects; conversion into Lab happens upstream.
//
// # Quick Start
//
//	src, _ := model.BatchFromRows([][]model.Triplet{{{50, 2.6772, -79.7751}}})
//	ref, _ := model.BatchFromRows([][]model.Triplet{{{50, 0, -82.7485}}})
//
//	out, err := deltae.Distance(ctx, src, ref, deltae.MetricCIE2000)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(out.At(0, 0)) // ≈ 2.0425
//
// # Calculator
//
// A Calculator carries logging, metrics and concurrency settings:
//
//	calc := deltae.New(
//	    deltae.WithLogger(deltae.NewJSONLogger(slog.LevelDebug)),
//	    deltae.WithMetricsCollector(&deltae.BasicMetricsCollector{}),
//	    deltae.WithWorkers(4),
//	)
//	out, err := calc.Distance(ctx, src, ref, deltae.MetricCMC2To1)
//	fmt.Println(deltae.Summarize(out))
//
// # Errors
//
// An unknown metric fails with *ErrInvalidMetric before any computation;
// batches of different shape fail with *ErrShapeMismatch. Both match
// ErrInvalidArgument via errors.Is.
//
// # Packages
//
//   - distance: the pairwise formulas and the metric dispatch
//   - batch: element-wise application over aligned batches
//   - model: triplets, batches and scalar collections
//   - codec: batch file encoding with optional zstd/lz4 compression
package deltae
