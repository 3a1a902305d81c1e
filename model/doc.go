// Package model defines core types used throughout deltae.
//
// # Color Types
//
//   - Triplet: (L, a, b) for Lab metrics, or (R, G, B) for the RGB/RGBL identifiers
//   - Shape: row/column dimensions of a 2D collection
//
// # Collections
//
//   - Batch: row-major 2D collection of triplets (source or reference samples)
//   - Scalars: row-major 2D collection of distances, same shape as the inputs
//
// Build a batch from nested rows:
//
//	src, err := model.BatchFromRows([][]model.Triplet{
//	    {{50, 2.6772, -79.7751}, {50, 3.1571, -77.2803}},
//	})
package model
