// Package testutil provides testing utilities for deltae.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible Lab samples and batches.
//
// # Random Samples
//
//	rng := testutil.NewRNG(seed)
//	c := rng.Lab()                 // L in [0, 100), a and b in [-128, 128)
//	src := rng.LabBatch(32, 24)    // 32x24 batch
//	ref := rng.Perturb(src, 2.0)   // src with Gaussian noise (sigma 2.0) per component
package testutil
