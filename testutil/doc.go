// Package testutil provides testing utilities for vecrank.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random datasets and computing the exact
// top-N ranking with a straightforward reference implementation.
//
// # Random Datasets
//
//	rng := testutil.NewRNG(seed)
//	ds := rng.UniformDataset(1000, 64)    // values in [0, 1)
//	ds := rng.HistogramDataset(1000, 64)  // rows sum to 1
//
// # Reference Ranking
//
//	ids := testutil.ExactTopN(ds, query, n, metric)
package testutil
