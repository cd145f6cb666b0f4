// Package distance provides the named distance and similarity metrics used for
// ranking feature vectors.
//
// Every metric pairs a scoring kernel with the ranking direction intrinsic to
// it: for Ascending metrics a lower score is more similar, for Descending
// metrics a higher score is.
//
// # Built-in Metrics
//
//   - sum-of-squared-difference (alias "ssd"): Σ(aᵢ − bᵢ)², ascending
//   - histogram-intersection (aliases "rgb-hist", "intersection"): Σmin(aᵢ, bᵢ), descending
//   - multi-region-histogram (alias "multi-hist"): composite over two equal regions, ascending
//   - texture-and-color-combined (aliases "texture-color", "depth"): composite over
//     a color half and a texture half, ascending
//
// # Composite Metrics
//
// A composite metric splits both vectors into consecutive parts and sums the
// weighted residual intersection of each part:
//
//	score = Σₚ wₚ · (1 − Σᵢ∈ₚ min(aᵢ, bᵢ))
//
// Weights are normalized to sum to one.
//
// # Usage
//
//	m, err := distance.Default().Resolve("ssd")
//	score, err := m.Score(a, b)
package distance
