// Package dataset loads feature files into a model.Dataset.
//
// A feature file holds one entry per row: an identifier followed by the
// feature values.
//
//	pic.0001.jpg,0.12,0.03,0.85
//	pic.0002.jpg,0.10,0.05,0.85
//
// Files ending in .json hold an array of {"id": ..., "vector": [...]} objects
// instead. A trailing .zst or .lz4 suffix selects transparent decompression,
// e.g. "rgb.csv.zst" or "texture.json.lz4".
//
// Loaded datasets are validated: duplicate identifiers and rows of differing
// length are rejected.
package dataset
