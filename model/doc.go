// Package model defines the core types used throughout vecrank.
//
// # Data Types
//
//   - Entry: an identifier paired with a feature vector
//   - Dataset: an ordered, read-only collection of entries
//   - Match: an (identifier, score) pair produced while ranking
//
// A Dataset is treated as read-only for the duration of a ranking call.
// Loaders call Dataset.Validate to reject duplicate identifiers and
// non-uniform vector lengths up front.
package model
