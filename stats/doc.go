// Package stats aggregates per-scene uniqueness summaries across a dataset.
//
// Aggregate reports totals, per-scene averages and the percentage of
// objects that fall into each class, in the same shape as the dataset
// statistics printed after a multi-scene run.
//
// Complexity: O(n) in the number of summaries.
package stats
