// SPDX-License-Identifier: MIT
// Package: relgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.

package builder

import "errors"

// ErrTooFewObjects indicates a size parameter (n, rows, cols) below the minimum.
var ErrTooFewObjects = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the draft could not be turned into a graph.
var ErrConstructFailed = errors.New("builder: construction failed")
