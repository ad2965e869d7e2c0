// SPDX-License-Identifier: MIT
// Package: relgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors panic on meaningless input (nil RNG / nil func).
//   • Constructors themselves never panic; they return sentinel errors.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/relgraph/core"
)

// BuilderOption customizes builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG; use it to lock RandomScene outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAttributes overrides the display attributes for each object index.
// The returned Object's Index is always forced to i. Panics on nil.
func WithAttributes(fn func(i int) core.Object) BuilderOption {
	if fn == nil {
		panic("builder: WithAttributes(nil)")
	}
	return func(c *builderConfig) {
		c.attrFn = func(i int) core.Object {
			obj := fn(i)
			obj.Index = i
			return obj
		}
	}
}
