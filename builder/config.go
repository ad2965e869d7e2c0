// SPDX-License-Identifier: MIT
// Package: relgraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil            (pure unless seeded)
//   • attrFn = paletteAttrs   (colors/shapes cycle with the object index)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/relgraph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// attrFn fills display attributes for object index i.
	attrFn func(i int) core.Object
}

var (
	palette = []string{"gray", "red", "blue", "green", "brown", "purple", "cyan", "yellow"}
	shapes  = []string{"cube", "sphere", "cylinder"}
	sizes   = []string{"large", "small"}
	mats    = []string{"rubber", "metal"}
)

// newBuilderConfig applies options in order; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{attrFn: paletteAttrs}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// paletteAttrs gives CLEVR-like attributes that cycle with the index.
func paletteAttrs(i int) core.Object {
	return core.Object{
		Index:    i,
		Color:    palette[i%len(palette)],
		Shape:    shapes[i%len(shapes)],
		Material: mats[i%len(mats)],
		Size:     sizes[i%len(sizes)],
	}
}
