// SPDX-License-Identifier: MIT
// Package: relgraph/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(gopts, bopts, cons...).
//   • Constructors append to a Draft; core.New validates the result.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/label"
)

// Draft accumulates objects and relations before validation.
type Draft struct {
	Objects   []core.Object
	Relations []core.Relation

	seen map[int]struct{}
}

// AddObject registers obj once; repeated indices are ignored so that
// constructors can be composed over the same index range.
func (d *Draft) AddObject(obj core.Object) {
	if d.seen == nil {
		d.seen = make(map[int]struct{})
	}
	if _, ok := d.seen[obj.Index]; ok {
		return
	}
	d.seen[obj.Index] = struct{}{}
	d.Objects = append(d.Objects, obj)
}

// Relate appends a relation entry from→to.
func (d *Draft) Relate(from, to int, labels ...label.Label) {
	d.Relations = append(d.Relations, core.Relation{From: from, To: to, Labels: labels})
}

// Constructor applies a deterministic mutation to the draft.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildGraph resolves bopts, runs every constructor in order and builds the
// graph with gopts. Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(gopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.New(d.Objects, d.Relations, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// Custom wraps a configuration-free draft mutation as a Constructor.
func Custom(fn func(d *Draft) error) Constructor {
	return func(d *Draft, _ builderConfig) error {
		if fn == nil {
			return fmt.Errorf("Custom: nil func: %w", ErrConstructFailed)
		}
		return fn(d)
	}
}
