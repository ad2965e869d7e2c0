package twohop

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"github.com/katalvlaran/relgraph/label"
)

// Sentinel errors for two-hop analysis.
var (
	// ErrGraphNil is returned when a nil graph is passed to Analyze.
	ErrGraphNil = errors.New("twohop: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("twohop: invalid option supplied")
)

// Option configures Analyze.
type Option func(*Options)

// Options holds the resolved analysis parameters.
type Options struct {
	// Ctx allows cancellation between termini.
	Ctx context.Context

	// Workers bounds the number of termini scanned concurrently.
	Workers int

	// Invert applies Label.Inverse to both halves of every pair.
	Invert bool

	err error
}

// DefaultOptions returns background context, GOMAXPROCS workers, no inversion.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the worker count.
//
//	n > 0: exactly n workers
//	n == 0: GOMAXPROCS
//	n < 0: ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithInvertedLabels reports pairs from the terminus' point of view.
func WithInvertedLabels() Option {
	return func(o *Options) { o.Invert = true }
}

// Path is the structural witness a→b→c of a labelled path instance.
type Path struct {
	A int `json:"a"`
	B int `json:"b"`
	C int `json:"c"`
}

// Unique is a uniquely occurring combination with its only witness.
type Unique struct {
	Pair    label.Pair `json:"pair"`
	Witness Path       `json:"witness"`
}

// Terminus is the per-object outcome.
type Terminus struct {
	// Local lists pairs occurring once among paths ending here, sorted by Pair.
	Local []Unique `json:"local"`
	// Global is the subset of Local whose pair occurs once in the whole graph.
	Global []Unique `json:"global"`
	// Paths counts labelled path instances ending here.
	Paths int `json:"paths"`
	// Combinations counts distinct pairs ending here.
	Combinations int `json:"combinations"`
}

// Result is the outcome of Analyze. Every object has a Terminus entry.
type Result struct {
	Termini map[int]Terminus `json:"termini"`

	// Counts is the global pair frequency table.
	Counts map[label.Pair]int `json:"counts"`

	// TotalPaths is the number of labelled path instances in the graph.
	TotalPaths int `json:"total_paths"`
}

// Terminus returns the entry for object id.
func (r *Result) Terminus(id int) (Terminus, bool) {
	t, ok := r.Termini[id]

	return t, ok
}

// IDs returns the analysed object indices, ascending.
func (r *Result) IDs() []int {
	ids := make([]int, 0, len(r.Termini))
	for id := range r.Termini {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// LocalTotal sums locally unique pairs over all termini.
func (r *Result) LocalTotal() int {
	n := 0
	for _, t := range r.Termini {
		n += len(t.Local)
	}

	return n
}

// GlobalTotal sums globally unique pairs over all termini.
func (r *Result) GlobalTotal() int {
	n := 0
	for _, t := range r.Termini {
		n += len(t.Global)
	}

	return n
}

// ObjectsWithLocal counts termini with at least one locally unique pair.
func (r *Result) ObjectsWithLocal() int {
	n := 0
	for _, t := range r.Termini {
		if len(t.Local) > 0 {
			n++
		}
	}

	return n
}
