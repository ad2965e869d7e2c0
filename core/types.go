package core

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/relgraph/label"
)

// Sentinel errors for graph construction.
var (
	// ErrLoopNotAllowed indicates a relation from an object to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrObjectNotFound indicates a relation endpoint missing from the object list.
	ErrObjectNotFound = errors.New("core: object not found")

	// ErrDuplicateObject indicates two objects sharing one Index.
	ErrDuplicateObject = errors.New("core: duplicate object index")

	// ErrNegativeIndex indicates an object Index below zero.
	ErrNegativeIndex = errors.New("core: negative object index")

	// ErrInvalidLabel indicates a relation label outside the alphabet.
	ErrInvalidLabel = errors.New("core: invalid relation label")
)

// Object is one scene object. Only Index takes part in analysis.
type Object struct {
	// Index is the stable scene-local identifier.
	Index int `json:"index" yaml:"index"`

	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
	Shape    string `json:"shape,omitempty" yaml:"shape,omitempty"`
	Material string `json:"material,omitempty" yaml:"material,omitempty"`
	Size     string `json:"size,omitempty" yaml:"size,omitempty"`
}

// Relation is one input entry: the labels holding from From to To.
type Relation struct {
	From   int           `json:"from" yaml:"from"`
	To     int           `json:"to" yaml:"to"`
	Labels []label.Label `json:"labels" yaml:"labels"`
}

// Option configures graph construction.
type Option func(*buildOptions)

type buildOptions struct {
	dropInvalid bool
	logger      *slog.Logger
}

func defaultBuildOptions() buildOptions {
	return buildOptions{logger: slog.Default()}
}

// WithDropInvalid drops self-loops, unknown endpoints and invalid labels
// with a warning instead of failing construction.
func WithDropInvalid() Option {
	return func(o *buildOptions) { o.dropInvalid = true }
}

// WithLogger sets the logger used for drop warnings. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *buildOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Graph is the immutable relation multigraph.
//
// out[u][v] and in[v][u] reference the same label.Set.
// preds/succs hold the sorted neighbour lists derived from in/out.
type Graph struct {
	objects map[int]Object
	ids     []int // sorted object indices

	out map[int]map[int]label.Set
	in  map[int]map[int]label.Set

	preds map[int][]int
	succs map[int][]int

	edgeCount  int
	labelCount int
	dropped    int
}
