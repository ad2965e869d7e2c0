package uniqueness

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/relgraph/classify"
	"github.com/katalvlaran/relgraph/label"
)

// Sentinel errors for the pipeline.
var (
	// ErrGraphNil is returned when a nil graph is passed to Analyze.
	ErrGraphNil = errors.New("uniqueness: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("uniqueness: invalid option supplied")
)

// Option configures Analyze.
type Option func(*Options)

// Options holds the pipeline parameters.
type Options struct {
	// Workers bounds two-hop terminus parallelism; 0 means GOMAXPROCS.
	Workers int
	// Invert phrases two-hop pairs from the terminus' side.
	Invert bool
	// Scene is copied into Report.Scene.
	Scene string
	// Logger receives debug timings; defaults to slog.Default().
	Logger *slog.Logger

	err error
}

// DefaultOptions returns GOMAXPROCS workers, no inversion, default logger.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// WithWorkers bounds two-hop parallelism (n ≥ 0).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithInvertedLabels phrases two-hop pairs from the terminus' side.
func WithInvertedLabels(on bool) Option {
	return func(o *Options) { o.Invert = on }
}

// WithSceneName labels the report.
func WithSceneName(name string) Option {
	return func(o *Options) { o.Scene = name }
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Combination is a unique two-hop pair with its witness path [a, b, c].
type Combination struct {
	Pair label.Pair `json:"pair"`
	Path [3]int     `json:"path"`
}

// ObjectReport is the per-object slice of a Report.
type ObjectReport struct {
	Index    int    `json:"index"`
	Color    string `json:"color,omitempty"`
	Shape    string `json:"shape,omitempty"`
	Material string `json:"material,omitempty"`
	Size     string `json:"size,omitempty"`

	UniqueIncoming []label.Label  `json:"unique_incoming"`
	UniqueOutgoing []label.Label  `json:"unique_outgoing"`
	LocalTwoHop    []Combination  `json:"local_two_hop"`
	GlobalTwoHop   []Combination  `json:"global_two_hop"`
	Class          classify.Class `json:"class"`
}

// Summary is the per-scene statistics record.
type Summary struct {
	TotalObjects int `json:"total_objects"`
	TotalEdges   int `json:"total_edges"`
	TotalLabels  int `json:"total_labels"`

	// Objects with at least one unique incoming / outgoing label.
	Edge1Incoming int `json:"edge1_incoming"`
	Edge1Outgoing int `json:"edge1_outgoing"`
	Edge1Total    int `json:"edge1_total"`

	// Locally unique two-hop combinations, summed over termini.
	Edge2Total int `json:"edge2_total"`
	// Termini with at least one locally unique combination.
	Edge2Objects int `json:"edge2_objects"`
	// Globally unique two-hop combinations.
	Edge2Global int `json:"edge2_global"`
	// Labelled two-hop path instances.
	TwoHopPaths int `json:"two_hop_paths"`

	Both     int `json:"objects_with_both"`
	Only1Hop int `json:"objects_with_only_1hop"`
	Only2Hop int `json:"objects_with_only_2hop"`
	Neither  int `json:"objects_with_neither"`

	TotalUniquePatterns int     `json:"total_unique_patterns"`
	Coverage            float64 `json:"coverage"`
}

// Report is the serialisable outcome for one scene.
type Report struct {
	ID       string                 `json:"id"`
	Scene    string                 `json:"scene,omitempty"`
	Inverted bool                   `json:"inverted_labels"`
	Objects  []ObjectReport         `json:"objects"`
	Counts   map[classify.Class]int `json:"counts"`
	Coverage float64                `json:"coverage"`
	Summary  Summary                `json:"summary"`
}

// Object returns the report entry for index id.
func (r *Report) Object(id int) (ObjectReport, bool) {
	for _, o := range r.Objects {
		if o.Index == id {
			return o, true
		}
	}

	return ObjectReport{}, false
}
