package scene

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/relgraph/core"
)

// Sentinel errors for scene decoding.
var (
	// ErrUnknownRelation is returned for a relationship key outside the alphabet.
	ErrUnknownRelation = errors.New("scene: unknown relationship label")

	// ErrRelationShape is returned when a relationship table has the wrong row count.
	ErrRelationShape = errors.New("scene: relationship table does not match object count")

	// ErrDecode wraps JSON syntax and type errors.
	ErrDecode = errors.New("scene: cannot decode scene")
)

// Object is one scene object. Coordinates are not decoded.
type Object struct {
	Color    string `json:"color"`
	Shape    string `json:"shape"`
	Material string `json:"material"`
	Size     string `json:"size"`
}

// Scene is the decoded scene file.
type Scene struct {
	ImageFilename string             `json:"image_filename"`
	ImageIndex    int                `json:"image_index"`
	Split         string             `json:"split,omitempty"`
	Objects       []Object           `json:"objects"`
	Relationships map[string][][]int `json:"relationships"`
}

// Option configures Scene.Graph.
type Option func(*graphOptions)

type graphOptions struct {
	ignoreUnknown bool
	core          []core.Option
	logger        *slog.Logger
}

// WithIgnoreUnknownLabels skips relationship keys outside the alphabet.
func WithIgnoreUnknownLabels() Option {
	return func(o *graphOptions) { o.ignoreUnknown = true }
}

// WithCoreOptions forwards options to core.New.
func WithCoreOptions(opts ...core.Option) Option {
	return func(o *graphOptions) { o.core = append(o.core, opts...) }
}

// WithLogger sets the logger used for skipped keys. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *graphOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
