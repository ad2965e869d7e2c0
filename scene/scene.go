package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/label"
)

// Decode reads one scene from r.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &s, nil
}

// Load opens path and decodes the scene it holds.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Name identifies the scene: its image filename, or "scene-<index>".
func (s *Scene) Name() string {
	if s.ImageFilename != "" {
		return s.ImageFilename
	}

	return "scene-" + strconv.Itoa(s.ImageIndex)
}

// Relations turns the relationship tables into core relations, visiting
// label keys in sorted order.
func (s *Scene) Relations(opts ...Option) ([]core.Relation, error) {
	o := s.options(opts)

	keys := make([]string, 0, len(s.Relationships))
	for k := range s.Relationships {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var out []core.Relation
	for _, key := range keys {
		l, err := label.Parse(key)
		if err != nil {
			if o.ignoreUnknown {
				o.logger.Warn("skipping unknown relationship", "scene", s.Name(), "label", key)
				continue
			}
			return nil, fmt.Errorf("%w: %q", ErrUnknownRelation, key)
		}
		rows := s.Relationships[key]
		if len(rows) != len(s.Objects) {
			return nil, fmt.Errorf("%w: %q has %d rows for %d objects",
				ErrRelationShape, key, len(rows), len(s.Objects))
		}
		for i, row := range rows {
			for _, j := range row {
				if j == i {
					continue
				}
				out = append(out, core.Relation{From: i, To: j, Labels: []label.Label{l}})
			}
		}
	}

	return out, nil
}

// Graph builds the relation graph of the scene. Object i of the file
// becomes object index i.
func (s *Scene) Graph(opts ...Option) (*core.Graph, error) {
	rels, err := s.Relations(opts...)
	if err != nil {
		return nil, err
	}
	objs := make([]core.Object, len(s.Objects))
	for i, obj := range s.Objects {
		objs[i] = core.Object{
			Index:    i,
			Color:    obj.Color,
			Shape:    obj.Shape,
			Material: obj.Material,
			Size:     obj.Size,
		}
	}

	g, err := core.New(objs, rels, s.options(opts).core...)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name(), err)
	}

	return g, nil
}

func (s *Scene) options(opts []Option) graphOptions {
	o := graphOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
