package core

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/relgraph/label"
)

// New builds an immutable Graph from a list of objects and relation entries.
//
// Steps:
//  1. Register objects; negative or duplicate indices are always fatal.
//  2. Normalise each relation's labels into a label.Set; empty sets are skipped.
//  3. Validate endpoints, loops and labels (reject or drop per options).
//  4. Merge entries for the same ordered pair.
//  5. Derive the reverse index and the sorted neighbour lists.
//
// Complexity: O(V log V + R·L log L), R = len(relations), L = labels per entry.
func New(objects []Object, relations []Relation, opts ...Option) (*Graph, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph{
		objects: make(map[int]Object, len(objects)),
		ids:     make([]int, 0, len(objects)),
		out:     make(map[int]map[int]label.Set),
		in:      make(map[int]map[int]label.Set),
		preds:   make(map[int][]int, len(objects)),
		succs:   make(map[int][]int, len(objects)),
	}
	for _, obj := range objects {
		if obj.Index < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeIndex, obj.Index)
		}
		if _, dup := g.objects[obj.Index]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateObject, obj.Index)
		}
		g.objects[obj.Index] = obj
		g.ids = append(g.ids, obj.Index)
	}
	slices.Sort(g.ids)

	for _, r := range relations {
		if err := g.addRelation(r, &o); err != nil {
			return nil, err
		}
	}
	g.index()

	return g, nil
}

// NewFromMap builds a Graph from the pair → labels mapping emitted by the
// geometry stage. Keys are visited in ascending (from, to) order so that
// drop warnings are logged deterministically.
func NewFromMap(objects []Object, relations map[[2]int][]label.Label, opts ...Option) (*Graph, error) {
	keys := make([][2]int, 0, len(relations))
	for k := range relations {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})

	list := make([]Relation, 0, len(keys))
	for _, k := range keys {
		list = append(list, Relation{From: k[0], To: k[1], Labels: relations[k]})
	}

	return New(objects, list, opts...)
}

// addRelation validates one entry and merges it into g.out.
func (g *Graph) addRelation(r Relation, o *buildOptions) error {
	set := label.NewSet(r.Labels...)
	if set.Len() == 0 {
		// absent relation, not a zero-label edge
		return nil
	}
	if r.From == r.To {
		return g.reject(o, fmt.Errorf("%w: %d", ErrLoopNotAllowed, r.From))
	}
	for _, end := range [2]int{r.From, r.To} {
		if _, ok := g.objects[end]; !ok {
			return g.reject(o, fmt.Errorf("%w: %d in relation %d→%d", ErrObjectNotFound, end, r.From, r.To))
		}
	}
	if !set.Valid() {
		err := fmt.Errorf("%w: %s on %d→%d", ErrInvalidLabel, set, r.From, r.To)
		if rerr := g.reject(o, err); rerr != nil {
			return rerr
		}
		set = keepValid(set)
		if set.Len() == 0 {
			return nil
		}
	}

	row, ok := g.out[r.From]
	if !ok {
		row = make(map[int]label.Set)
		g.out[r.From] = row
	}
	row[r.To] = row[r.To].Union(set)

	return nil
}

// reject returns err under the strict policy; otherwise it logs, counts the
// drop and returns nil.
func (g *Graph) reject(o *buildOptions, err error) error {
	if !o.dropInvalid {
		return err
	}
	g.dropped++
	o.logger.Warn("dropping invalid relation", "error", err)

	return nil
}

// index derives in, preds, succs and the edge/label totals from out.
func (g *Graph) index() {
	for u, row := range g.out {
		for v, set := range row {
			col, ok := g.in[v]
			if !ok {
				col = make(map[int]label.Set)
				g.in[v] = col
			}
			col[u] = set
			g.succs[u] = append(g.succs[u], v)
			g.preds[v] = append(g.preds[v], u)
			g.edgeCount++
			g.labelCount += set.Len()
		}
	}
	for _, list := range g.succs {
		slices.Sort(list)
	}
	for _, list := range g.preds {
		slices.Sort(list)
	}
}

func keepValid(s label.Set) label.Set {
	out := make(label.Set, 0, len(s))
	for _, l := range s {
		if l.Valid() {
			out = append(out, l)
		}
	}

	return out
}
