package core

import (
	"slices"

	"github.com/katalvlaran/relgraph/label"
)

// Objects returns all objects sorted by Index.
func (g *Graph) Objects() []Object {
	out := make([]Object, len(g.ids))
	for i, id := range g.ids {
		out[i] = g.objects[id]
	}

	return out
}

// ObjectIDs returns all object indices in ascending order.
func (g *Graph) ObjectIDs() []int {
	return slices.Clone(g.ids)
}

// Object returns the object with the given index.
func (g *Graph) Object(id int) (Object, bool) {
	obj, ok := g.objects[id]

	return obj, ok
}

// HasObject reports whether id is a registered object.
func (g *Graph) HasObject(id int) bool {
	_, ok := g.objects[id]

	return ok
}

// Predecessors returns the objects u with an edge u→v, ascending.
// Unknown v yields nil.
func (g *Graph) Predecessors(v int) []int {
	return slices.Clone(g.preds[v])
}

// Successors returns the objects v with an edge u→v, ascending.
func (g *Graph) Successors(u int) []int {
	return slices.Clone(g.succs[u])
}

// InDegree is the number of distinct predecessors of v.
func (g *Graph) InDegree(v int) int { return len(g.preds[v]) }

// OutDegree is the number of distinct successors of u.
func (g *Graph) OutDegree(u int) int { return len(g.succs[u]) }

// Labels returns the label set on u→v; nil when there is no edge.
func (g *Graph) Labels(u, v int) label.Set {
	return slices.Clone(g.out[u][v])
}

// HasEdge reports whether at least one label holds on u→v.
func (g *Graph) HasEdge(u, v int) bool {
	return g.out[u][v].Len() > 0
}

// ObjectCount returns |V|.
func (g *Graph) ObjectCount() int { return len(g.ids) }

// EdgeCount returns the number of ordered pairs carrying labels.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// LabelCount returns the total number of (edge, label) incidences.
func (g *Graph) LabelCount() int { return g.labelCount }

// Dropped returns how many invalid entries WithDropInvalid discarded.
func (g *Graph) Dropped() int { return g.dropped }

// Relations returns every edge as a Relation, ordered by (From, To).
// Labels are returned in canonical order.
func (g *Graph) Relations() []Relation {
	out := make([]Relation, 0, g.edgeCount)
	for _, u := range g.ids {
		for _, v := range g.succs[u] {
			out = append(out, Relation{From: u, To: v, Labels: slices.Clone(g.out[u][v])})
		}
	}

	return out
}
