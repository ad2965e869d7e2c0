package onehop

import (
	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/label"
)

// Analyze counts incoming and outgoing labels per object and flags the ones
// occurring exactly once. An empty graph yields an empty Result.
func Analyze(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.ObjectIDs()
	res := &Result{Objects: make(map[int]Record, len(ids))}
	for _, v := range ids {
		in := make(map[label.Label]int)
		for _, u := range g.Predecessors(v) {
			for _, l := range g.Labels(u, v) {
				in[l]++
			}
		}
		out := make(map[label.Label]int)
		for _, w := range g.Successors(v) {
			for _, l := range g.Labels(v, w) {
				out[l]++
			}
		}
		res.Objects[v] = Record{
			Incoming:  singles(in),
			Outgoing:  singles(out),
			InCounts:  in,
			OutCounts: out,
		}
	}

	return res, nil
}

// singles returns the labels with count exactly 1, in canonical order.
func singles(counts map[label.Label]int) label.Set {
	var out []label.Label
	for l, c := range counts {
		if c == 1 {
			out = append(out, l)
		}
	}

	return label.NewSet(out...)
}
