package twohop

import (
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/label"
)

// tally is one row of a terminus' grouping table.
type tally struct {
	count   int
	witness Path
}

// scan is the grouped outcome for one terminus.
type scan struct {
	local  []Unique
	counts map[label.Pair]int
	paths  int
}

// Analyze enumerates two-hop paths per terminus and flags local and global
// unique label pairs. Graphs with fewer than three objects yield empty
// Termini entries.
func Analyze(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	ids := g.ObjectIDs()
	scans := make([]scan, len(ids))

	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, c := range ids {
		i, c := i, c
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// each worker writes only its own slot
			scans[i] = scanTerminus(g, c, o.Invert)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	return merge(ids, scans), nil
}

// scanTerminus groups every labelled path ending at c.
func scanTerminus(g *core.Graph, c int, invert bool) scan {
	table := make(map[label.Pair]*tally)
	paths := 0

	for _, b := range g.Predecessors(c) {
		bc := g.Labels(b, c)
		for _, a := range g.Predecessors(b) {
			if a == c {
				continue
			}
			ab := g.Labels(a, b)
			for _, lbc := range bc {
				for _, lab := range ab {
					p := label.Pair{First: lab, Second: lbc}
					if invert {
						p = p.Inverse()
					}
					t, ok := table[p]
					if !ok {
						t = &tally{witness: Path{A: a, B: b, C: c}}
						table[p] = t
					}
					t.count++
					paths++
				}
			}
		}
	}

	s := scan{counts: make(map[label.Pair]int, len(table)), paths: paths}
	for p, t := range table {
		s.counts[p] = t.count
		if t.count == 1 {
			s.local = append(s.local, Unique{Pair: p, Witness: t.witness})
		}
	}
	slices.SortFunc(s.local, func(x, y Unique) int { return x.Pair.Compare(y.Pair) })

	return s
}

// merge sums the per-terminus tables and derives the global flags.
func merge(ids []int, scans []scan) *Result {
	res := &Result{
		Termini: make(map[int]Terminus, len(ids)),
		Counts:  make(map[label.Pair]int),
	}
	for _, s := range scans {
		for p, n := range s.counts {
			res.Counts[p] += n
		}
		res.TotalPaths += s.paths
	}

	for i, c := range ids {
		s := scans[i]
		t := Terminus{
			Local:        s.local,
			Paths:        s.paths,
			Combinations: len(s.counts),
		}
		for _, u := range s.local {
			if res.Counts[u.Pair] == 1 {
				t.Global = append(t.Global, u)
			}
		}
		res.Termini[c] = t
	}

	return res
}
