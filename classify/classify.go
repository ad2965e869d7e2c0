package classify

import (
	"fmt"

	"github.com/katalvlaran/relgraph/onehop"
	"github.com/katalvlaran/relgraph/twohop"
)

// Classify assigns every object a Class and computes the coverage ratio.
// Both results must come from the same graph.
func Classify(one *onehop.Result, two *twohop.Result) (*Classification, error) {
	if one == nil || two == nil {
		return nil, ErrNilResult
	}
	if len(one.Objects) != len(two.Termini) {
		return nil, fmt.Errorf("%w: %d one-hop vs %d two-hop objects", ErrObjectMismatch, len(one.Objects), len(two.Termini))
	}

	out := &Classification{
		Classes: make(map[int]Class, len(one.Objects)),
		Counts:  make(map[Class]int, len(classNames)),
		Total:   len(one.Objects),
	}
	for _, c := range Classes() {
		out.Counts[c] = 0
	}
	for id, rec := range one.Objects {
		term, ok := two.Termini[id]
		if !ok {
			return nil, fmt.Errorf("%w: object %d missing from two-hop result", ErrObjectMismatch, id)
		}
		c := Of(rec.HasUnique(), len(term.Local) > 0)
		out.Classes[id] = c
		out.Counts[c]++
	}
	if out.Total > 0 {
		out.Coverage = float64(out.Covered()) / float64(out.Total)
	}

	return out, nil
}
