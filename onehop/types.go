package onehop

import (
	"errors"
	"slices"

	"github.com/katalvlaran/relgraph/label"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Analyze.
var ErrGraphNil = errors.New("onehop: graph is nil")

// Record holds one object's label multisets and their unique members.
type Record struct {
	// Incoming lists labels received exactly once.
	Incoming label.Set `json:"unique_incoming"`
	// Outgoing lists labels sent exactly once.
	Outgoing label.Set `json:"unique_outgoing"`

	// InCounts and OutCounts are the full multisets.
	InCounts  map[label.Label]int `json:"in_counts"`
	OutCounts map[label.Label]int `json:"out_counts"`
}

// HasUnique reports whether either direction has a unique label.
func (r Record) HasUnique() bool {
	return r.Incoming.Len() > 0 || r.Outgoing.Len() > 0
}

// Result maps every object index of the analysed graph to its Record.
type Result struct {
	Objects map[int]Record `json:"objects"`
}

// Record returns the record for id.
func (r *Result) Record(id int) (Record, bool) {
	rec, ok := r.Objects[id]

	return rec, ok
}

// IDs returns the analysed object indices, ascending.
func (r *Result) IDs() []int {
	ids := make([]int, 0, len(r.Objects))
	for id := range r.Objects {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// IncomingTotal counts objects with at least one unique incoming label.
func (r *Result) IncomingTotal() int {
	n := 0
	for _, rec := range r.Objects {
		if rec.Incoming.Len() > 0 {
			n++
		}
	}

	return n
}

// OutgoingTotal counts objects with at least one unique outgoing label.
func (r *Result) OutgoingTotal() int {
	n := 0
	for _, rec := range r.Objects {
		if rec.Outgoing.Len() > 0 {
			n++
		}
	}

	return n
}
