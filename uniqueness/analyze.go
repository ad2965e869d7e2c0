package uniqueness

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relgraph/classify"
	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/label"
	"github.com/katalvlaran/relgraph/onehop"
	"github.com/katalvlaran/relgraph/twohop"
)

// Analyze runs both analyzers concurrently, classifies the objects and
// returns the assembled Report.
func Analyze(ctx context.Context, g *core.Graph, opts ...Option) (*Report, error) {
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
	start := time.Now()

	twoOpts := []twohop.Option{twohop.WithWorkers(o.Workers)}
	if o.Invert {
		twoOpts = append(twoOpts, twohop.WithInvertedLabels())
	}

	var (
		one *onehop.Result
		two *twohop.Result
	)
	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		r, err := onehop.Analyze(g)
		if err != nil {
			return fmt.Errorf("one-hop: %w", err)
		}
		one = r
		return nil
	})
	eg.Go(func() error {
		r, err := twohop.Analyze(g, append(twoOpts, twohop.WithContext(egctx))...)
		if err != nil {
			return fmt.Errorf("two-hop: %w", err)
		}
		two = r
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("uniqueness: %w", err)
	}

	cls, err := classify.Classify(one, two)
	if err != nil {
		return nil, fmt.Errorf("uniqueness: %w", err)
	}

	rep := Assemble(g, one, two, cls)
	rep.ID = uuid.NewString()
	rep.Scene = o.Scene
	rep.Inverted = o.Invert

	o.Logger.Debug("uniqueness analysis complete",
		"scene", o.Scene,
		"objects", g.ObjectCount(),
		"edges", g.EdgeCount(),
		"two_hop_paths", two.TotalPaths,
		"coverage", cls.Coverage,
		"elapsed", time.Since(start))

	return rep, nil
}

// Assemble builds a Report (without ID/Scene) from analyzer outputs that
// belong to g.
func Assemble(g *core.Graph, one *onehop.Result, two *twohop.Result, cls *classify.Classification) *Report {
	rep := &Report{
		Objects:  make([]ObjectReport, 0, g.ObjectCount()),
		Counts:   cls.Counts,
		Coverage: cls.Coverage,
		Summary:  Summarize(g, one, two, cls),
	}
	for _, obj := range g.Objects() {
		rec, _ := one.Record(obj.Index)
		term, _ := two.Terminus(obj.Index)
		rep.Objects = append(rep.Objects, ObjectReport{
			Index:          obj.Index,
			Color:          obj.Color,
			Shape:          obj.Shape,
			Material:       obj.Material,
			Size:           obj.Size,
			UniqueIncoming: labels(rec.Incoming),
			UniqueOutgoing: labels(rec.Outgoing),
			LocalTwoHop:    combinations(term.Local),
			GlobalTwoHop:   combinations(term.Global),
			Class:          cls.Classes[obj.Index],
		})
	}

	return rep
}

// Summarize computes the per-scene statistics.
func Summarize(g *core.Graph, one *onehop.Result, two *twohop.Result, cls *classify.Classification) Summary {
	s := Summary{
		TotalObjects:  g.ObjectCount(),
		TotalEdges:    g.EdgeCount(),
		TotalLabels:   g.LabelCount(),
		Edge1Incoming: one.IncomingTotal(),
		Edge1Outgoing: one.OutgoingTotal(),
		Edge2Total:    two.LocalTotal(),
		Edge2Objects:  two.ObjectsWithLocal(),
		Edge2Global:   two.GlobalTotal(),
		TwoHopPaths:   two.TotalPaths,
		Both:          cls.Counts[classify.Both],
		Only1Hop:      cls.Counts[classify.Only1Hop],
		Only2Hop:      cls.Counts[classify.Only2Hop],
		Neither:       cls.Counts[classify.Neither],
		Coverage:      cls.Coverage,
	}
	s.Edge1Total = s.Edge1Incoming + s.Edge1Outgoing
	s.TotalUniquePatterns = s.Edge1Total + s.Edge2Total

	return s
}

// labels copies a set into a non-nil slice so JSON renders [] not null.
func labels(s label.Set) []label.Label {
	out := make([]label.Label, 0, s.Len())

	return append(out, s...)
}

func combinations(us []twohop.Unique) []Combination {
	out := make([]Combination, 0, len(us))
	for _, u := range us {
		out = append(out, Combination{
			Pair: u.Pair,
			Path: [3]int{u.Witness.A, u.Witness.B, u.Witness.C},
		})
	}

	return out
}
