package twohop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/relgraph/builder"
	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/label"
	"github.com/katalvlaran/relgraph/twohop"
)

// TwoHopSuite exercises Analyze on fixed and random scenes.
type TwoHopSuite struct {
	suite.Suite
	triangle *core.Graph
}

func (s *TwoHopSuite) SetupSuite() {
	g, err := builder.BuildGraph(nil, nil, builder.Triangle())
	require.NoError(s.T(), err)
	s.triangle = g
}

func pair(a, b label.Label) label.Pair { return label.Pair{First: a, Second: b} }

// TestTriangleTerminus2 checks that 0→1→2 yields a unique left/front at 2.
func (s *TwoHopSuite) TestTriangleTerminus2() {
	res, err := twohop.Analyze(s.triangle)
	require.NoError(s.T(), err)

	t2, ok := res.Terminus(2)
	require.True(s.T(), ok)
	require.Equal(s.T(), 3, t2.Paths)
	require.Equal(s.T(), []twohop.Unique{
		{Pair: pair(label.Left, label.Front), Witness: twohop.Path{A: 0, B: 1, C: 2}},
		{Pair: pair(label.Right, label.Left), Witness: twohop.Path{A: 1, B: 0, C: 2}},
		{Pair: pair(label.Right, label.Front), Witness: twohop.Path{A: 1, B: 0, C: 2}},
	}, t2.Local)
	require.Equal(s.T(), []twohop.Unique{
		{Pair: pair(label.Left, label.Front), Witness: twohop.Path{A: 0, B: 1, C: 2}},
		{Pair: pair(label.Right, label.Front), Witness: twohop.Path{A: 1, B: 0, C: 2}},
	}, t2.Global)
}

// TestTriangleGlobalCounts checks the merged frequency table.
func (s *TwoHopSuite) TestTriangleGlobalCounts() {
	res, err := twohop.Analyze(s.triangle)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 10, res.TotalPaths)
	require.Equal(s.T(), 2, res.Counts[pair(label.Right, label.Left)])
	require.Equal(s.T(), 2, res.Counts[pair(label.Front, label.Behind)])
	require.Equal(s.T(), 1, res.Counts[pair(label.Left, label.Front)])
	require.Equal(s.T(), 10, res.LocalTotal())
	require.Equal(s.T(), 6, res.GlobalTotal())
	require.Equal(s.T(), 3, res.ObjectsWithLocal())

	t1, _ := res.Terminus(1)
	require.Equal(s.T(), []twohop.Unique{
		{Pair: pair(label.Left, label.Behind), Witness: twohop.Path{A: 0, B: 2, C: 1}},
		{Pair: pair(label.Behind, label.Left), Witness: twohop.Path{A: 2, B: 0, C: 1}},
	}, t1.Global)
}

// TestInvertedLabels verifies inversion renames pairs without changing counts.
func (s *TwoHopSuite) TestInvertedLabels() {
	plain, err := twohop.Analyze(s.triangle)
	require.NoError(s.T(), err)
	inv, err := twohop.Analyze(s.triangle, twohop.WithInvertedLabels())
	require.NoError(s.T(), err)

	require.Equal(s.T(), plain.TotalPaths, inv.TotalPaths)
	require.Equal(s.T(), plain.GlobalTotal(), inv.GlobalTotal())
	for p, n := range plain.Counts {
		require.Equal(s.T(), n, inv.Counts[p.Inverse()], p.String())
	}
	t2, _ := inv.Terminus(2)
	require.Contains(s.T(), t2.Global, twohop.Unique{
		Pair:    pair(label.Right, label.Behind),
		Witness: twohop.Path{A: 0, B: 1, C: 2},
	})
}

// TestSmallGraphs covers the empty graph and the disconnected pair.
func (s *TwoHopSuite) TestSmallGraphs() {
	empty, err := core.New(nil, nil)
	require.NoError(s.T(), err)
	res, err := twohop.Analyze(empty)
	require.NoError(s.T(), err)
	require.Empty(s.T(), res.Termini)
	require.Zero(s.T(), res.TotalPaths)

	pairG, err := core.New([]core.Object{{Index: 0}, {Index: 1}}, []core.Relation{
		{From: 0, To: 1, Labels: []label.Label{label.Left}},
		{From: 1, To: 0, Labels: []label.Label{label.Right}},
	})
	require.NoError(s.T(), err)
	res, err = twohop.Analyze(pairG)
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Termini, 2)
	require.Zero(s.T(), res.TotalPaths, "2-cycles back to the terminus are not paths")
	for _, t := range res.Termini {
		require.Empty(s.T(), t.Local)
	}
}

// TestErrors covers nil graph, bad options and cancellation.
func (s *TwoHopSuite) TestErrors() {
	_, err := twohop.Analyze(nil)
	require.ErrorIs(s.T(), err, twohop.ErrGraphNil)

	_, err = twohop.Analyze(s.triangle, twohop.WithWorkers(-1))
	require.ErrorIs(s.T(), err, twohop.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = twohop.Analyze(s.triangle, twohop.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestInvariantsRandom cross-checks Analyze against brute-force enumeration
// for several seeds and worker counts.
func (s *TwoHopSuite) TestInvariantsRandom() {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomScene(9, 0.5))
		require.NoError(s.T(), err)

		seq, err := twohop.Analyze(g, twohop.WithWorkers(1))
		require.NoError(s.T(), err)
		par, err := twohop.Analyze(g, twohop.WithWorkers(4))
		require.NoError(s.T(), err)
		require.Equal(s.T(), seq, par, "seed %d: worker count must not change results", seed)

		local, global := bruteForce(g)
		for c, t := range seq.Termini {
			for _, u := range t.Local {
				require.Equal(s.T(), 1, local[c][u.Pair], "seed %d terminus %d pair %s", seed, c, u.Pair)
				require.Equal(s.T(), c, u.Witness.C)
				require.True(s.T(), g.Labels(u.Witness.A, u.Witness.B).Contains(u.Pair.First))
				require.True(s.T(), g.Labels(u.Witness.B, u.Witness.C).Contains(u.Pair.Second))
			}
			for _, u := range t.Global {
				require.Equal(s.T(), 1, global[u.Pair])
				require.Contains(s.T(), t.Local, u, "global must imply local")
			}
			flagged := 0
			for _, n := range local[c] {
				if n == 1 {
					flagged++
				}
			}
			require.Equal(s.T(), flagged, len(t.Local))
		}
		for p, n := range global {
			require.Equal(s.T(), n, seq.Counts[p])
		}
	}
}

// bruteForce counts pairs per terminus and globally by triple loops.
func bruteForce(g *core.Graph) (map[int]map[label.Pair]int, map[label.Pair]int) {
	local := make(map[int]map[label.Pair]int)
	global := make(map[label.Pair]int)
	ids := g.ObjectIDs()
	for _, a := range ids {
		for _, b := range ids {
			for _, c := range ids {
				if a == b || b == c || a == c || !g.HasEdge(a, b) || !g.HasEdge(b, c) {
					continue
				}
				if local[c] == nil {
					local[c] = make(map[label.Pair]int)
				}
				for _, l1 := range g.Labels(a, b) {
					for _, l2 := range g.Labels(b, c) {
						p := label.Pair{First: l1, Second: l2}
						local[c][p]++
						global[p]++
					}
				}
			}
		}
	}
	return local, global
}

func TestTwoHopSuite(t *testing.T) {
	suite.Run(t, new(TwoHopSuite))
}
