// File: elimination_test.go
// Package elimination_test covers the Default, Ordered and PartialOrdered
// strategies: selection rules, fill-in and failure semantics.
package elimination_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/builder"
	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/elimination"
)

// graphOf builds a graph over nodes 0..n-1 with the given edges.
func graphOf(t *testing.T, n int, edges ...[2]core.NodeID) *core.UndiGraph {
	t.Helper()
	g := core.NewUndiGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNodeWithID(core.NodeID(i)))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// drain eliminates every node and returns the sequence and all fill-ins.
func drain(t *testing.T, s elimination.Strategy) ([]core.NodeID, []core.Edge) {
	t.Helper()
	var (
		order []core.NodeID
		fills []core.Edge
	)
	for {
		v, err := s.NextNodeToEliminate()
		if err != nil {
			require.ErrorIs(t, err, elimination.ErrEmptyGraph)
			return order, fills
		}
		added, err := s.Eliminate(v)
		require.NoError(t, err)
		order = append(order, v)
		fills = append(fills, added...)
	}
}

func TestDefault_PathEliminatesEnds(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	s := elimination.NewDefault()
	require.NoError(t, s.SetGraph(g, builder.Domains(g)))
	order, fills := drain(t, s)

	require.Equal(t, []core.NodeID{0, 1, 2, 3}, order)
	require.Empty(t, fills)
	require.True(t, g.Empty(), "strategy mutates the bound graph")
}

func TestDefault_CycleNeedsOneChordPerStep(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)

	s := elimination.NewDefault(elimination.WithHeuristic(elimination.MinFill))
	s.AskFillIns(true)
	require.NoError(t, s.SetGraph(g, builder.Domains(g)))
	order, fills := drain(t, s)

	require.Len(t, order, 5)
	// C5 needs exactly n-3 chords.
	require.Len(t, fills, 2)
	require.Equal(t, fills, s.FillIns())
	require.Equal(t, core.NodeID(0), order[0], "all ties, smallest id first")
	require.Equal(t, core.NewEdge(1, 4), fills[0])
}

func TestDefault_WeightPrefersSmallDomains(t *testing.T) {
	// star 0-{1,2}, leaf 2 has a big domain: leaf 1 is lighter.
	g := graphOf(t, 3, [2]core.NodeID{0, 1}, [2]core.NodeID{0, 2})
	dom := core.DomainSizes{0: 2, 1: 2, 2: 10}

	s := elimination.NewDefault()
	require.NoError(t, s.SetGraph(g, dom))
	v, err := s.NextNodeToEliminate()
	require.NoError(t, err)
	require.Equal(t, core.NodeID(1), v)
}

func TestDefault_SimplicialFirst(t *testing.T) {
	// square 0-1-2-3-0 plus pendant 4 on 0 with a huge domain.
	g := graphOf(t, 5,
		[2]core.NodeID{0, 1}, [2]core.NodeID{1, 2}, [2]core.NodeID{2, 3},
		[2]core.NodeID{3, 0}, [2]core.NodeID{0, 4})
	dom := core.DomainSizes{0: 2, 1: 2, 2: 2, 3: 2, 4: 50}

	on := elimination.NewDefault()
	require.NoError(t, on.SetGraph(g.Clone(), dom))
	v, err := on.NextNodeToEliminate()
	require.NoError(t, err)
	require.Equal(t, core.NodeID(4), v, "only simplicial node wins despite its weight")

	off := elimination.NewDefault(elimination.WithSimplicialFirst(false))
	require.NoError(t, off.SetGraph(g.Clone(), dom))
	v, err = off.NextNodeToEliminate()
	require.NoError(t, err)
	require.Equal(t, core.NodeID(1), v)
}

func TestDefault_CacheRefreshMatchesFreshScoring(t *testing.T) {
	g, dom, err := builder.BuildFixture(
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithUniformDomain(2, 4)},
		builder.RandomSparse(25, 0.2),
	)
	require.NoError(t, err)

	for _, h := range []elimination.Heuristic{
		elimination.MinWeight, elimination.MinFill, elimination.MinDegree, elimination.WeightedFill,
	} {
		cached := elimination.NewDefault(elimination.WithHeuristic(h))
		work := g.Clone()
		require.NoError(t, cached.SetGraph(work, dom))

		for !work.Empty() {
			// a fresh strategy bound to a copy scores everything from scratch
			fresh := elimination.NewDefault(elimination.WithHeuristic(h))
			require.NoError(t, fresh.SetGraph(work.Clone(), dom))
			want, err := fresh.NextNodeToEliminate()
			require.NoError(t, err)

			got, err := cached.NextNodeToEliminate()
			require.NoError(t, err)
			require.Equal(t, want, got, h.String())
			_, err = cached.Eliminate(got)
			require.NoError(t, err)
		}
	}
}

func TestDefault_Errors(t *testing.T) {
	s := elimination.NewDefault()
	_, err := s.NextNodeToEliminate()
	require.ErrorIs(t, err, elimination.ErrGraphNotSet)

	require.ErrorIs(t, s.SetGraph(nil, nil), core.ErrGraphNil)

	g := graphOf(t, 2, [2]core.NodeID{0, 1})
	require.ErrorIs(t, s.SetGraph(g, core.DomainSizes{0: 2}), core.ErrMissingDomainSize)

	require.NoError(t, s.SetGraph(g, nil))
	_, err = s.Eliminate(7)
	require.ErrorIs(t, err, elimination.ErrUnknownNode)

	empty := core.NewUndiGraph()
	require.NoError(t, s.SetGraph(empty, nil))
	_, err = s.NextNodeToEliminate()
	require.ErrorIs(t, err, elimination.ErrEmptyGraph)

	s.Clear()
	_, err = s.NextNodeToEliminate()
	require.ErrorIs(t, err, elimination.ErrGraphNotSet)
}

func TestOrdered(t *testing.T) {
	// path 1-2-3-4, eliminating 2 first forces fill-in 1--3.
	g := core.NewUndiGraph()
	for _, v := range []core.NodeID{1, 2, 3, 4} {
		require.NoError(t, g.AddNodeWithID(v))
	}
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))

	s := elimination.NewOrdered([]core.NodeID{2, 1, 3, 4})
	require.NoError(t, s.SetGraph(g, nil))
	order, fills := drain(t, s)
	require.Equal(t, []core.NodeID{2, 1, 3, 4}, order)
	require.Equal(t, []core.Edge{core.NewEdge(1, 3)}, fills)
}

func TestOrdered_Validation(t *testing.T) {
	g := graphOf(t, 3, [2]core.NodeID{0, 1})

	require.ErrorIs(t, elimination.NewOrdered([]core.NodeID{0, 1}).SetGraph(g, nil), elimination.ErrIncompleteOrder)
	require.ErrorIs(t, elimination.NewOrdered([]core.NodeID{0, 1, 1}).SetGraph(g, nil), elimination.ErrIncompleteOrder)
	require.ErrorIs(t, elimination.NewOrdered([]core.NodeID{0, 1, 9}).SetGraph(g, nil), elimination.ErrUnknownNode)

	s := elimination.NewOrdered(nil)
	require.NoError(t, s.SetGraph(g, nil))
	_, err := s.NextNodeToEliminate()
	require.ErrorIs(t, err, elimination.ErrIncompleteOrder)
	require.ErrorIs(t, s.SetOrder([]core.NodeID{2}), elimination.ErrIncompleteOrder)
	require.NoError(t, s.SetOrder([]core.NodeID{2, 0, 1}))
	v, err := s.NextNodeToEliminate()
	require.NoError(t, err)
	require.Equal(t, core.NodeID(2), v)

	// an out-of-order elimination is skipped over
	_, err = s.Eliminate(0)
	require.NoError(t, err)
	_, err = s.Eliminate(2)
	require.NoError(t, err)
	v, err = s.NextNodeToEliminate()
	require.NoError(t, err)
	require.Equal(t, core.NodeID(1), v)
}

func TestPartialOrdered(t *testing.T) {
	// 0-1-2-3-4 path; level {2,3,4} must go before {0,1}.
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	s := elimination.NewPartialOrdered([][]core.NodeID{{4, 2, 3}, {}, {1, 0}})
	s.AskFillIns(true)
	require.NoError(t, s.SetGraph(g, builder.Domains(g)))
	order, fills := drain(t, s)

	require.ElementsMatch(t, []core.NodeID{2, 3, 4}, order[:3])
	require.ElementsMatch(t, []core.NodeID{0, 1}, order[3:])
	require.Equal(t, core.NodeID(4), order[0], "simplicial end of the level first")
	require.Equal(t, fills, s.FillIns())
}

func TestPartialOrdered_Validation(t *testing.T) {
	g := graphOf(t, 3)

	require.ErrorIs(t,
		elimination.NewPartialOrdered([][]core.NodeID{{0}, {1}}).SetGraph(g, nil),
		elimination.ErrIncompleteOrder)
	require.ErrorIs(t,
		elimination.NewPartialOrdered([][]core.NodeID{{0, 1}, {1, 2}}).SetGraph(g, nil),
		elimination.ErrIncompleteOrder)
	require.ErrorIs(t,
		elimination.NewPartialOrdered([][]core.NodeID{{0, 1, 2}, {5}}).SetGraph(g, nil),
		elimination.ErrUnknownNode)

	s := elimination.NewPartialOrdered(nil)
	require.NoError(t, s.SetGraph(g, nil))
	_, err := s.NextNodeToEliminate()
	require.ErrorIs(t, err, elimination.ErrIncompleteOrder)
	require.NoError(t, s.SetPartialOrder([][]core.NodeID{{2}, {0, 1}}))
	v, err := s.NextNodeToEliminate()
	require.NoError(t, err)
	require.Equal(t, core.NodeID(2), v)
}

func TestNewStrategy_KeepsConfiguration(t *testing.T) {
	strategies := []elimination.Strategy{
		elimination.NewDefault(elimination.WithHeuristic(elimination.MinDegree)),
		elimination.NewOrdered([]core.NodeID{2, 1, 0}),
		elimination.NewPartialOrdered([][]core.NodeID{{2, 1, 0}}),
	}
	for _, s := range strategies {
		g := graphOf(t, 3, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2})
		require.NoError(t, s.SetGraph(g, nil))

		c := s.NewStrategy()
		_, err := c.NextNodeToEliminate()
		require.ErrorIs(t, err, elimination.ErrGraphNotSet, "copy is unbound")

		g2 := graphOf(t, 3, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2})
		require.NoError(t, c.SetGraph(g2, nil))
		got, _ := drain(t, c)
		want, _ := drain(t, s)
		require.Equal(t, want, got)
	}
}

func TestParseHeuristic(t *testing.T) {
	for _, h := range []elimination.Heuristic{
		elimination.MinWeight, elimination.MinFill, elimination.MinDegree, elimination.WeightedFill,
	} {
		got, err := elimination.ParseHeuristic(" " + h.String() + " ")
		require.NoError(t, err)
		require.Equal(t, h, got)
	}
	_, err := elimination.ParseHeuristic("min-regret")
	require.ErrorIs(t, err, elimination.ErrUnknownHeuristic)
	require.Panics(t, func() { elimination.WithHeuristic(elimination.Heuristic(42)) })
}
