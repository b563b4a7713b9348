// File: properties_test.go
// Randomised structural properties: order validity, chordality, junction
// tree and running intersection, minimality, elimination and MPS trees.
package triangulation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/builder"
	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/elimination"
	"github.com/katalvlaran/lvpgm/triangulation"
)

func TestProperties_RandomGraphs(t *testing.T) {
	heuristics := []elimination.Heuristic{
		elimination.MinWeight, elimination.MinFill, elimination.MinDegree, elimination.WeightedFill,
	}
	for seed := int64(1); seed <= 6; seed++ {
		g, dom := fixture(t, seed, 16, 0.25)
		for _, h := range heuristics {
			for _, minimal := range []bool{false, true} {
				for _, single := range []bool{false, true} {
					name := fmt.Sprintf("seed=%d/%s/minimal=%t/single=%t", seed, h, minimal, single)
					opts := []triangulation.Option{
						triangulation.WithHeuristic(h),
						triangulation.WithMinimality(minimal),
					}
					if single {
						opts = append(opts, triangulation.WithSingleTree())
					}
					tr := triangulation.NewStatic(opts...)
					require.NoError(t, tr.SetGraph(g, dom), name)
					checkProperties(t, name, tr, g)
				}
			}
		}
	}
}

// Classic Markov-network shapes: lattices, hubs, bipartite layers and
// regular random graphs.
func TestProperties_StructuredGraphs(t *testing.T) {
	shapes := map[string]builder.Constructor{
		"grid(4,5)":        builder.Grid(4, 5),
		"wheel(7)":         builder.Wheel(7),
		"bipartite(3,4)":   builder.CompleteBipartite(3, 4),
		"regular(12,3)":    builder.RandomRegular(12, 3),
		"cycle(6)":         builder.Cycle(6),
		"complete(5)":      builder.Complete(5),
		"disjointEdges(3)": builder.DisjointEdges(3),
	}
	for shape, ctor := range shapes {
		g, dom, err := builder.BuildFixture(
			[]builder.BuilderOption{builder.WithSeed(11), builder.WithUniformDomain(2, 3)}, ctor)
		require.NoError(t, err, shape)
		for _, h := range []elimination.Heuristic{elimination.MinFill, elimination.WeightedFill} {
			name := fmt.Sprintf("%s/%s", shape, h)
			tr := triangulation.NewStatic(triangulation.WithHeuristic(h), triangulation.WithMinimality(true))
			require.NoError(t, tr.SetGraph(g, dom), name)
			checkProperties(t, name, tr, g)
		}
	}
}

func checkProperties(t *testing.T, name string, tr *triangulation.Triangulation, g *core.UndiGraph) {
	t.Helper()

	order, err := tr.EliminationOrder()
	require.NoError(t, err, name)
	require.ElementsMatch(t, g.Nodes(), order, name)

	tg, err := tr.TriangulatedGraph()
	require.NoError(t, err, name)
	require.True(t, core.IsPerfectEliminationOrder(tg, order), name)
	for _, e := range g.Edges() {
		require.True(t, tg.ExistsEdge(e.U, e.V), name)
	}
	fills, err := tr.FillIns()
	require.NoError(t, err, name)
	require.Equal(t, g.SizeEdges()+len(fills), tg.SizeEdges(), name)

	jt, err := tr.JunctionTree()
	require.NoError(t, err, name)
	require.NoError(t, jt.VerifyJunctionTree(g), name)
	require.NoError(t, jt.VerifyJunctionTree(tg), name)

	created, err := tr.CreatedJunctionTreeCliques()
	require.NoError(t, err, name)
	for v, id := range created {
		c, err := jt.Clique(id)
		require.NoError(t, err, name)
		require.True(t, c.Contains(v), name)
	}

	// every tree path between two cliques sharing a node carries that node
	ids := jt.Cliques()
	for i, a := range ids {
		ca, _ := jt.Clique(a)
		for _, b := range ids[i+1:] {
			cb, _ := jt.Clique(b)
			shared := ca.Intersection(cb)
			if shared.Size() == 0 {
				continue
			}
			path, err := jt.Path(a, b)
			require.NoError(t, err, name)
			for _, mid := range path {
				cm, _ := jt.Clique(mid)
				require.True(t, shared.IsSubsetOf(cm), "%s: path %v", name, path)
			}
		}
	}

	et, err := tr.EliminationTree()
	require.NoError(t, err, name)
	comps, err := tr.Components()
	require.NoError(t, err, name)
	require.Equal(t, g.Size(), et.Size(), name)
	require.Equal(t, g.Size()-len(comps), et.SizeEdges(), name)
	require.True(t, et.IsJoinTree(), name)
	require.True(t, et.HasRunningIntersection(), name)

	mps, err := tr.MaxPrimeSubgraphTree()
	require.NoError(t, err, name)
	require.True(t, mps.IsJoinTree(), name)
	require.True(t, mps.HasRunningIntersection(), name)
	for _, e := range mps.Edges() {
		sep, _ := mps.Separator(e.U, e.V)
		require.True(t, g.IsComplete(sep), name)
	}
	for _, v := range g.Nodes() {
		id, err := tr.CreatedMaxPrimeSubgraph(v)
		require.NoError(t, err, name)
		c, err := mps.Clique(id)
		require.NoError(t, err, name)
		require.True(t, c.Contains(v), name)
	}
}

func TestMinimality_NoRedundantFillIn(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, dom := fixture(t, seed, 20, 0.2)

		greedy := triangulation.NewStatic(triangulation.WithHeuristic(elimination.MinDegree))
		require.NoError(t, greedy.SetGraph(g, dom))
		greedyFills, err := greedy.FillIns()
		require.NoError(t, err)

		tr := triangulation.NewStatic(
			triangulation.WithHeuristic(elimination.MinDegree),
			triangulation.WithMinimality(true),
		)
		require.NoError(t, tr.SetGraph(g, dom))
		fills, err := tr.FillIns()
		require.NoError(t, err)
		require.Subset(t, greedyFills, fills, "seed %d", seed)

		tg, err := tr.TriangulatedGraph()
		require.NoError(t, err)
		require.True(t, core.IsChordal(tg))
		for _, e := range fills {
			h := tg.Clone()
			require.NoError(t, h.EraseEdge(e.U, e.V))
			require.False(t, core.IsChordal(h), "seed %d: fill-in %s is redundant", seed, e)
		}
	}
}

func TestMinimality_OrderedKeepsCallerOrder(t *testing.T) {
	// square 0-1-2-3 with a tail 3-4-5; eliminating 4 first adds 3--5,
	// which only this order needs.
	g := core.NewUndiGraph()
	dom := core.DomainSizes{}
	for v := core.NodeID(0); v < 6; v++ {
		require.NoError(t, g.AddNodeWithID(v))
		dom[v] = 2
	}
	for _, e := range [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {3, 4}, {4, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	order := []core.NodeID{4, 0, 1, 2, 3, 5}
	wantFills := []core.Edge{core.NewEdge(1, 3), core.NewEdge(3, 5)}

	for _, minimal := range []bool{false, true} {
		tr := triangulation.NewOrdered(order, triangulation.WithMinimality(minimal))
		require.NoError(t, tr.SetGraph(g, dom))
		fills, err := tr.FillIns()
		require.NoError(t, err)
		require.Equal(t, wantFills, fills, "minimal=%t", minimal)
		got, err := tr.EliminationOrder()
		require.NoError(t, err)
		require.Equal(t, order, got, "minimal=%t", minimal)
	}

	// free of the order, only the square needs a chord
	free := triangulation.NewStatic(triangulation.WithMinimality(true))
	require.NoError(t, free.SetGraph(g, dom))
	fills, err := free.FillIns()
	require.NoError(t, err)
	require.Len(t, fills, 1)
}

func TestMinimality_PartialOrderHonoursLevels(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		g, dom := fixture(t, seed, 18, 0.25)
		nodes := g.Nodes()
		// every third node goes to the first level
		levels := [][]core.NodeID{nil, nil}
		for i, v := range nodes {
			levels[min(i%3, 1)] = append(levels[min(i%3, 1)], v)
		}
		name := fmt.Sprintf("seed=%d", seed)

		plain := triangulation.NewPartialOrdered(levels, triangulation.WithHeuristic(elimination.MinDegree))
		require.NoError(t, plain.SetGraph(g, dom))
		plainFills, err := plain.FillIns()
		require.NoError(t, err, name)

		tr := triangulation.NewPartialOrdered(levels,
			triangulation.WithHeuristic(elimination.MinDegree),
			triangulation.WithMinimality(true),
		)
		require.NoError(t, tr.SetGraph(g, dom))
		order, err := tr.EliminationOrder()
		require.NoError(t, err, name)
		first := core.NewNodeSet(levels[0]...)
		for i, v := range order {
			require.Equal(t, i < len(levels[0]), first.Contains(v), "%s: %d at position %d", name, v, i)
		}
		fills, err := tr.FillIns()
		require.NoError(t, err, name)
		require.LessOrEqual(t, len(fills), len(plainFills), name)
		checkProperties(t, name, tr, g)
	}
}

func TestMinimality_SingleLevelIsMinimal(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, dom := fixture(t, seed, 20, 0.2)
		tr := triangulation.NewPartialOrdered([][]core.NodeID{g.Nodes()},
			triangulation.WithHeuristic(elimination.MinDegree),
			triangulation.WithMinimality(true),
		)
		require.NoError(t, tr.SetGraph(g, dom))
		fills, err := tr.FillIns()
		require.NoError(t, err)
		tg, err := tr.TriangulatedGraph()
		require.NoError(t, err)
		for _, e := range fills {
			h := tg.Clone()
			require.NoError(t, h.EraseEdge(e.U, e.V))
			require.False(t, core.IsChordal(h), "seed %d: fill-in %s is redundant", seed, e)
		}
	}
}
