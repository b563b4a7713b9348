// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/builder"
	"github.com/katalvlaran/lvpgm/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		chordal     bool
		sampleCheck func(t *testing.T, g *core.UndiGraph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3, chordal: true,
			sampleCheck: func(t *testing.T, g *core.UndiGraph) {
				require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, g.Edges())
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5, chordal: false,
			sampleCheck: func(t *testing.T, g *core.UndiGraph) {
				require.True(t, g.ExistsEdge(4, 0))
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4, chordal: true,
			sampleCheck: func(t *testing.T, g *core.UndiGraph) {
				d, err := g.Degree(0)
				require.NoError(t, err)
				require.Equal(t, 4, d)
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8, chordal: false,
			sampleCheck: func(t *testing.T, g *core.UndiGraph) {
				d, err := g.Degree(4)
				require.NoError(t, err)
				require.Equal(t, 4, d, "hub is the last index")
			},
		},
		{name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6, chordal: true},
		{name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6, chordal: false},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7, chordal: false,
			sampleCheck: func(t *testing.T, g *core.UndiGraph) {
				require.True(t, g.ExistsEdge(1, 4), "(0,1)-(1,1)")
				require.False(t, g.ExistsEdge(2, 3), "no wrap-around")
			},
		},
		{
			name: "DisjointEdges(3)", ctor: builder.DisjointEdges(3), wantV: 6, wantE: 3, chordal: true,
			sampleCheck: func(t *testing.T, g *core.UndiGraph) {
				require.Len(t, core.ConnectedComponents(g), 3)
			},
		},
		{name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15, chordal: true},
		{name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0, chordal: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.Size())
			require.Equal(t, tc.wantE, g.SizeEdges())
			require.Equal(t, tc.chordal, core.IsChordal(g))
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors asserts sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,2)", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"DisjointEdges(0)", builder.DisjointEdges(0), builder.ErrTooFewVertices},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular(odd)", builder.RandomRegular(3, 1), builder.ErrTooFewVertices},
		{"RandomRegular(no rng)", builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, nil, tc.ctor)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

// TestBuilders_Deterministic checks seeded generators reproduce their output.
func TestBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() (*core.UndiGraph, core.DomainSizes) {
		g, d, err := builder.BuildFixture(
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformDomain(2, 5)},
			builder.RandomSparse(20, 0.2),
		)
		require.NoError(t, err)
		return g, d
	}
	g1, d1 := build()
	g2, d2 := build()
	require.Equal(t, g1.Edges(), g2.Edges())
	require.Equal(t, d1, d2)
	require.NoError(t, d1.Check(g1))

	rr, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomRegular(10, 3))
	require.NoError(t, err)
	for _, n := range rr.Nodes() {
		deg, err := rr.Degree(n)
		require.NoError(t, err)
		require.Equal(t, 3, deg)
	}
}

// TestBuilders_Compose glues two constructors through shared ids.
func TestBuilders_Compose(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4), builder.Path(2))
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())
	require.Equal(t, 4, g.SizeEdges(), "Path(2) re-emits edge 0-1 as a no-op")

	off, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDOffset(10)}, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{10, 11, 12}, off.Nodes())

	dom := builder.Domains(off, builder.WithConstantDomain(3))
	require.Equal(t, core.DomainSizes{10: 3, 11: 3, 12: 3}, dom)
}

// TestRandomDAG checks acyclicity by construction and the in-degree cap.
func TestRandomDAG(t *testing.T) {
	t.Parallel()

	dag, err := builder.RandomDAG(8, 1, 2)
	require.NoError(t, err)
	for _, a := range dag.Arcs() {
		require.Less(t, a.Tail, a.Head)
	}
	for _, n := range dag.Nodes() {
		ps, err := dag.Parents(n)
		require.NoError(t, err)
		require.LessOrEqual(t, len(ps), 2)
	}

	_, err = builder.RandomDAG(4, 0.5, 0)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	moral := core.Moralize(dag)
	require.Equal(t, 8, moral.Size())
}
