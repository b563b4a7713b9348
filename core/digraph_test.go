// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/stretchr/testify/require"
)

func newDAG(t *testing.T, n int, arcs ...[2]core.NodeID) *core.DiGraph {
	t.Helper()
	g := core.NewDiGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNodeWithID(core.NodeID(i)))
	}
	for _, a := range arcs {
		require.NoError(t, g.AddArc(a[0], a[1]))
	}

	return g
}

func TestDiGraph_Lifecycle(t *testing.T) {
	g := newDAG(t, 3, [2]core.NodeID{0, 2}, [2]core.NodeID{1, 2})

	require.ErrorIs(t, g.AddNodeWithID(1), core.ErrDuplicateNode)
	require.ErrorIs(t, g.AddArc(1, 1), core.ErrSelfLoop)
	require.ErrorIs(t, g.AddArc(1, 9), core.ErrNodeNotFound)
	require.NoError(t, g.AddArc(0, 2))
	require.Equal(t, 2, g.SizeArcs())

	ps, err := g.Parents(2)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1}, ps)

	cs, err := g.Children(0)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{2}, cs)

	require.True(t, g.ExistsArc(0, 2))
	require.False(t, g.ExistsArc(2, 0))

	require.ErrorIs(t, g.EraseArc(2, 0), core.ErrEdgeNotFound)
	require.NoError(t, g.EraseArc(0, 2))
	require.Equal(t, []core.Arc{{Tail: 1, Head: 2}}, g.Arcs())

	c := g.Clone()
	require.NoError(t, g.EraseNode(2))
	require.Zero(t, g.SizeArcs())
	require.Equal(t, 1, c.SizeArcs())
	require.Equal(t, 3, c.Size())
}

// Classic v-structure plus chain: 0→2←1, 2→3. Moralization marries 0 and 1.
func TestMoralize(t *testing.T) {
	dag := newDAG(t, 4, [2]core.NodeID{0, 2}, [2]core.NodeID{1, 2}, [2]core.NodeID{2, 3})

	m := core.Moralize(dag)
	require.Equal(t, []core.NodeID{0, 1, 2, 3}, m.Nodes())
	require.Equal(t, []core.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 2, V: 3},
	}, m.Edges())
}
