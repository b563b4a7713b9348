// SPDX-License-Identifier: MIT
// Package core_test verifies node/edge lifecycle and listener delivery.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_Errors(t *testing.T) {
	g := mustGraph(t, 2)

	require.ErrorIs(t, g.AddEdge(0, 0), core.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge(0, 5), core.ErrNodeNotFound)
	require.ErrorIs(t, g.AddEdge(5, 0), core.ErrNodeNotFound)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0), "duplicate is a no-op")
	require.Equal(t, 1, g.SizeEdges())
	require.True(t, g.ExistsEdge(1, 0))
	require.False(t, g.ExistsEdge(0, 9))
}

func TestEraseEdge(t *testing.T) {
	g := mustGraph(t, 3, [2]core.NodeID{0, 1})

	require.ErrorIs(t, g.EraseEdge(1, 2), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.EraseEdge(7, 2), core.ErrEdgeNotFound)
	require.NoError(t, g.EraseEdge(1, 0))
	require.Zero(t, g.SizeEdges())
	require.False(t, g.ExistsEdge(0, 1))
}

func TestEraseNode_DropsIncidentEdges(t *testing.T) {
	g := mustGraph(t, 4,
		[2]core.NodeID{0, 1}, [2]core.NodeID{0, 2}, [2]core.NodeID{0, 3}, [2]core.NodeID{2, 3})

	require.NoError(t, g.EraseNode(0))
	require.ErrorIs(t, g.EraseNode(0), core.ErrNodeNotFound)
	require.Equal(t, []core.NodeID{1, 2, 3}, g.Nodes())
	require.Equal(t, []core.Edge{{U: 2, V: 3}}, g.Edges())

	nbrs, err := g.Neighbours(1)
	require.NoError(t, err)
	require.Empty(t, nbrs)
}

func TestNeighbours_SortedAndDegree(t *testing.T) {
	g := mustGraph(t, 5, [2]core.NodeID{2, 4}, [2]core.NodeID{2, 0}, [2]core.NodeID{2, 3})

	nbrs, err := g.Neighbours(2)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 3, 4}, nbrs)

	set, err := g.NeighbourSet(2)
	require.NoError(t, err)
	require.True(t, set.Equal(core.NewNodeSet(0, 3, 4)))

	d, err := g.Degree(2)
	require.NoError(t, err)
	require.Equal(t, 3, d)

	_, err = g.Neighbours(9)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Degree(9)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestIsComplete(t *testing.T) {
	g := mustGraph(t, 4, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2}, [2]core.NodeID{0, 2})

	require.True(t, g.IsComplete(core.NewNodeSet(0, 1, 2)))
	require.False(t, g.IsComplete(core.NewNodeSet(0, 1, 3)))
	require.True(t, g.IsComplete(core.NewNodeSet(3)))
	require.True(t, g.IsComplete(nil))
}

func TestListeners_EventOrder(t *testing.T) {
	g := core.NewUndiGraph()
	rec := &recorder{}
	id := g.AddListener(rec.listener())

	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(c, a))
	require.NoError(t, g.AddEdge(a, b)) // duplicate: silent
	require.NoError(t, g.EraseNode(a))

	require.Equal(t, []string{
		"+n{0}", "+n{1}", "+n{2}",
		"+e0--1", "+e0--2",
		"-e0--1", "-e0--2", "-n{0}",
	}, rec.events)

	require.True(t, g.RemoveListener(id))
	require.False(t, g.RemoveListener(id))
	g.AddNode()
	require.Len(t, rec.events, 8)
}

func TestListeners_ClearEmitsDeletions(t *testing.T) {
	g := mustGraph(t, 3, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2})
	rec := &recorder{}
	g.AddListener(rec.listener())

	g.Clear()
	require.True(t, g.Empty())
	require.Equal(t, []string{"-e0--1", "-e1--2", "-n{0}", "-n{1}", "-n{2}"}, rec.events)
}

func TestListeners_CallbackMayReadGraph(t *testing.T) {
	g := core.NewUndiGraph()
	var seen []int
	g.AddListener(core.ListenerFuncs{
		EdgeAdded: func(u, v core.NodeID) { seen = append(seen, g.SizeEdges()) },
	})
	g.EnsureNode(0)
	g.EnsureNode(1)
	g.EnsureNode(2)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	require.Equal(t, []int{1, 2}, seen)
}
