// SPDX-License-Identifier: MIT
// Package core_test verifies identity contracts of Edge, NodeSet and the
// UndiGraph node catalog.

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/stretchr/testify/require"
)

func TestEdge_Normalized(t *testing.T) {
	e := core.NewEdge(5, 2)
	require.Equal(t, core.Edge{U: 2, V: 5}, e)
	require.Equal(t, core.NodeID(5), e.Other(2))
	require.Equal(t, core.NodeID(2), e.Other(5))
	require.Equal(t, "2--5", e.String())
	require.Equal(t, "3->1", core.Arc{Tail: 3, Head: 1}.String())
}

func TestOptions_PanicOnNegative(t *testing.T) {
	require.Panics(t, func() { core.WithCapacity(-1) })
	require.Panics(t, func() { core.WithDegreeHint(-1) })
	require.NotPanics(t, func() { core.NewUndiGraph(core.WithCapacity(4), core.WithDegreeHint(2)) })
}

func TestNodeSet_Algebra(t *testing.T) {
	a := core.NewNodeSet(1, 2, 3)
	b := core.NewNodeSet(2, 3, 4)

	require.Equal(t, "{2,3}", a.Intersection(b).String())
	require.Equal(t, "{1,2,3,4}", a.Union(b).String())
	require.Equal(t, "{1}", a.Minus(b).String())
	require.True(t, core.NewNodeSet(2, 3).IsSubsetOf(a))
	require.False(t, b.IsSubsetOf(a))
	require.True(t, a.Equal(core.NewNodeSet(3, 2, 1)))
	require.Equal(t, []core.NodeID{1, 2, 3}, a.Sorted())

	c := a.Clone()
	c.Erase(1)
	require.True(t, a.Contains(1), "Clone must not alias")
	require.Equal(t, 2, c.Size())

	var empty core.NodeSet
	require.False(t, empty.Contains(0))
	require.Equal(t, "{}", empty.String())
}

func TestAddNode_SkipsTakenIDs(t *testing.T) {
	g := core.NewUndiGraph()
	require.NoError(t, g.AddNodeWithID(0))
	require.NoError(t, g.AddNodeWithID(1))

	id := g.AddNode()
	require.Equal(t, core.NodeID(2), id)

	err := g.AddNodeWithID(2)
	require.ErrorIs(t, err, core.ErrDuplicateNode)

	g.EnsureNode(2)
	g.EnsureNode(7)
	require.Equal(t, []core.NodeID{0, 1, 2, 7}, g.Nodes())
}

func TestClone_DeepCopy(t *testing.T) {
	g := mustGraph(t, 3, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2})
	rec := &recorder{}
	g.AddListener(rec.listener())

	c := g.Clone()
	require.NoError(t, c.EraseEdge(0, 1))
	require.True(t, g.ExistsEdge(0, 1), "original must be untouched")
	require.Equal(t, 1, c.SizeEdges())
	require.Empty(t, rec.events, "listeners are not copied")

	next := c.AddNode()
	require.Equal(t, core.NodeID(3), next)
}

func TestInducedSubgraph(t *testing.T) {
	g := cycle(t, 5)
	sub := core.InducedSubgraph(g, core.NewNodeSet(0, 1, 2, 9))

	require.Equal(t, []core.NodeID{0, 1, 2}, sub.Nodes())
	require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, sub.Edges())
	require.Equal(t, 2, sub.SizeEdges())
	require.Equal(t, 5, g.Size())
}

func TestDomainSizes(t *testing.T) {
	g := mustGraph(t, 3)
	d := core.DomainSizes{0: 2, 1: 3}

	err := d.Check(g)
	require.ErrorIs(t, err, core.ErrMissingDomainSize)

	d[2] = 0
	require.ErrorIs(t, d.Check(g), core.ErrBadDomainSize)

	d[2] = 4
	d[9] = 5
	require.NoError(t, d.Check(g))
	require.InDelta(t, math.Log(6), d.LogWeight(core.NewNodeSet(0, 1, 8)), 1e-12)
}
