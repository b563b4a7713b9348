// SPDX-License-Identifier: MIT
// Package core_test shares small fixtures across the core test files.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/stretchr/testify/require"
)

// mustGraph builds an UndiGraph holding nodes 0..n-1 and the given edges.
func mustGraph(t *testing.T, n int, edges ...[2]core.NodeID) *core.UndiGraph {
	t.Helper()
	g := core.NewUndiGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNodeWithID(core.NodeID(i)))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// cycle returns the n-cycle 0-1-...-(n-1)-0.
func cycle(t *testing.T, n int) *core.UndiGraph {
	t.Helper()
	edges := make([][2]core.NodeID, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]core.NodeID{core.NodeID(i), core.NodeID((i + 1) % n)})
	}

	return mustGraph(t, n, edges...)
}

// recorder collects listener events as strings.
type recorder struct {
	events []string
}

func (r *recorder) listener() core.ListenerFuncs {
	return core.ListenerFuncs{
		NodeAdded:   func(id core.NodeID) { r.events = append(r.events, "+n"+core.NewNodeSet(id).String()) },
		NodeDeleted: func(id core.NodeID) { r.events = append(r.events, "-n"+core.NewNodeSet(id).String()) },
		EdgeAdded:   func(u, v core.NodeID) { r.events = append(r.events, "+e"+core.NewEdge(u, v).String()) },
		EdgeDeleted: func(u, v core.NodeID) { r.events = append(r.events, "-e"+core.NewEdge(u, v).String()) },
	}
}
