// SPDX-License-Identifier: MIT

package core

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ConnectedComponents partitions the nodes of g into connected components.
// Each component is sorted ascending; components are ordered by their
// smallest node. The work is delegated to gonum's topo package over a
// simple.UndirectedGraph mirror of g whose node ids are the positions of
// g's nodes in ascending order, so the full NodeID range maps onto gonum's
// int64 ids.
//
// Complexity: O(V + E) plus the sort.
func ConnectedComponents(g *UndiGraph) [][]NodeID {
	nodes := g.Nodes()
	index := make(map[NodeID]int64, len(nodes))
	mirror := simple.NewUndirectedGraph()
	for i, n := range nodes {
		index[n] = int64(i)
		mirror.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		mirror.SetEdge(simple.Edge{F: simple.Node(index[e.U]), T: simple.Node(index[e.V])})
	}

	raw := topo.ConnectedComponents(mirror)
	out := make([][]NodeID, 0, len(raw))
	for _, comp := range raw {
		ids := make([]NodeID, len(comp))
		for i, n := range comp {
			ids[i] = nodes[n.ID()]
		}
		slices.Sort(ids)
		out = append(out, ids)
	}
	slices.SortFunc(out, func(a, b []NodeID) int { return cmpNodeID(a[0], b[0]) })

	return out
}
