// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters of UndiGraph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every enumeration is sorted ascending so callers get reproducible output.

package core

import "slices"

// Size returns the number of nodes.
// Complexity: O(1).
func (g *UndiGraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// SizeEdges returns the number of undirected edges.
// Complexity: O(1).
func (g *UndiGraph) SizeEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nEdges
}

// Empty reports whether the graph has no node.
func (g *UndiGraph) Empty() bool { return g.Size() == 0 }

// Nodes returns every node id in ascending order.
// Complexity: O(V log V).
func (g *UndiGraph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// NodeSet returns the nodes as a set (fresh copy).
// Complexity: O(V).
func (g *UndiGraph) NodeSet() NodeSet {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(NodeSet, len(g.adj))
	for id := range g.adj {
		out[id] = struct{}{}
	}

	return out
}

// Edges returns every edge, normalized (U<V), sorted by (U,V).
// Complexity: O(E log E).
func (g *UndiGraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.nEdges)
	for u, nbrs := range g.adj {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sortEdges(out)

	return out
}

// sortEdges orders edges lexicographically by (U,V).
func sortEdges(es []Edge) {
	slices.SortFunc(es, func(a, b Edge) int {
		if a.U != b.U {
			if a.U < b.U {
				return -1
			}
			return 1
		}
		if a.V < b.V {
			return -1
		}
		if a.V > b.V {
			return 1
		}
		return 0
	})
}

// SortEdges sorts es in place by (U,V). Exposed so that packages building
// edge lists (fill-ins, separators) share the same canonical order.
func SortEdges(es []Edge) { sortEdges(es) }
