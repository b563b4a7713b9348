// SPDX-License-Identifier: MIT
//
// File: chordal.go
// Role: Chordality toolkit: maximum cardinality search (MCS), perfect
// elimination order (PEO) check, and IsChordal.
//
// Determinism:
//   - MCS breaks ties by the smallest NodeID, so the returned order depends
//     only on the graph topology.

package core

// MaximumCardinalitySearch returns an elimination order of g computed by
// MCS: nodes are numbered from n down to 1, always picking an unnumbered
// node with the most numbered neighbours. The returned slice lists nodes in
// elimination order (the reverse of the visiting order). For a chordal
// graph the result is a perfect elimination order.
//
// Implementation:
//   - Stage 1: weight[v]=0 for all v.
//   - Stage 2: repeatedly select the unvisited node of maximal weight
//     (smallest id on ties), prepend it, bump unvisited neighbours.
//
// Complexity: O(V² + E) (linear scan for the max; graphs here are small).
func MaximumCardinalitySearch(g *UndiGraph) []NodeID {
	nodes := g.Nodes()
	n := len(nodes)
	weight := make(map[NodeID]int, n)
	visited := make(NodeSet, n)
	order := make([]NodeID, n)

	for i := n - 1; i >= 0; i-- {
		best, bestW, found := NodeID(0), -1, false
		for _, v := range nodes {
			if visited.Contains(v) {
				continue
			}
			if w := weight[v]; w > bestW {
				best, bestW, found = v, w, true
			}
		}
		if !found {
			break
		}
		visited.Insert(best)
		order[i] = best
		nbrs, _ := g.Neighbours(best)
		for _, u := range nbrs {
			if !visited.Contains(u) {
				weight[u]++
			}
		}
	}

	return order
}

// IsPerfectEliminationOrder reports whether order is a PEO of g: a
// permutation of the nodes such that, for each node, its neighbours that
// come later in the order form a clique.
//
// Implementation (Rose–Tarjan–Lueker check):
//   - For each v, let f be its earliest later neighbour; the other later
//     neighbours of v must all be adjacent to f.
//
// Complexity: O(V + E·α) with map lookups.
func IsPerfectEliminationOrder(g *UndiGraph, order []NodeID) bool {
	if len(order) != g.Size() {
		return false
	}
	pos := make(map[NodeID]int, len(order))
	for i, v := range order {
		if !g.ExistsNode(v) {
			return false
		}
		if _, dup := pos[v]; dup {
			return false
		}
		pos[v] = i
	}

	for i, v := range order {
		nbrs, _ := g.Neighbours(v)
		var (
			later  []NodeID
			parent NodeID
			pPos   = len(order)
		)
		for _, u := range nbrs {
			if p := pos[u]; p > i {
				later = append(later, u)
				if p < pPos {
					pPos, parent = p, u
				}
			}
		}
		for _, u := range later {
			if u != parent && !g.ExistsEdge(parent, u) {
				return false
			}
		}
	}

	return true
}

// IsChordal reports whether every cycle of length >= 4 in g has a chord.
// Complexity: O(V² + E).
func IsChordal(g *UndiGraph) bool {
	return IsPerfectEliminationOrder(g, MaximumCardinalitySearch(g))
}
