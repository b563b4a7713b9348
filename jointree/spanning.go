// SPDX-License-Identifier: MIT
//
// File: spanning.go
// Role: Join tree from an unordered clique list by maximum-weight spanning
// forest (Kruskal over separator sizes).

package jointree

import (
	"sort"

	"github.com/katalvlaran/lvpgm/core"
)

// candidate is a pair of cliques with a non-empty intersection.
type candidate struct {
	i, j   int
	weight int
}

// FromCliques builds a join tree over cliques. Clique i gets id i. Pairs are
// linked by a maximum-weight spanning forest where the weight of {i,j} is
// |C_i ∩ C_j|; pairs with an empty intersection are never linked, so
// unrelated clique groups stay separate trees.
//
// For the maximal cliques of a chordal graph the result satisfies the running
// intersection property.
//
// Implementation:
//   - Stage 1: Enumerate pairs (i<j) with a non-empty intersection.
//   - Stage 2: Stable-sort by descending weight; ties keep (i,j) ascending.
//   - Stage 3: Union-find with path compression and union by rank; keep an
//     edge whenever its endpoints are in different sets.
//
// Complexity: O(C²·k + C² log C) for C cliques of size k.
func FromCliques(cliques []core.NodeSet) *CliqueGraph {
	cg := NewCliqueGraph()
	for i, c := range cliques {
		_ = cg.AddCliqueWithID(core.NodeID(i), c)
	}

	var cands []candidate
	for i := range cliques {
		for j := i + 1; j < len(cliques); j++ {
			if w := cliques[i].Intersection(cliques[j]).Size(); w > 0 {
				cands = append(cands, candidate{i: i, j: j, weight: w})
			}
		}
	}
	sort.SliceStable(cands, func(a, b int) bool {
		return cands[a].weight > cands[b].weight
	})

	parent := make([]int, len(cliques))
	rank := make([]int, len(cliques))
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		return true
	}

	for _, c := range cands {
		if union(c.i, c.j) {
			_ = cg.AddEdge(core.NodeID(c.i), core.NodeID(c.j))
			if cg.SizeEdges() == len(cliques)-1 {
				break
			}
		}
	}

	return cg
}
