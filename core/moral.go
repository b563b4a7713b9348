// SPDX-License-Identifier: MIT

package core

// Moralize returns the moral graph of dag: same nodes, every arc turned into
// an undirected edge, and every pair of parents of a common child married.
// This is the graph Bayesian-network consumers hand to a triangulation.
//
// Complexity: O(V + Σ|pa(v)|²).
func Moralize(dag *DiGraph) *UndiGraph {
	nodes := dag.Nodes()
	out := NewUndiGraph(WithCapacity(len(nodes)))
	for _, n := range nodes {
		out.EnsureNode(n)
	}
	for _, a := range dag.Arcs() {
		// Endpoints exist and differ: AddEdge cannot fail.
		_ = out.AddEdge(a.Tail, a.Head)
	}
	for _, n := range nodes {
		ps, _ := dag.Parents(n)
		for i := range ps {
			for j := i + 1; j < len(ps); j++ {
				_ = out.AddEdge(ps[i], ps[j])
			}
		}
	}

	return out
}
