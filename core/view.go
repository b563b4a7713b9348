// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

// InducedSubgraph returns a new graph holding the nodes of g that belong to
// keep, and every edge of g whose endpoints are both kept. Members of keep
// absent from g are ignored. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *UndiGraph, keep NodeSet) *UndiGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &UndiGraph{
		cfg:    g.cfg,
		adj:    make(map[NodeID]map[NodeID]struct{}, len(keep)),
		nextID: g.nextID,
	}
	for id, nbrs := range g.adj {
		if !keep.Contains(id) {
			continue
		}
		b := make(map[NodeID]struct{}, len(nbrs))
		for n := range nbrs {
			if keep.Contains(n) {
				b[n] = struct{}{}
				if id < n {
					out.nEdges++
				}
			}
		}
		out.adj[id] = b
	}

	return out
}
