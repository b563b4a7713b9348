// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy and reset of UndiGraph.

package core

// Clone returns a deep copy of the topology. Listeners are not copied.
//
// Implementation:
//   - Stage 1: Acquire the read lock on g.
//   - Stage 2: Allocate a fresh graph with the same configuration.
//   - Stage 3: Copy every adjacency bucket; carry nEdges and nextID.
//
// Complexity: O(V + E).
func (g *UndiGraph) Clone() *UndiGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &UndiGraph{
		cfg:    g.cfg,
		adj:    make(map[NodeID]map[NodeID]struct{}, len(g.adj)),
		nEdges: g.nEdges,
		nextID: g.nextID,
	}
	for id, nbrs := range g.adj {
		b := make(map[NodeID]struct{}, len(nbrs))
		for n := range nbrs {
			b[n] = struct{}{}
		}
		out.adj[id] = b
	}

	return out
}

// Clear removes every node and edge. Listeners receive OnEdgeDeleted for
// each edge and then OnNodeDeleted for each node, both in ascending order.
//
// Complexity: O(V log V + E log E).
func (g *UndiGraph) Clear() {
	edges := g.Edges()
	nodes := g.Nodes()

	g.mu.Lock()
	g.adj = make(map[NodeID]map[NodeID]struct{}, g.cfg.nodesHint)
	g.nEdges = 0
	g.nextID = 0
	g.mu.Unlock()

	events := make([]event, 0, len(edges)+len(nodes))
	for _, e := range edges {
		events = append(events, event{kind: evEdgeDeleted, u: e.U, v: e.V})
	}
	for _, n := range nodes {
		events = append(events, event{kind: evNodeDeleted, u: n})
	}
	g.listeners.dispatch(events)
}
