// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle of UndiGraph.
//
// Policy:
//   - Simple graph: no self-loops, no parallel edges.
//   - AddEdge on an existing edge is a silent no-op (no event).
//   - Events always carry the normalized pair (u<v).

package core

import "fmt"

// AddEdge inserts the undirected edge {u,v}.
//
// Implementation:
//   - Stage 1: Reject self-loops (ErrSelfLoop).
//   - Stage 2: Under the write lock, verify both endpoints (ErrNodeNotFound).
//   - Stage 3: Mirror the pair into both adjacency buckets; count the edge.
//   - Stage 4: Notify OnEdgeAdded after unlocking.
//
// Complexity: O(1) amortized.
func (g *UndiGraph) AddEdge(u, v NodeID) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}

	g.mu.Lock()
	bu, okU := g.adj[u]
	bv, okV := g.adj[v]
	switch {
	case !okU:
		g.mu.Unlock()
		return fmt.Errorf("AddEdge(%d,%d): node %d: %w", u, v, u, ErrNodeNotFound)
	case !okV:
		g.mu.Unlock()
		return fmt.Errorf("AddEdge(%d,%d): node %d: %w", u, v, v, ErrNodeNotFound)
	}
	if _, dup := bu[v]; dup {
		g.mu.Unlock()
		return nil
	}
	bu[v] = struct{}{}
	bv[u] = struct{}{}
	g.nEdges++
	g.mu.Unlock()

	e := NewEdge(u, v)
	g.listeners.dispatch([]event{{kind: evEdgeAdded, u: e.U, v: e.V}})

	return nil
}

// EraseEdge removes the edge {u,v}.
//
// Errors:
//   - ErrEdgeNotFound: the edge (or one endpoint) is absent.
//
// Complexity: O(1).
func (g *UndiGraph) EraseEdge(u, v NodeID) error {
	g.mu.Lock()
	bu, ok := g.adj[u]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("EraseEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	if _, ok = bu[v]; !ok {
		g.mu.Unlock()
		return fmt.Errorf("EraseEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(bu, v)
	delete(g.adj[v], u)
	g.nEdges--
	g.mu.Unlock()

	e := NewEdge(u, v)
	g.listeners.dispatch([]event{{kind: evEdgeDeleted, u: e.U, v: e.V}})

	return nil
}

// ExistsEdge reports whether {u,v} is an edge. Missing endpoints yield false.
// Complexity: O(1).
func (g *UndiGraph) ExistsEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bu, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = bu[v]

	return ok
}

// IsComplete reports whether the nodes of s are pairwise adjacent in g.
// Nodes of s absent from g make the answer false unless |s| <= 1.
//
// Complexity: O(|s|²).
func (g *UndiGraph) IsComplete(s NodeSet) bool {
	if len(s) <= 1 {
		return true
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := s.Sorted()
	for i, a := range ids {
		ba, ok := g.adj[a]
		if !ok {
			return false
		}
		for _, b := range ids[i+1:] {
			if _, ok = ba[b]; !ok {
				return false
			}
		}
	}

	return true
}
