// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & neighbourhood queries of UndiGraph.
//
// Determinism:
//   - Neighbours() returns ids sorted ascending.
//
// Concurrency:
//   - Mutations hold g.mu for writing; events are dispatched after unlocking.

package core

import (
	"fmt"
	"slices"
)

// AddNode inserts a node with the smallest id never handed out by AddNode
// that is not already in use, and returns it.
//
// Implementation:
//   - Stage 1: Under the write lock, advance nextID past ids taken by AddNodeWithID.
//   - Stage 2: Register the node with an empty adjacency bucket.
//   - Stage 3: Notify listeners (OnNodeAdded) after unlocking.
//
// Complexity: O(1) amortized.
func (g *UndiGraph) AddNode() NodeID {
	g.mu.Lock()
	for {
		if _, taken := g.adj[g.nextID]; !taken {
			break
		}
		g.nextID++
	}
	id := g.nextID
	g.nextID++
	g.adj[id] = g.newBucket()
	g.mu.Unlock()

	g.listeners.dispatch([]event{{kind: evNodeAdded, u: id}})

	return id
}

// AddNodeWithID inserts node id.
//
// Errors:
//   - ErrDuplicateNode: id already present.
//
// Complexity: O(1) amortized.
func (g *UndiGraph) AddNodeWithID(id NodeID) error {
	g.mu.Lock()
	if _, exists := g.adj[id]; exists {
		g.mu.Unlock()
		return fmt.Errorf("AddNodeWithID(%d): %w", id, ErrDuplicateNode)
	}
	g.adj[id] = g.newBucket()
	g.mu.Unlock()

	g.listeners.dispatch([]event{{kind: evNodeAdded, u: id}})

	return nil
}

// EnsureNode inserts id if missing; it is idempotent and never fails.
func (g *UndiGraph) EnsureNode(id NodeID) {
	g.mu.Lock()
	if _, exists := g.adj[id]; exists {
		g.mu.Unlock()
		return
	}
	g.adj[id] = g.newBucket()
	g.mu.Unlock()

	g.listeners.dispatch([]event{{kind: evNodeAdded, u: id}})
}

// ExistsNode reports whether id belongs to the graph.
// Complexity: O(1).
func (g *UndiGraph) ExistsNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// EraseNode removes id and all its incident edges.
//
// Implementation:
//   - Stage 1: Under the write lock, verify presence (ErrNodeNotFound).
//   - Stage 2: Detach id from each neighbour bucket, recording one
//     OnEdgeDeleted event per incident edge (ascending neighbour order).
//   - Stage 3: Drop the node bucket; record OnNodeDeleted.
//   - Stage 4: Dispatch events after unlocking.
//
// Complexity: O(deg(id) log deg(id)).
func (g *UndiGraph) EraseNode(id NodeID) error {
	g.mu.Lock()
	nbrs, ok := g.adj[id]
	if !ok {
		g.mu.Unlock()
		return fmt.Errorf("EraseNode(%d): %w", id, ErrNodeNotFound)
	}

	sorted := make([]NodeID, 0, len(nbrs))
	for n := range nbrs {
		sorted = append(sorted, n)
	}
	slices.Sort(sorted)

	events := make([]event, 0, len(sorted)+1)
	for _, n := range sorted {
		delete(g.adj[n], id)
		events = append(events, event{kind: evEdgeDeleted, u: min(id, n), v: max(id, n)})
	}
	g.nEdges -= len(sorted)
	delete(g.adj, id)
	events = append(events, event{kind: evNodeDeleted, u: id})
	g.mu.Unlock()

	g.listeners.dispatch(events)

	return nil
}

// Neighbours returns the neighbours of id in ascending order.
//
// Errors:
//   - ErrNodeNotFound: id absent.
//
// Complexity: O(d log d).
func (g *UndiGraph) Neighbours(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("Neighbours(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]NodeID, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	slices.Sort(out)

	return out, nil
}

// NeighbourSet returns a copy of the neighbour set of id.
//
// Errors:
//   - ErrNodeNotFound: id absent.
//
// Complexity: O(d).
func (g *UndiGraph) NeighbourSet(id NodeID) (NodeSet, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("NeighbourSet(%d): %w", id, ErrNodeNotFound)
	}
	out := make(NodeSet, len(nbrs))
	for n := range nbrs {
		out[n] = struct{}{}
	}

	return out, nil
}

// Degree returns the number of neighbours of id.
//
// Errors:
//   - ErrNodeNotFound: id absent.
//
// Complexity: O(1).
func (g *UndiGraph) Degree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrNodeNotFound)
	}

	return len(nbrs), nil
}
