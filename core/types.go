// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: NodeID, Edge, Arc, GraphOption and the UndiGraph type with its
// constructor.

package core

import (
	"fmt"
	"sync"
)

// NodeID is an opaque unsigned node identifier.
type NodeID uint

// Edge is an undirected edge. Constructed through NewEdge it is normalized
// so that U < V, which makes Edge usable as a map key for {u,v} pairs.
type Edge struct {
	U NodeID
	V NodeID
}

// NewEdge returns the normalized edge {a,b}.
// Complexity: O(1).
func NewEdge(a, b NodeID) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Other returns the endpoint of e that is not n. The result is meaningless
// when n is not an endpoint of e.
func (e Edge) Other(n NodeID) NodeID {
	if e.U == n {
		return e.V
	}

	return e.U
}

// String implements fmt.Stringer.
func (e Edge) String() string { return fmt.Sprintf("%d--%d", e.U, e.V) }

// Arc is a directed edge Tail→Head.
type Arc struct {
	Tail NodeID
	Head NodeID
}

// String implements fmt.Stringer.
func (a Arc) String() string { return fmt.Sprintf("%d->%d", a.Tail, a.Head) }

// GraphOption configures a graph before creation.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time knobs shared by UndiGraph and DiGraph.
type graphConfig struct {
	nodesHint int // capacity hint for the node catalog
	edgesHint int // capacity hint for per-node adjacency buckets
}

// WithCapacity pre-sizes the node catalog for n nodes.
// Panics on negative n (programmer error).
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}
	return func(c *graphConfig) { c.nodesHint = n }
}

// WithDegreeHint pre-sizes every adjacency bucket for d neighbours.
// Panics on negative d (programmer error).
func WithDegreeHint(d int) GraphOption {
	if d < 0 {
		panic("core: WithDegreeHint(d<0)")
	}
	return func(c *graphConfig) { c.edgesHint = d }
}

// UndiGraph is a mutable undirected simple graph over NodeID.
//
// Invariants:
//   - every edge references two existing, distinct nodes;
//   - adj[u][v] exists iff adj[v][u] exists;
//   - nEdges equals the number of unordered pairs stored in adj.
//
// mu guards every field except the listener registry, which has its own lock
// so that listeners may be (un)registered from within a callback.
type UndiGraph struct {
	mu sync.RWMutex

	cfg    graphConfig
	adj    map[NodeID]map[NodeID]struct{} // node → neighbour set
	nEdges int                            // number of undirected edges
	nextID NodeID                         // smallest id never handed out by AddNode

	listeners listenerRegistry
}

// NewUndiGraph creates an empty undirected graph.
// Complexity: O(1) (plus the requested capacity).
func NewUndiGraph(opts ...GraphOption) *UndiGraph {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &UndiGraph{
		cfg: cfg,
		adj: make(map[NodeID]map[NodeID]struct{}, cfg.nodesHint),
	}
}

// newBucket allocates an adjacency bucket honoring the degree hint.
func (g *UndiGraph) newBucket() map[NodeID]struct{} {
	return make(map[NodeID]struct{}, g.cfg.edgesHint)
}
