// SPDX-License-Identifier: MIT
//
// File: digraph.go
// Role: DiGraph, the directed counterpart of UndiGraph. Used as the
// structure of Bayesian networks (see Moralize) and as the dependency DAG of
// table schedules.
//
// Determinism:
//   - Nodes(), Arcs(), Parents(), Children() are sorted ascending.

package core

import (
	"fmt"
	"slices"
	"sync"
)

// DiGraph is a mutable directed graph without self-loops or parallel arcs.
// It does not forbid cycles; acyclicity is checked by consumers (dfs.TopologicalSort).
type DiGraph struct {
	mu sync.RWMutex

	cfg      graphConfig
	children map[NodeID]map[NodeID]struct{}
	parents  map[NodeID]map[NodeID]struct{}
	nArcs    int
}

// NewDiGraph creates an empty directed graph.
func NewDiGraph(opts ...GraphOption) *DiGraph {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &DiGraph{
		cfg:      cfg,
		children: make(map[NodeID]map[NodeID]struct{}, cfg.nodesHint),
		parents:  make(map[NodeID]map[NodeID]struct{}, cfg.nodesHint),
	}
}

// AddNodeWithID inserts node id.
//
// Errors:
//   - ErrDuplicateNode: id already present.
func (g *DiGraph) AddNodeWithID(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.children[id]; ok {
		return fmt.Errorf("DiGraph.AddNodeWithID(%d): %w", id, ErrDuplicateNode)
	}
	g.children[id] = make(map[NodeID]struct{}, g.cfg.edgesHint)
	g.parents[id] = make(map[NodeID]struct{}, g.cfg.edgesHint)

	return nil
}

// ExistsNode reports whether id belongs to the graph.
func (g *DiGraph) ExistsNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.children[id]

	return ok
}

// EraseNode removes id with all incoming and outgoing arcs.
//
// Errors:
//   - ErrNodeNotFound: id absent.
func (g *DiGraph) EraseNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch, ok := g.children[id]
	if !ok {
		return fmt.Errorf("DiGraph.EraseNode(%d): %w", id, ErrNodeNotFound)
	}
	for c := range ch {
		delete(g.parents[c], id)
		g.nArcs--
	}
	for p := range g.parents[id] {
		delete(g.children[p], id)
		g.nArcs--
	}
	delete(g.children, id)
	delete(g.parents, id)

	return nil
}

// AddArc inserts tail→head. Adding an existing arc is a no-op.
//
// Errors:
//   - ErrSelfLoop: tail == head.
//   - ErrNodeNotFound: an endpoint is absent.
func (g *DiGraph) AddArc(tail, head NodeID) error {
	if tail == head {
		return fmt.Errorf("DiGraph.AddArc(%d,%d): %w", tail, head, ErrSelfLoop)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	ch, ok := g.children[tail]
	if !ok {
		return fmt.Errorf("DiGraph.AddArc(%d,%d): node %d: %w", tail, head, tail, ErrNodeNotFound)
	}
	if _, ok = g.children[head]; !ok {
		return fmt.Errorf("DiGraph.AddArc(%d,%d): node %d: %w", tail, head, head, ErrNodeNotFound)
	}
	if _, dup := ch[head]; dup {
		return nil
	}
	ch[head] = struct{}{}
	g.parents[head][tail] = struct{}{}
	g.nArcs++

	return nil
}

// EraseArc removes tail→head.
//
// Errors:
//   - ErrEdgeNotFound: the arc is absent.
func (g *DiGraph) EraseArc(tail, head NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ch, ok := g.children[tail]
	if !ok {
		return fmt.Errorf("DiGraph.EraseArc(%d,%d): %w", tail, head, ErrEdgeNotFound)
	}
	if _, ok = ch[head]; !ok {
		return fmt.Errorf("DiGraph.EraseArc(%d,%d): %w", tail, head, ErrEdgeNotFound)
	}
	delete(ch, head)
	delete(g.parents[head], tail)
	g.nArcs--

	return nil
}

// ExistsArc reports whether tail→head is an arc.
func (g *DiGraph) ExistsArc(tail, head NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ch, ok := g.children[tail]
	if !ok {
		return false
	}
	_, ok = ch[head]

	return ok
}

// Parents returns the tails of the arcs entering id, ascending.
func (g *DiGraph) Parents(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ps, ok := g.parents[id]
	if !ok {
		return nil, fmt.Errorf("DiGraph.Parents(%d): %w", id, ErrNodeNotFound)
	}

	return sortedKeys(ps), nil
}

// Children returns the heads of the arcs leaving id, ascending.
func (g *DiGraph) Children(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cs, ok := g.children[id]
	if !ok {
		return nil, fmt.Errorf("DiGraph.Children(%d): %w", id, ErrNodeNotFound)
	}

	return sortedKeys(cs), nil
}

// Nodes returns every node id, ascending.
func (g *DiGraph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, len(g.children))
	for id := range g.children {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Arcs returns every arc sorted by (Tail,Head).
func (g *DiGraph) Arcs() []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Arc, 0, g.nArcs)
	for t, ch := range g.children {
		for h := range ch {
			out = append(out, Arc{Tail: t, Head: h})
		}
	}
	slices.SortFunc(out, func(a, b Arc) int {
		if a.Tail != b.Tail {
			return cmpNodeID(a.Tail, b.Tail)
		}
		return cmpNodeID(a.Head, b.Head)
	})

	return out
}

// Size returns the number of nodes.
func (g *DiGraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.children)
}

// SizeArcs returns the number of arcs.
func (g *DiGraph) SizeArcs() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nArcs
}

// Clone returns a deep copy.
func (g *DiGraph) Clone() *DiGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &DiGraph{
		cfg:      g.cfg,
		children: make(map[NodeID]map[NodeID]struct{}, len(g.children)),
		parents:  make(map[NodeID]map[NodeID]struct{}, len(g.parents)),
		nArcs:    g.nArcs,
	}
	for id, ch := range g.children {
		out.children[id] = copyBucket(ch)
		out.parents[id] = copyBucket(g.parents[id])
	}

	return out
}

func copyBucket(b map[NodeID]struct{}) map[NodeID]struct{} {
	out := make(map[NodeID]struct{}, len(b))
	for k := range b {
		out[k] = struct{}{}
	}

	return out
}

func sortedKeys(b map[NodeID]struct{}) []NodeID {
	out := make([]NodeID, 0, len(b))
	for k := range b {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

func cmpNodeID(a, b NodeID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
