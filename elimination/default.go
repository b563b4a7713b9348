// SPDX-License-Identifier: MIT
//
// File: default.go
// Role: Greedy heuristic elimination with an incremental cost cache.

package elimination

import (
	"github.com/katalvlaran/lvpgm/core"
)

// Default is the greedy heuristic strategy.
type Default struct {
	base
	opts  options
	costs map[core.NodeID]score
}

var _ Strategy = (*Default)(nil)

// NewDefault returns an unbound Default strategy (MinWeight, simplicial first).
func NewDefault(opts ...Option) *Default {
	return &Default{opts: resolve(opts)}
}

// Heuristic reports the configured cost.
func (d *Default) Heuristic() Heuristic { return d.opts.heuristic }

// SetGraph binds g and drops the cost cache.
func (d *Default) SetGraph(g *core.UndiGraph, domains core.DomainSizes) error {
	if err := d.bind(g, domains); err != nil {
		return err
	}
	d.costs = make(map[core.NodeID]score, g.Size())

	return nil
}

// NextNodeToEliminate returns the cheapest remaining node.
//
// Errors:
//   - ErrGraphNotSet, ErrEmptyGraph.
//
// Complexity: O(V) plus the re-scoring of invalidated nodes.
func (d *Default) NextNodeToEliminate() (core.NodeID, error) {
	if err := d.nonEmpty(); err != nil {
		return 0, err
	}

	return d.best(d.g.Nodes()), nil
}

// best picks the cheapest node of candidates (ascending ids, non-empty).
func (d *Default) best(candidates []core.NodeID) core.NodeID {
	pick := candidates[0]
	pickScore := d.scoreOf(pick)
	for _, v := range candidates[1:] {
		if s := d.scoreOf(v); s.better(pickScore, d.opts.simplicialFirst) {
			pick, pickScore = v, s
		}
	}

	return pick
}

// scoreOf returns the cached score of v, computing it on a miss.
func (d *Default) scoreOf(v core.NodeID) score {
	if s, ok := d.costs[v]; ok {
		return s
	}
	s := scoreOf(d.g, d.domains, d.opts.heuristic, v)
	d.costs[v] = s

	return s
}

// Eliminate applies the fill-in of node, removes it and invalidates the
// cached cost of every node within distance 2 of it.
func (d *Default) Eliminate(node core.NodeID) ([]core.Edge, error) {
	added, nbrs, err := d.eliminate(node)
	if err != nil {
		return nil, err
	}

	delete(d.costs, node)
	for _, u := range nbrs {
		delete(d.costs, u)
		// after the fill-in N(node) is a clique, so the current neighbours of
		// u cover the former distance-2 ring
		second, _ := d.g.Neighbours(u)
		for _, w := range second {
			delete(d.costs, w)
		}
	}

	return added, nil
}

// Clear unbinds the graph and drops the caches.
func (d *Default) Clear() {
	d.unbind()
	d.costs = nil
}

// NewStrategy returns an unbound Default with the same options.
func (d *Default) NewStrategy() Strategy {
	return &Default{opts: d.opts, base: base{trackFills: d.trackFills}}
}
