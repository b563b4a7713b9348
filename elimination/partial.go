// SPDX-License-Identifier: MIT
//
// File: partial.go
// Role: Strategy constrained by a sequence of levels (partial order).

package elimination

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpgm/core"
)

// PartialOrdered eliminates the nodes of level i only once every node of
// levels 0..i-1 is gone. The Default heuristic chooses within a level.
type PartialOrdered struct {
	Default
	levels [][]core.NodeID
}

var _ Strategy = (*PartialOrdered)(nil)

// NewPartialOrdered returns an unbound strategy over levels, scoring with
// the given heuristic options.
func NewPartialOrdered(levels [][]core.NodeID, opts ...Option) *PartialOrdered {
	return &PartialOrdered{Default: Default{opts: resolve(opts)}, levels: cloneLevels(levels)}
}

// PartialOrder returns a copy of the configured levels.
func (p *PartialOrdered) PartialOrder() [][]core.NodeID { return cloneLevels(p.levels) }

// SetPartialOrder replaces the levels. With a bound graph the levels must
// partition its current nodes.
func (p *PartialOrdered) SetPartialOrder(levels [][]core.NodeID) error {
	if p.g != nil {
		if err := checkPartition(p.g, levels); err != nil {
			return errors.Wrap(err, "SetPartialOrder")
		}
	}
	p.levels = cloneLevels(levels)

	return nil
}

// SetGraph binds g and validates previously supplied levels against it.
func (p *PartialOrdered) SetGraph(g *core.UndiGraph, domains core.DomainSizes) error {
	if p.levels != nil && g != nil {
		if err := checkPartition(g, p.levels); err != nil {
			return errors.Wrap(err, "SetGraph")
		}
	}

	return p.Default.SetGraph(g, domains)
}

// NextNodeToEliminate returns the cheapest node of the first level that
// still has nodes in the graph.
//
// Errors:
//   - ErrGraphNotSet, ErrEmptyGraph.
//   - ErrIncompleteOrder: no levels supplied, or every level is exhausted
//     while nodes remain.
func (p *PartialOrdered) NextNodeToEliminate() (core.NodeID, error) {
	if err := p.nonEmpty(); err != nil {
		return 0, err
	}
	for _, level := range p.levels {
		var live []core.NodeID
		for _, v := range core.NewNodeSet(level...).Sorted() {
			if p.g.ExistsNode(v) {
				live = append(live, v)
			}
		}
		if len(live) > 0 {
			return p.best(live), nil
		}
	}

	return 0, errors.Wrapf(ErrIncompleteOrder, "NextNodeToEliminate: %d nodes left", p.g.Size())
}

// NewStrategy returns an unbound PartialOrdered with the same levels and options.
func (p *PartialOrdered) NewStrategy() Strategy {
	return &PartialOrdered{
		Default: Default{opts: p.opts, base: base{trackFills: p.trackFills}},
		levels:  cloneLevels(p.levels),
	}
}

// checkPartition verifies that every node of g appears in exactly one level.
// Empty levels are allowed.
func checkPartition(g *core.UndiGraph, levels [][]core.NodeID) error {
	seen := make(core.NodeSet, g.Size())
	for i, level := range levels {
		for _, v := range level {
			if !g.ExistsNode(v) {
				return errors.Wrapf(ErrUnknownNode, "level %d: node %d", i, v)
			}
			if seen.Contains(v) {
				return errors.Wrapf(ErrIncompleteOrder, "level %d: node %d repeated", i, v)
			}
			seen.Insert(v)
		}
	}
	if len(seen) != g.Size() {
		return errors.Wrapf(ErrIncompleteOrder, "%d of %d nodes in levels", len(seen), g.Size())
	}

	return nil
}

func cloneLevels(levels [][]core.NodeID) [][]core.NodeID {
	if levels == nil {
		return nil
	}
	out := make([][]core.NodeID, len(levels))
	for i, l := range levels {
		out[i] = cloneIDs(l)
	}

	return out
}
