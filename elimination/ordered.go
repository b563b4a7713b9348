// SPDX-License-Identifier: MIT
//
// File: ordered.go
// Role: Strategy replaying a caller-supplied total order.

package elimination

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpgm/core"
)

// Ordered returns nodes in a fixed order. Nodes already removed from the
// graph (e.g. eliminated out of order by the caller) are skipped.
type Ordered struct {
	base
	order []core.NodeID
	pos   int
}

var _ Strategy = (*Ordered)(nil)

// NewOrdered returns an unbound Ordered strategy. order may be nil and set
// later with SetOrder; it is validated when both order and graph are known.
func NewOrdered(order []core.NodeID) *Ordered {
	return &Ordered{order: cloneIDs(order)}
}

// Order returns a copy of the configured order.
func (o *Ordered) Order() []core.NodeID { return cloneIDs(o.order) }

// SetOrder replaces the order and rewinds. With a bound graph the order must
// be a permutation of its current nodes.
func (o *Ordered) SetOrder(order []core.NodeID) error {
	if o.g != nil {
		if err := checkPermutation(o.g, order); err != nil {
			return errors.Wrap(err, "SetOrder")
		}
	}
	o.order = cloneIDs(order)
	o.pos = 0

	return nil
}

// SetGraph binds g and validates a previously supplied order against it.
func (o *Ordered) SetGraph(g *core.UndiGraph, domains core.DomainSizes) error {
	if o.order != nil && g != nil {
		if err := checkPermutation(g, o.order); err != nil {
			return errors.Wrap(err, "SetGraph")
		}
	}
	if err := o.bind(g, domains); err != nil {
		return err
	}
	o.pos = 0

	return nil
}

// NextNodeToEliminate returns the first node of the order still in the graph.
//
// Errors:
//   - ErrGraphNotSet, ErrEmptyGraph.
//   - ErrIncompleteOrder: no order supplied, or the order ran out while
//     nodes remain.
func (o *Ordered) NextNodeToEliminate() (core.NodeID, error) {
	if err := o.nonEmpty(); err != nil {
		return 0, err
	}
	for o.pos < len(o.order) && !o.g.ExistsNode(o.order[o.pos]) {
		o.pos++
	}
	if o.pos == len(o.order) {
		return 0, errors.Wrapf(ErrIncompleteOrder, "NextNodeToEliminate: %d nodes left", o.g.Size())
	}

	return o.order[o.pos], nil
}

// Eliminate applies the fill-in of node and removes it.
func (o *Ordered) Eliminate(node core.NodeID) ([]core.Edge, error) {
	added, _, err := o.eliminate(node)

	return added, err
}

// Clear unbinds the graph; the order is kept.
func (o *Ordered) Clear() {
	o.unbind()
	o.pos = 0
}

// NewStrategy returns an unbound Ordered strategy with the same order.
func (o *Ordered) NewStrategy() Strategy {
	return &Ordered{order: cloneIDs(o.order), base: base{trackFills: o.trackFills}}
}

// checkPermutation verifies that order lists every node of g exactly once.
func checkPermutation(g *core.UndiGraph, order []core.NodeID) error {
	seen := make(core.NodeSet, len(order))
	for _, v := range order {
		if !g.ExistsNode(v) {
			return errors.Wrapf(ErrUnknownNode, "node %d", v)
		}
		if seen.Contains(v) {
			return errors.Wrapf(ErrIncompleteOrder, "node %d repeated", v)
		}
		seen.Insert(v)
	}
	if len(seen) != g.Size() {
		return errors.Wrapf(ErrIncompleteOrder, "%d of %d nodes ordered", len(seen), g.Size())
	}

	return nil
}

func cloneIDs(ids []core.NodeID) []core.NodeID {
	if ids == nil {
		return nil
	}
	out := make([]core.NodeID, len(ids))
	copy(out, ids)

	return out
}
