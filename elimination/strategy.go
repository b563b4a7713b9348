// SPDX-License-Identifier: MIT
//
// File: strategy.go
// Role: Strategy contract and the fill-in machinery shared by every variant.

package elimination

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpgm/core"
)

// Strategy selects elimination candidates on a bound graph and applies their
// fill-in.
type Strategy interface {
	// SetGraph binds the strategy to g (not owned) and resets cached costs.
	// A non-nil domains map must cover every node of g.
	SetGraph(g *core.UndiGraph, domains core.DomainSizes) error

	// NextNodeToEliminate returns the node the strategy would eliminate now.
	NextNodeToEliminate() (core.NodeID, error)

	// Eliminate pairwise-connects the neighbours of node, removes node from
	// the graph and returns the fill-in edges it added (sorted).
	Eliminate(node core.NodeID) ([]core.Edge, error)

	// AskFillIns toggles fill-in recording; FillIns returns the record.
	AskFillIns(on bool)
	FillIns() []core.Edge

	// Clear unbinds the graph and drops every cache.
	Clear()

	// NewStrategy returns a fresh, unbound strategy with the same configuration.
	NewStrategy() Strategy
}

// base holds the graph binding and fill-in record common to all strategies.
type base struct {
	g          *core.UndiGraph
	domains    core.DomainSizes
	trackFills bool
	fillIns    []core.Edge
}

// bind validates and stores the graph/domain pair.
func (b *base) bind(g *core.UndiGraph, domains core.DomainSizes) error {
	if g == nil {
		return errors.Wrap(core.ErrGraphNil, "SetGraph")
	}
	if domains != nil {
		if err := domains.Check(g); err != nil {
			return errors.Wrap(err, "SetGraph")
		}
	}
	b.g = g
	b.domains = domains
	b.fillIns = nil

	return nil
}

func (b *base) unbind() {
	b.g = nil
	b.domains = nil
	b.fillIns = nil
}

// AskFillIns enables or disables fill-in recording. Disabling drops the record.
func (b *base) AskFillIns(on bool) {
	b.trackFills = on
	if !on {
		b.fillIns = nil
	}
}

// FillIns returns a copy of the recorded fill-ins, in insertion order, or
// nil when none were recorded.
func (b *base) FillIns() []core.Edge {
	if len(b.fillIns) == 0 {
		return nil
	}
	out := make([]core.Edge, len(b.fillIns))
	copy(out, b.fillIns)

	return out
}

// missingEdges lists the pairs of nbrs (sorted ascending) not yet adjacent.
func missingEdges(g *core.UndiGraph, nbrs []core.NodeID) []core.Edge {
	var out []core.Edge
	for i, u := range nbrs {
		for _, v := range nbrs[i+1:] {
			if !g.ExistsEdge(u, v) {
				out = append(out, core.NewEdge(u, v))
			}
		}
	}

	return out
}

// eliminate applies the fill-in of node and removes it.
//
// Implementation:
//   - Stage 1: Snapshot the sorted neighbourhood (ErrUnknownNode if absent).
//   - Stage 2: Compute every missing pair before touching the graph.
//   - Stage 3: Insert the pairs, then erase node.
//
// Returns the added edges and the neighbourhood snapshot.
// Complexity: O(d²) for a node of degree d.
func (b *base) eliminate(node core.NodeID) ([]core.Edge, []core.NodeID, error) {
	if b.g == nil {
		return nil, nil, errors.Wrapf(ErrGraphNotSet, "Eliminate(%d)", node)
	}
	nbrs, err := b.g.Neighbours(node)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrUnknownNode, "Eliminate(%d)", node)
	}

	added := missingEdges(b.g, nbrs)
	for _, e := range added {
		if err = b.g.AddEdge(e.U, e.V); err != nil {
			return nil, nil, errors.Wrapf(err, "Eliminate(%d): fill-in %s", node, e)
		}
	}
	if err = b.g.EraseNode(node); err != nil {
		return nil, nil, errors.Wrapf(err, "Eliminate(%d)", node)
	}
	if b.trackFills {
		b.fillIns = append(b.fillIns, added...)
	}

	return added, nbrs, nil
}

// nonEmpty reports ErrGraphNotSet / ErrEmptyGraph for the next-node queries.
func (b *base) nonEmpty() error {
	if b.g == nil {
		return errors.Wrap(ErrGraphNotSet, "NextNodeToEliminate")
	}
	if b.g.Empty() {
		return errors.Wrap(ErrEmptyGraph, "NextNodeToEliminate")
	}

	return nil
}
