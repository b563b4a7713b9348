// SPDX-License-Identifier: MIT
//
// File: accessors.go
// Role: Lazy accessors of a Triangulation and order constraints.
//
// Every accessor triangulates on first use. Returned graphs and trees are
// cached and shared: Clone them before modifying.

package triangulation

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/elimination"
	"github.com/katalvlaran/lvpgm/jointree"
)

// ensure triangulates when needed and returns the current result.
func (t *Triangulation) ensure() (*result, error) {
	if err := t.Triangulate(); err != nil {
		return nil, err
	}
	if t.res == nil {
		// only reachable from a junction tree strategy calling back mid-run
		return nil, errors.Wrap(ErrOperationNotAllowed, "result requested during triangulation")
	}

	return t.res, nil
}

// EliminationOrder returns a copy of the elimination order: a permutation of
// the graph nodes.
func (t *Triangulation) EliminationOrder() ([]core.NodeID, error) {
	res, err := t.ensure()
	if err != nil {
		return nil, err
	}

	return cloneIDs(res.order), nil
}

// EliminationOrderOf returns the 0-based position of node in the order.
//
// Errors:
//   - ErrUnknownNode.
func (t *Triangulation) EliminationOrderOf(node core.NodeID) (int, error) {
	res, err := t.ensure()
	if err != nil {
		return 0, err
	}
	pos, ok := res.position[node]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownNode, "EliminationOrderOf(%d)", node)
	}

	return pos, nil
}

// TriangulatedGraph returns the original graph plus its fill-ins.
func (t *Triangulation) TriangulatedGraph() (*core.UndiGraph, error) {
	res, err := t.ensure()
	if err != nil {
		return nil, err
	}

	return res.triangulated, nil
}

// FillIns returns the fill-in edges sorted by (U,V), or nil when fill-in
// tracking is disabled.
func (t *Triangulation) FillIns() ([]core.Edge, error) {
	res, err := t.ensure()
	if err != nil {
		return nil, err
	}
	if res.fillIns == nil {
		return nil, nil
	}
	out := make([]core.Edge, len(res.fillIns))
	copy(out, res.fillIns)
	core.SortEdges(out)

	return out, nil
}

// MaxCliqueLogWeight returns the largest natural-log weight (log of the
// product of domain sizes) among the elimination cliques.
func (t *Triangulation) MaxCliqueLogWeight() (float64, error) {
	res, err := t.ensure()
	if err != nil {
		return 0, err
	}

	return res.maxWeight, nil
}

// EliminationTree returns the tree linking each elimination clique C_X (id X)
// to the clique of the first-eliminated node of C_X \ {X}.
func (t *Triangulation) EliminationTree() (*jointree.CliqueGraph, error) {
	res, err := t.ensure()
	if err != nil {
		return nil, err
	}
	if res.elimTree == nil {
		res.elimTree = buildEliminationTree(res)
	}

	return res.elimTree, nil
}

// JunctionTree returns the junction tree (a forest for a disconnected graph
// unless WithSingleTree is set).
func (t *Triangulation) JunctionTree() (*jointree.CliqueGraph, error) {
	if _, err := t.ensure(); err != nil {
		return nil, err
	}
	jt, err := t.js.JunctionTree()
	if err != nil {
		return nil, errors.Wrap(err, "JunctionTree")
	}

	return jt, nil
}

// MaxPrimeSubgraphTree returns the junction tree with every pair of adjacent
// cliques merged whenever their separator is not complete in the original
// graph. Meaningful for minimal triangulations.
func (t *Triangulation) MaxPrimeSubgraphTree() (*jointree.CliqueGraph, error) {
	res, err := t.ensure()
	if err != nil {
		return nil, err
	}
	if res.mpsTree == nil {
		jt, err := t.JunctionTree()
		if err != nil {
			return nil, err
		}
		res.mpsTree, res.mpsOf = buildMaxPrimeSubgraphTree(jt, t.original)
	}

	return res.mpsTree, nil
}

// CreatedJunctionTreeClique returns the junction tree clique created by
// eliminating node: the place to install node's conditional table.
//
// Errors:
//   - ErrUnknownNode.
func (t *Triangulation) CreatedJunctionTreeClique(node core.NodeID) (core.NodeID, error) {
	if _, err := t.ensure(); err != nil {
		return 0, err
	}
	id, err := t.js.CreatedClique(node)
	if err != nil {
		return 0, errors.Wrapf(ErrUnknownNode, "CreatedJunctionTreeClique(%d): %v", node, err)
	}

	return id, nil
}

// CreatedJunctionTreeCliques returns a copy of the node → clique mapping.
func (t *Triangulation) CreatedJunctionTreeCliques() (map[core.NodeID]core.NodeID, error) {
	if _, err := t.ensure(); err != nil {
		return nil, err
	}

	return t.js.CreatedCliques()
}

// CreatedMaxPrimeSubgraph returns the maximal prime subgraph holding the
// junction tree clique created by eliminating node.
//
// Errors:
//   - ErrUnknownNode.
func (t *Triangulation) CreatedMaxPrimeSubgraph(node core.NodeID) (core.NodeID, error) {
	if _, err := t.MaxPrimeSubgraphTree(); err != nil {
		return 0, err
	}
	clique, err := t.CreatedJunctionTreeClique(node)
	if err != nil {
		return 0, err
	}

	return t.res.mpsOf[clique], nil
}

// Components returns the connected components of the original graph, each
// sorted, ordered by smallest node.
func (t *Triangulation) Components() ([][]core.NodeID, error) {
	res, err := t.ensure()
	if err != nil {
		return nil, err
	}
	if res.components == nil {
		res.components = core.ConnectedComponents(t.original)
	}

	return res.components, nil
}

// OriginalGraph returns the private copy taken by SetGraph, or nil.
func (t *Triangulation) OriginalGraph() *core.UndiGraph { return t.original }

// DomainSizes returns the domain sizes bound by SetGraph, or nil.
func (t *Triangulation) DomainSizes() core.DomainSizes { return t.domains }

// SetOrder replaces the order of an Ordered triangulation and returns to
// GraphSet. With a bound graph the order must be a permutation of its nodes.
//
// Errors:
//   - ErrOperationNotAllowed: not an Ordered triangulation.
//   - elimination.ErrIncompleteOrder, elimination.ErrUnknownNode.
func (t *Triangulation) SetOrder(order []core.NodeID) error {
	if t.kind != Ordered {
		return errors.Wrapf(ErrOperationNotAllowed, "SetOrder on a %s triangulation", t.kind)
	}
	if t.original != nil {
		if err := t.checkConstraints(t.original, order, nil); err != nil {
			return errors.Wrap(err, "SetOrder")
		}
	}
	t.order = cloneIDs(order)
	t.es = elimination.NewOrdered(t.order)
	t.invalidate()

	return nil
}

// SetPartialOrder replaces the levels of a PartialOrdered triangulation and
// returns to GraphSet. With a bound graph the levels must partition its nodes.
//
// Errors:
//   - ErrOperationNotAllowed: not a PartialOrdered triangulation.
//   - elimination.ErrIncompleteOrder, elimination.ErrUnknownNode.
func (t *Triangulation) SetPartialOrder(levels [][]core.NodeID) error {
	if t.kind != PartialOrdered {
		return errors.Wrapf(ErrOperationNotAllowed, "SetPartialOrder on a %s triangulation", t.kind)
	}
	if t.original != nil {
		if err := t.checkConstraints(t.original, nil, levels); err != nil {
			return errors.Wrap(err, "SetPartialOrder")
		}
	}
	t.levels = cloneLevels(levels)
	t.es = elimination.NewPartialOrdered(t.levels, elimination.WithHeuristic(t.opts.heuristic))
	t.invalidate()

	return nil
}
