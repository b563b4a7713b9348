// SPDX-License-Identifier: MIT
//
// File: triangulation.go
// Role: Triangulation type, constructors, binding and the elimination loop.
//
// Concurrency:
//   - A Triangulation is not safe for concurrent use. It works on private
//     copies; the caller's graph is never mutated.

package triangulation

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/elimination"
	"github.com/katalvlaran/lvpgm/jointree"
)

// Triangulation turns a graph into a chordal one by node elimination and
// derives the elimination order, fill-ins, elimination tree, junction tree
// and maximal prime subgraph tree. Every result is computed lazily on the
// first accessor call and cached until SetGraph, SetOrder or Clear.
type Triangulation struct {
	kind  Kind
	opts  options
	log   *zap.Logger
	state State

	es     elimination.Strategy
	js     jointree.Strategy
	order  []core.NodeID // Ordered kind
	levels [][]core.NodeID

	original *core.UndiGraph
	domains  core.DomainSizes

	res *result
}

// result holds everything one elimination pass produces.
type result struct {
	order        []core.NodeID
	position     map[core.NodeID]int
	cliques      map[core.NodeID]core.NodeSet // C_X per eliminated node
	triangulated *core.UndiGraph
	fillIns      []core.Edge
	maxWeight    float64

	elimTree   *jointree.CliqueGraph
	mpsTree    *jointree.CliqueGraph
	mpsOf      map[core.NodeID]core.NodeID // junction tree clique -> MPS
	components [][]core.NodeID
}

// NewStatic returns a triangulation driven by a heuristic elimination
// strategy (MinWeight unless configured otherwise).
func NewStatic(opts ...Option) *Triangulation {
	t := newTriangulation(Static, opts)
	if t.opts.elim != nil {
		t.es = t.opts.elim
	} else {
		t.es = elimination.NewDefault(elimination.WithHeuristic(t.opts.heuristic))
	}

	return t
}

// NewOrdered returns a triangulation replaying order. order may be nil and
// supplied later with SetOrder.
func NewOrdered(order []core.NodeID, opts ...Option) *Triangulation {
	t := newTriangulation(Ordered, opts)
	t.order = cloneIDs(order)
	t.es = elimination.NewOrdered(t.order)

	return t
}

// NewPartialOrdered returns a triangulation constrained by levels: every
// node of a level is eliminated before any node of the next one. levels may
// be nil and supplied later with SetPartialOrder.
func NewPartialOrdered(levels [][]core.NodeID, opts ...Option) *Triangulation {
	t := newTriangulation(PartialOrdered, opts)
	t.levels = cloneLevels(levels)
	t.es = elimination.NewPartialOrdered(t.levels, elimination.WithHeuristic(t.opts.heuristic))

	return t
}

func newTriangulation(kind Kind, opts []Option) *Triangulation {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	t := &Triangulation{kind: kind, opts: o, log: o.logger.Named("triangulation")}
	if o.jt != nil {
		t.js = o.jt
	} else {
		t.js = jointree.NewIncremental()
	}
	if o.singleTree {
		t.js.SetSingleTree(true)
	}
	t.js.SetSource(t)

	return t
}

// Kind reports the triangulation flavour.
func (t *Triangulation) Kind() Kind { return t.kind }

// State reports the lifecycle state.
func (t *Triangulation) State() State { return t.state }

// SetGraph binds a private copy of g with its domain sizes and drops every
// derived result. Nothing is computed until an accessor asks for it.
//
// Errors:
//   - core.ErrGraphNil.
//   - core.ErrMissingDomainSize, core.ErrBadDomainSize: domains does not
//     cover g with positive sizes.
//   - elimination.ErrIncompleteOrder, elimination.ErrUnknownNode: a
//     previously supplied order or partial order does not fit g.
func (t *Triangulation) SetGraph(g *core.UndiGraph, domains core.DomainSizes) error {
	if g == nil {
		return errors.Wrap(core.ErrGraphNil, "SetGraph")
	}
	if err := domains.Check(g); err != nil {
		return errors.Wrap(err, "SetGraph")
	}
	if err := t.checkConstraints(g, t.order, t.levels); err != nil {
		return errors.Wrap(err, "SetGraph")
	}

	t.original = g.Clone()
	t.domains = domains.Clone()
	t.invalidate()
	t.log.Debug("graph set",
		zap.Stringer("kind", t.kind),
		zap.Int("nodes", t.original.Size()),
		zap.Int("edges", t.original.SizeEdges()),
	)

	return nil
}

// Clear unbinds the graph and drops every derived result.
func (t *Triangulation) Clear() {
	t.original = nil
	t.domains = nil
	t.res = nil
	t.es.Clear()
	t.js.Reset()
	t.state = Uninitialized
}

// invalidate returns to GraphSet (or stays Uninitialized).
func (t *Triangulation) invalidate() {
	t.res = nil
	t.js.Reset()
	if t.original != nil {
		t.state = GraphSet
	}
}

// Triangulate runs the elimination if it has not run since the last
// invalidation. It is idempotent, and a no-op while a run is in progress
// (the junction tree strategy calls back into it).
//
// Implementation:
//   - Stage 1: Eliminate a copy of the graph with the configured strategy,
//     reporting each clique to the junction tree strategy before removal.
//   - Stage 2 (minimality): thin the fill-ins, compute a perfect elimination
//     order of the thinned graph (maximum cardinality search, or a levelled
//     simplicial order under Ordered/PartialOrdered constraints), and replay
//     it so every derived structure describes the thinned triangulation.
//
// Errors:
//   - ErrGraphNotSet; strategy errors. On error the state returns to
//     GraphSet and no partial result is exposed.
func (t *Triangulation) Triangulate() error {
	switch t.state {
	case Uninitialized:
		return errors.Wrap(ErrGraphNotSet, "Triangulate")
	case Triangulating, Triangulated:
		return nil
	}

	t.state = Triangulating
	res, err := t.run(t.es)
	if err == nil && t.opts.minimality {
		res, err = t.minimize(res)
	}
	if err != nil {
		t.res = nil
		t.js.Reset()
		t.state = GraphSet
		t.log.Debug("triangulation failed", zap.Error(err))

		return errors.Wrap(err, "Triangulate")
	}
	if !t.opts.trackFills {
		res.fillIns = nil
	}

	t.res = res
	t.state = Triangulated
	t.log.Debug("triangulated",
		zap.Int("nodes", len(res.order)),
		zap.Int("fill_ins", res.triangulated.SizeEdges()-t.original.SizeEdges()),
		zap.Float64("max_clique_log_weight", res.maxWeight),
		zap.Bool("minimal", t.opts.minimality),
	)

	return nil
}

// run eliminates a copy of the original graph with es and feeds the
// junction tree strategy.
//
// Complexity: O(Σ d²) over the degrees d at elimination time, plus the
// strategy's own selection cost.
func (t *Triangulation) run(es elimination.Strategy) (*result, error) {
	work := t.original.Clone()
	if err := es.SetGraph(work, t.domains); err != nil {
		return nil, err
	}
	defer es.Clear()
	t.js.Reset()

	n := work.Size()
	res := &result{
		order:        make([]core.NodeID, 0, n),
		position:     make(map[core.NodeID]int, n),
		cliques:      make(map[core.NodeID]core.NodeSet, n),
		triangulated: t.original.Clone(),
	}
	for !work.Empty() {
		v, err := es.NextNodeToEliminate()
		if err != nil {
			return nil, err
		}
		clique, err := work.NeighbourSet(v)
		if err != nil {
			return nil, errors.Wrapf(ErrUnknownNode, "strategy returned %d", v)
		}
		clique.Insert(v)

		res.position[v] = len(res.order)
		res.order = append(res.order, v)
		res.cliques[v] = clique
		if w := t.domains.LogWeight(clique); w > res.maxWeight {
			res.maxWeight = w
		}
		if err = t.js.AddEliminatedClique(v, clique); err != nil {
			return nil, err
		}

		added, err := es.Eliminate(v)
		if err != nil {
			return nil, err
		}
		for _, e := range added {
			_ = res.triangulated.AddEdge(e.U, e.V)
		}
		res.fillIns = append(res.fillIns, added...)
	}

	return res, nil
}

// checkConstraints validates an order or partial order against g without
// touching the bound strategy.
func (t *Triangulation) checkConstraints(g *core.UndiGraph, order []core.NodeID, levels [][]core.NodeID) error {
	switch {
	case t.kind == Ordered && order != nil:
		return elimination.NewOrdered(order).SetGraph(g.Clone(), nil)
	case t.kind == PartialOrdered && levels != nil:
		return elimination.NewPartialOrdered(levels).SetGraph(g.Clone(), nil)
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
