// SPDX-License-Identifier: MIT
//
// File: minimality.go
// Role: Recursive thinning of fill-ins into a minimal triangulation,
// constrained by the caller's order for Ordered and PartialOrdered runs.

package triangulation

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/elimination"
)

// minimize thins res and replays a perfect elimination order of the thinned
// graph. Eliminating the original graph in a PEO of a triangulation H
// reproduces a subgraph of H, so the replay yields consistent order,
// cliques, fill-ins and junction tree.
//
// Ordered and PartialOrdered runs only drop a fill-in when the thinned
// graph still has a PEO honouring the levels (the order counts as one level
// per node), and replay that PEO. A fixed total order determines its
// triangulation, so an Ordered run keeps every fill-in and its order.
func (t *Triangulation) minimize(res *result) (*result, error) {
	levels := t.orderLevels(res)
	var honoured func(*core.UndiGraph) bool
	if levels != nil {
		honoured = func(h *core.UndiGraph) bool {
			_, ok := levelledPEO(h, levels)
			return ok
		}
	}
	thinned, removed := thin(res.triangulated, res.fillIns, honoured)
	if removed == 0 {
		t.log.Debug("no removable fill-in", zap.Int("fill_ins", len(res.fillIns)))
		return res, nil
	}

	peo := core.MaximumCardinalitySearch(thinned)
	if levels != nil {
		peo, _ = levelledPEO(thinned, levels)
	}
	out, err := t.run(elimination.NewOrdered(peo))
	if err != nil {
		return nil, err
	}
	t.log.Debug("fill-ins thinned",
		zap.Int("removed", removed),
		zap.Int("kept", len(out.fillIns)),
	)

	return out, nil
}

// orderLevels returns the elimination constraint of the run, nil when the
// strategy is free.
func (t *Triangulation) orderLevels(res *result) [][]core.NodeID {
	switch t.kind {
	case Ordered:
		levels := make([][]core.NodeID, len(res.order))
		for i, v := range res.order {
			levels[i] = []core.NodeID{v}
		}
		return levels
	case PartialOrdered:
		return t.levels
	}

	return nil
}

// thin removes fill-in edges from a copy of h until none is redundant.
//
// A fill-in {u,v} of a chordal graph can be dropped without losing
// chordality iff N(u) ∩ N(v) is complete. With a non-nil honoured, a drop
// is undone when honoured rejects the thinner graph. Removing one edge can
// make another removable, so candidates are rescanned until a full pass
// removes nothing.
//
// Complexity: O(F² · d²) for F fill-ins and degree d in the worst case,
// times the cost of honoured.
func thin(h *core.UndiGraph, fillIns []core.Edge, honoured func(*core.UndiGraph) bool) (*core.UndiGraph, int) {
	g := h.Clone()
	cands := make([]core.Edge, len(fillIns))
	copy(cands, fillIns)
	core.SortEdges(cands)

	removed := 0
	for changed := true; changed; {
		changed = false
		kept := cands[:0]
		for _, e := range cands {
			nu, _ := g.NeighbourSet(e.U)
			nv, _ := g.NeighbourSet(e.V)
			if g.IsComplete(nu.Intersection(nv)) {
				_ = g.EraseEdge(e.U, e.V)
				if honoured == nil || honoured(g) {
					removed++
					changed = true
					continue
				}
				_ = g.AddEdge(e.U, e.V)
			}
			kept = append(kept, e)
		}
		cands = kept
	}

	return g, removed
}

// levelledPEO returns a perfect elimination order of the chordal graph h
// that eliminates every node of a level before the nodes of later levels,
// smallest simplicial id first, or false when no such order exists.
// Removing a node keeps every simplicial node simplicial, so taking any
// simplicial node of the current level never blocks a later choice.
func levelledPEO(h *core.UndiGraph, levels [][]core.NodeID) ([]core.NodeID, bool) {
	g := h.Clone()
	order := make([]core.NodeID, 0, g.Size())
	for _, level := range levels {
		pending := core.NewNodeSet(level...)
		for pending.Size() > 0 {
			v, ok := firstSimplicial(g, pending.Sorted())
			if !ok {
				return nil, false
			}
			order = append(order, v)
			pending.Erase(v)
			_ = g.EraseNode(v)
		}
	}

	return order, true
}

// firstSimplicial returns the first candidate whose neighbourhood in g is
// complete.
func firstSimplicial(g *core.UndiGraph, candidates []core.NodeID) (core.NodeID, bool) {
	for _, v := range candidates {
		nb, err := g.NeighbourSet(v)
		if err == nil && g.IsComplete(nb) {
			return v, true
		}
	}

	return 0, false
}
