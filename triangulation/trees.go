// SPDX-License-Identifier: MIT
//
// File: trees.go
// Role: Elimination tree and maximal prime subgraph tree construction.

package triangulation

import (
	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/jointree"
)

// buildEliminationTree links the clique C_X of every node X to the clique
// of the first-eliminated node of C_X \ {X}. Clique ids are node ids; every
// elimination clique is kept, maximal or not.
//
// Complexity: O(Σ|C_X|).
func buildEliminationTree(res *result) *jointree.CliqueGraph {
	et := jointree.NewCliqueGraph()
	for _, x := range res.order {
		_ = et.AddCliqueWithID(x, res.cliques[x])
	}
	for _, x := range res.order {
		parent, found := core.NodeID(0), false
		for v := range res.cliques[x] {
			if v == x {
				continue
			}
			if !found || res.position[v] < res.position[parent] {
				parent, found = v, true
			}
		}
		if found {
			_ = et.AddEdge(x, parent)
		}
	}

	return et
}

// buildMaxPrimeSubgraphTree contracts every junction tree edge whose
// separator is not complete in the original graph. Contraction keeps the
// smaller clique id. mpsOf maps each junction tree clique to its MPS.
//
// Complexity: O(C · E_jt · k²) for C cliques of size k.
func buildMaxPrimeSubgraphTree(jt *jointree.CliqueGraph, original *core.UndiGraph) (*jointree.CliqueGraph, map[core.NodeID]core.NodeID) {
	mps := jt.Clone()
	mpsOf := make(map[core.NodeID]core.NodeID, mps.Size())
	for _, id := range mps.Cliques() {
		mpsOf[id] = id
	}

	for merged := true; merged; {
		merged = false
		for _, e := range mps.Edges() {
			sep, _ := mps.Separator(e.U, e.V)
			if original.IsComplete(sep) {
				continue
			}
			_ = mps.Contract(e.U, e.V)
			for c, m := range mpsOf {
				if m == e.V {
					mpsOf[c] = e.U
				}
			}
			merged = true

			break
		}
	}

	return mps, mpsOf
}
