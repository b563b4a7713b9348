// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// impl_disjoint.go - implementation of DisjointEdges(k).
//
// Contract:
//   - k ≥ 1 (else ErrTooFewVertices).
//   - Nodes idFn(0..2k-1); edges {idFn(2i), idFn(2i+1)}.
//
// The result has k connected components; junction-tree strategies produce
// a forest of k trees (or one tree with empty separators in single-tree mode).

package builder

import "github.com/katalvlaran/lvpgm/core"

// DisjointEdges returns a Constructor that builds k isolated edges.
func DisjointEdges(k int) Constructor {
	return func(g *core.UndiGraph, cfg builderConfig) error {
		if err := validateMin(methodDisjointEdges, k, 1); err != nil {
			return err
		}
		ids := addNodes(g, 2*k, cfg.idFn)
		for i := 0; i < k; i++ {
			if err := addEdge(g, methodDisjointEdges, ids[2*i], ids[2*i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
