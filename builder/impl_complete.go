// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every pair {i,j}, i<j, in (i asc, j asc) order.
//
// Complexity: O(n²) edges.

package builder

import "github.com/katalvlaran/lvpgm/core"

// Complete returns a Constructor that builds K_n. K_n is already chordal:
// a triangulation adds no fill-in and yields a single clique.
func Complete(n int) Constructor {
	return func(g *core.UndiGraph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}

		return addCompleteEdges(g, methodComplete, addNodes(g, n, cfg.idFn))
	}
}
