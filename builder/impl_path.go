// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)-i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n). Space: O(n) for the id slice.

package builder

import "github.com/katalvlaran/lvpgm/core"

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.UndiGraph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		ids := addNodes(g, n, cfg.idFn)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
