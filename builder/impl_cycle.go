// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Path 0..n-1 followed by the closing edge (n-1)-0.
//
// Cycles of length ≥ 4 are the canonical non-chordal inputs: any
// triangulation of C_n adds exactly n-3 fill-ins.

package builder

import "github.com/katalvlaran/lvpgm/core"

// Cycle returns a Constructor that builds C_n.
func Cycle(n int) Constructor {
	return func(g *core.UndiGraph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		ids := addNodes(g, n, cfg.idFn)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodCycle, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return addEdge(g, methodCycle, ids[n-1], ids[0])
	}
}
