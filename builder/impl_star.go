// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is idFn(0); leaves idFn(1..n-1) get one spoke each, in order.

package builder

import "github.com/katalvlaran/lvpgm/core"

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.UndiGraph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		ids := addNodes(g, n, cfg.idFn)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
