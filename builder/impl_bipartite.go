// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side is idFn(0..n1-1), right side idFn(n1..n1+n2-1).
//   - Edges in (left asc, right asc) order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.UndiGraph, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: partition sizes must be ≥ %d, got %d and %d: %w",
				methodCompleteBipartite, minPartition, n1, n2, ErrTooFewVertices)
		}
		ids := addNodes(g, n1+n2, cfg.idFn)
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := addEdge(g, methodCompleteBipartite, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
