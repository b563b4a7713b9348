// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// helpers.go: shared node/edge emission and validation helpers.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// addNodes inserts idFn(0..n-1) into g. Re-adding an existing node is a
// no-op (EnsureNode), so constructors compose on shared ids.
// Complexity: O(n).
func addNodes(g *core.UndiGraph, n int, idFn IDFn) []core.NodeID {
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		g.EnsureNode(ids[i])
	}

	return ids
}

// addEdge inserts {u,v} and wraps failures with the constructor name.
func addEdge(g *core.UndiGraph, method string, u, v core.NodeID) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids in (i asc, j asc) order.
// Complexity: O(m²) where m = len(ids).
func addCompleteEdges(g *core.UndiGraph, method string, ids []core.NodeID) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateMin ensures got ≥ min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [probMin, probMax].
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}
