// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// impl_dag.go - RandomDAG(n, p, opts...): Bayesian-network structures.
//
// Canonical model:
//   - Nodes idFn(0..n-1); each arc i→j with i<j is included independently
//     with probability p, so the result is acyclic by construction.
//   - maxParents > 0 caps the in-degree; trials that would
//     exceed it are skipped.
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1, rng required when 0<p<1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// RandomDAG samples a random DAG. Feed it to core.Moralize to obtain the
// undirected graph a triangulation consumes.
func RandomDAG(n int, p float64, maxParents int, opts ...BuilderOption) (*core.DiGraph, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(methodRandomDAG, n, minRandomNodes); err != nil {
		return nil, err
	}
	if err := validateProbability(methodRandomDAG, p); err != nil {
		return nil, err
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomDAG, ErrNeedRandSource)
	}

	g := core.NewDiGraph(core.WithCapacity(n))
	ids := make([]core.NodeID, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddNodeWithID(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandomDAG, err)
		}
	}

	parents := make([]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !bernoulli(cfg, p) {
				continue
			}
			if maxParents > 0 && parents[j] >= maxParents {
				continue
			}
			if err := g.AddArc(ids[i], ids[j]); err != nil {
				return nil, fmt.Errorf("%s: AddArc(%d,%d): %w", methodRandomDAG, ids[i], ids[j], err)
			}
			parents[j]++
		}
	}

	return g, nil
}
