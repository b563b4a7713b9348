// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i).
//   - Deterministic outcomes for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.UndiGraph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(methodRandomSparse, n, minRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Add all nodes deterministically.
		ids := addNodes(g, n, cfg.idFn)

		// 3) Bernoulli trial per unordered pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !bernoulli(cfg, p) {
					continue
				}
				if err := addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// bernoulli draws one trial. p ∈ {0,1} never consults the RNG, so those
// edge sets are fully deterministic even without a seed.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
