// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// impl_random_regular.go: RandomRegular(n, d): every variable interacts
// with exactly d others, a standard stress shape for elimination
// heuristics since no node is cheaper to remove than another by degree.
//
// Stubs (d per node) are shuffled with the configured RNG and paired in
// sequence; pairings with a loop or a duplicate edge are rejected before
// the graph is touched, up to maxStubMatchingAttempts times.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// RandomRegular builds a simple d-regular graph on n nodes.
// Requires 0 ≤ d < n, n·d even and an RNG (WithSeed or WithRand).
func RandomRegular(n, d int) Constructor {
	return func(g *core.UndiGraph, cfg builderConfig) error {
		if err := validateMin(methodRandomRegular, n, minRandomNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		ids := addNodes(g, n, cfg.idFn)
		if d == 0 {
			return nil
		}
		stubs := make([]int, n*d)
		for i := range stubs {
			stubs[i] = i / d
		}

		for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := addEdge(g, methodRandomRegular, ids[stubs[i]], ids[stubs[i+1]]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether the pairs (stubs[2i], stubs[2i+1]) form a
// simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		if _, dup := seen[[2]int{u, v}]; dup {
			return false
		}
		seen[[2]int{u, v}] = struct{}{}
	}

	return true
}
