// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, the hub being idFn(n-1).
//   • Therefore, n ≥ 4 (the outer ring must be a valid cycle).
//
// Contract:
//   • Builds the outer cycle using Cycle(n-1) with the same cfg.
//   • Emits spokes from the hub to each ring node in index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.UndiGraph, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := cfg.idFn(n - 1)
		g.EnsureNode(hub)
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
