// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn      = DefaultIDFn               (0,1,2,...)
//   • rng       = nil                       (pure/deterministic unless seeded)
//   • domainFn  = constant DefaultDomainSize

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> NodeID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Domain-size generator used by Domains.
	domainFn DomainFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		domainFn: DefaultDomainFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
