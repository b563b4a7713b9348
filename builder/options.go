// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// options.go: BuilderOption values shared by graph constructors and
// Domains. Option constructors panic on nil arguments; graph constructors
// report errors instead. Random fixtures are reproducible only through
// WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption adjusts the configuration one BuildGraph, BuildFixture or
// Domains call runs with.
type BuilderOption func(*builderConfig)

// WithIDScheme maps a constructor's local index to the NodeID it emits.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand hands stochastic constructors and DomainFns a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed gives every resolution of the options a fresh RNG with this seed,
// so a graph and its domains replay identically.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDomainFn sets how Domains draws variable cardinalities.
func WithDomainFn(fn DomainFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDomainFn(nil)")
	}
	return func(c *builderConfig) {
		c.domainFn = fn
	}
}
