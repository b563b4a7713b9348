// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// domain_fn.go: domain-size distributions for Domains.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultDomainSize is the domain size assigned when no DomainFn is set.
const DefaultDomainSize = 2

// DomainFn produces a positive domain size given an optional RNG. It must be
// deterministic for a given RNG state.
type DomainFn func(rng *rand.Rand) int

// DefaultDomainFn always returns DefaultDomainSize (binary variables).
func DefaultDomainFn(_ *rand.Rand) int {
	return DefaultDomainSize
}

// ConstantDomainFn returns a DomainFn that always yields k. Panics if k < 1.
func ConstantDomainFn(k int) DomainFn {
	if k < 1 {
		panic(fmt.Sprintf("ConstantDomainFn: k must be ≥ 1, got %d", k))
	}
	return func(_ *rand.Rand) int {
		return k
	}
}

// UniformDomainFn returns a DomainFn sampling uniformly in [lo, hi].
// Panics if lo < 1 or hi < lo. With a nil rng it yields lo.
func UniformDomainFn(lo, hi int) DomainFn {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("UniformDomainFn: require 1 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Intn(hi-lo+1)
	}
}

// WithConstantDomain sets every domain size to k.
func WithConstantDomain(k int) BuilderOption {
	return WithDomainFn(ConstantDomainFn(k))
}

// WithUniformDomain draws domain sizes uniformly in [lo,hi].
func WithUniformDomain(lo, hi int) BuilderOption {
	return WithDomainFn(UniformDomainFn(lo, hi))
}
