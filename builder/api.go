// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs and domains.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.UndiGraph, cfg builderConfig) error

// BuildGraph creates a new core.UndiGraph with graph options gopts, resolves
// the builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.UndiGraph, error) {
	g := core.NewUndiGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildFixture is BuildGraph followed by Domains with the same options: the
// pair a triangulation needs.
func BuildFixture(bopts []BuilderOption, cons ...Constructor) (*core.UndiGraph, core.DomainSizes, error) {
	g, err := BuildGraph(nil, bopts, cons...)
	if err != nil {
		return nil, nil, err
	}

	return g, Domains(g, bopts...), nil
}

// Domains assigns a domain size to every node of g using the configured
// DomainFn, visiting nodes in ascending id order so that stochastic
// generators are reproducible per seed.
//
// Complexity: O(V log V).
func Domains(g *core.UndiGraph, opts ...BuilderOption) core.DomainSizes {
	cfg := newBuilderConfig(opts...)
	nodes := g.Nodes()
	out := make(core.DomainSizes, len(nodes))
	for _, n := range nodes {
		out[n] = cfg.domainFn(cfg.rng)
	}

	return out
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add nodes via cfg.idFn.
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.
//
// Cycle(n)                  C_n, n ≥ 3.
// Path(n)                   P_n, n ≥ 2.
// Star(n)                   hub idFn(0) plus n-1 leaves, n ≥ 2.
// Wheel(n)                  C_{n-1} plus hub idFn(n-1), n ≥ 4.
// Complete(n)               K_n, n ≥ 1.
// CompleteBipartite(n1,n2)  K_{n1,n2}, left side first.
// Grid(rows,cols)           4-neighbourhood grid, row-major ids.
// DisjointEdges(k)          k isolated edges {2i,2i+1}.
// RandomSparse(n,p)         Erdős–Rényi G(n,p); needs an RNG for 0<p<1.
// RandomRegular(n,d)        d-regular simple graph via stub matching.
//
// RandomDAG(n, p, opts...) builds a random core.DiGraph (arcs only from lower
// to higher index) for Bayesian-network fixtures; see impl_dag.go.
