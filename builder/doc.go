// Package builder provides deterministic “functional-options” fixture
// generators for undirected graphs, Bayesian-network DAGs and domain-size
// maps. Tests, benchmarks and the examples use it to produce triangulation
// inputs without hand-writing edge lists.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a core.UndiGraph and run constructors in order.
//     – BuildFixture(bopts, cons...): BuildGraph plus Domains.
//     – Domains(g, opts...): one domain size per node, ascending id order.
//   - Topologies (Constructor):
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid, DisjointEdges.
//     – RandomSparse (G(n,p)), RandomRegular (stub matching).
//   - Directed structures:
//     – RandomDAG(n, p, maxParents, opts...): arcs from lower to higher index only.
//   - Node-ID schemes (IDFn):
//     – DefaultIDFn, OffsetIDFn(base), StrideIDFn(base, stride).
//   - Domain-size distributions (DomainFn):
//     – DefaultDomainFn (binary), ConstantDomainFn(k), UniformDomainFn(lo,hi).
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed ⇒ identical graphs and domains.
//   - Composition: constructors use EnsureNode, so several constructors may
//     share node ids (e.g. two cycles glued on an id range via WithIDOffset).
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the method name.
package builder
