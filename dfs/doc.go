// Package dfs provides the depth-first walks the inference pipeline needs.
//
//   - DFS walks a core.UndiGraph from one root or, with WithFullTraversal,
//     the whole forest, reporting post-order, depths, parents and visited
//     nodes. A filter, a depth bound and a context narrow the walk.
//   - Reachable is DFS bounded by a node predicate; junction-tree checks
//     use it to test that the cliques holding a variable are connected.
//   - TopologicalSort orders a core.DiGraph of operators so every
//     dependency runs first, or reports ErrCycleDetected.
//
// All walks use an explicit stack and expand neighbours in ascending id
// order: results are deterministic and deep graphs are safe. Time O(V+E),
// memory O(V).
package dfs
