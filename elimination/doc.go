// SPDX-License-Identifier: MIT

// Package elimination provides elimination sequence strategies: components
// that, bound to a mutable undirected graph, repeatedly pick the next node to
// eliminate and apply its fill-in (pairwise-connect the node's remaining
// neighbours, then remove the node).
//
// Strategies:
//
//   - Default: greedy heuristic (MinWeight, MinFill, MinDegree,
//     WeightedFill). Simplicial nodes go first unless disabled. Costs are
//     cached per node and only nodes within distance 2 of an eliminated
//     node are re-scored.
//   - Ordered: replays a caller-supplied total order.
//   - PartialOrdered: a sequence of levels; a node is eligible only once every
//     node of earlier levels is gone, and the Default heuristic chooses inside
//     the current level.
//
// Determinism:
//
// Costs within 1e-9 of each other are ties, broken by the smallest NodeID, so
// the produced sequence depends only on the graph and the domain sizes.
//
// A strategy does not own its graph: Eliminate mutates the graph passed to
// SetGraph. Strategies are not safe for concurrent use.
package elimination
