// SPDX-License-Identifier: MIT

// Package triangulation turns an undirected graph into a chordal one by
// eliminating its nodes one by one, and derives from the run everything an
// exact inference engine needs:
//
//   - the elimination order and the fill-in edges;
//   - the triangulated graph;
//   - the elimination tree (one clique per node);
//   - the junction tree, with the clique created by each node's elimination;
//   - the maximal prime subgraph tree.
//
// Three flavours share one type:
//
//	NewStatic(opts...)                 // heuristic order (MinWeight by default)
//	NewOrdered(order, opts...)         // caller-supplied total order
//	NewPartialOrdered(levels, opts...) // caller-supplied levels, heuristic inside a level
//
// Lifecycle:
//
// SetGraph copies the graph and checks the domain sizes at once. Nothing else
// is computed until an accessor is called; the first accessor runs the
// elimination, and the results stay cached until SetGraph, SetOrder,
// SetPartialOrder or Clear. State reports where the triangulation stands.
//
// Minimality:
//
// WithMinimality(true) removes redundant fill-ins (recursive thinning) and
// replays a perfect elimination order of the thinned graph, so that all
// derived structures describe the thinned triangulation. A Static run ends
// minimal. A PartialOrdered run drops a fill-in only if the thinner graph
// still has a perfect elimination order honouring the levels, and replays
// such an order; the result is minimal among triangulations that respect
// the levels fill-in by fill-in. An Ordered run keeps the caller's order
// and therefore every fill-in, since a total order fixes its triangulation.
//
// Disconnected graphs yield a junction forest unless WithSingleTree is set.
//
// Logging goes through zap at debug level (WithLogger; silent by default).
package triangulation
