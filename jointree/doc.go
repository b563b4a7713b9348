// SPDX-License-Identifier: MIT

// Package jointree holds clique graphs and the strategies that assemble a
// junction tree while a triangulation eliminates nodes.
//
// CliqueGraph is an undirected graph over clique ids where every clique
// carries its node set and every edge its separator (the intersection of the
// endpoint cliques). It offers the verification used by tests and callers:
//
//   - IsJoinTree: the graph is a forest with consistent separators.
//   - HasRunningIntersection: the cliques holding any node are connected.
//   - CoversGraph: every node and edge of the original graph sits in a clique.
//   - VerifyJunctionTree: all of the above, reporting the first violation.
//
// Incremental is the default Strategy. It receives each eliminated clique,
// links it to the pending cliques whose separator contains the eliminated
// node, and absorbs non-maximal cliques into their child. Clique ids are the
// ids of the nodes whose elimination created them. A disconnected graph
// yields a forest unless WithSingleTree is set.
//
// FromCliques builds a join tree from an unordered list of cliques by a
// maximum-weight spanning forest.
package jointree
