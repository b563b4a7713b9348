// Package bfs walks a core.UndiGraph layer by layer.
//
// Junction-tree code uses it on clique graphs: ShortestPath yields the
// unique clique path between two cliques of a tree, which is what the
// running-intersection check walks along. BFS itself exposes the full
// breadth-first tree (Order, Depth, Parent) and accepts a context, a depth
// bound, an edge filter and a visit callback.
//
// Neighbours are expanded in ascending id order, so results depend only on
// the topology. Time O(V+E), memory O(V).
package bfs
