package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/dfs"
)

// ExampleDFS demonstrates a depth-first traversal (post-order) on a
// diamond-shaped undirected graph:
//
//	  0
//	 / \
//	1   2
//	 \ /
//	  3
//	 / \
//	4   5
func ExampleDFS() {
	g := core.NewUndiGraph()
	for i := core.NodeID(0); i < 6; i++ {
		g.EnsureNode(i)
	}
	for _, e := range [][2]core.NodeID{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)

	// Output:
	// [2 4 5 3 1 0]
}

// ExampleTopologicalSort orders a small DAG with a shared child.
func ExampleTopologicalSort() {
	g := core.NewDiGraph()
	for i := core.NodeID(0); i < 4; i++ {
		_ = g.AddNodeWithID(i)
	}
	_ = g.AddArc(0, 1)
	_ = g.AddArc(0, 2)
	_ = g.AddArc(1, 3)
	_ = g.AddArc(2, 3)

	order, _ := dfs.TopologicalSort(g)
	fmt.Println(order)

	// Output:
	// [0 2 1 3]
}
