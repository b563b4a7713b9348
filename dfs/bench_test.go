package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/dfs"
)

// BenchmarkDFS_Chain10000 walks a 10,000-node path.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkTopologicalSort_Chain orders a 10,000-node chain of operators.
func BenchmarkTopologicalSort_Chain(b *testing.B) {
	g := core.NewDiGraph(core.WithCapacity(10000))
	for i := 0; i < 10000; i++ {
		_ = g.AddNodeWithID(core.NodeID(i))
		if i > 0 {
			_ = g.AddArc(core.NodeID(i-1), core.NodeID(i))
		}
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(g)
	}
}
