package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvpgm/bfs"
	"github.com/katalvlaran/lvpgm/core"
)

// BenchmarkBFS_Chain walks a path of N+1 nodes end to end.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewUndiGraph(core.WithCapacity(N + 1))
	g.EnsureNode(0)
	for i := 1; i <= N; i++ {
		g.EnsureNode(core.NodeID(i))
		_ = g.AddEdge(core.NodeID(i-1), core.NodeID(i))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
