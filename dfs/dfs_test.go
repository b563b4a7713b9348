package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/dfs"
)

// buildChain creates an undirected path 0-1-…-(n-1).
func buildChain(n int) *core.UndiGraph {
	g := core.NewUndiGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.EnsureNode(core.NodeID(i))
		if i > 0 {
			_ = g.AddEdge(core.NodeID(i-1), core.NodeID(i))
		}
	}

	return g
}

// buildBinaryTree creates a complete binary tree with 2^depth-1 nodes,
// numbered heap-style from 1.
func buildBinaryTree(depth int) *core.UndiGraph {
	g := core.NewUndiGraph()
	for i := 1; i < 1<<depth; i++ {
		g.EnsureNode(core.NodeID(i))
		if i > 1 {
			_ = g.AddEdge(core.NodeID(i/2), core.NodeID(i))
		}
	}

	return g
}

func TestDFS_InvalidInput(t *testing.T) {
	t.Parallel()

	res, err := dfs.DFS(nil, 0)
	require.Nil(t, res)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	res, err = dfs.DFS(core.NewUndiGraph(), 3)
	require.Nil(t, res)
	require.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_Isolated(t *testing.T) {
	t.Parallel()

	g := core.NewUndiGraph()
	g.EnsureNode(7)
	res, err := dfs.DFS(g, 7)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{7}, res.Order)
	require.True(t, res.Visited[7])
	require.Zero(t, res.Depth[7])
	require.Empty(t, res.Parent)
}

func TestDFS_ChainDepthParent(t *testing.T) {
	t.Parallel()

	res, err := dfs.DFS(buildChain(3), 0)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{2, 1, 0}, res.Order)
	require.Equal(t, core.NodeID(1), res.Parent[2])
	require.Equal(t, 2, res.Depth[2])
}

func TestDFS_DeepChain(t *testing.T) {
	t.Parallel()

	const n = 200000
	res, err := dfs.DFS(buildChain(n), 0)
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	require.Equal(t, n-1, res.Depth[n-1])
	require.Equal(t, core.NodeID(0), res.Order[n-1])
}

func TestDFS_Forest(t *testing.T) {
	t.Parallel()

	g := buildChain(2)
	g.EnsureNode(5)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{1, 0}, res.Order)
	require.False(t, res.Visited[5])

	full, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{1, 0, 5}, full.Order)
}

func TestDFS_DepthAndFilter(t *testing.T) {
	t.Parallel()

	res, err := dfs.DFS(buildChain(3), 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0}, res.Order)
	require.False(t, res.Visited[1])

	res, err = dfs.DFS(buildChain(4), 0, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{2, 1, 0}, res.Order)

	res, err = dfs.DFS(buildBinaryTree(2), 1, dfs.WithFilterNeighbor(func(id core.NodeID) bool {
		return id != 3
	}))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{2, 1}, res.Order)
	require.False(t, res.Visited[3])
}

func TestDFS_BinaryTree(t *testing.T) {
	t.Parallel()

	const depth = 4
	res, err := dfs.DFS(buildBinaryTree(depth), 1)
	require.NoError(t, err)
	require.Len(t, res.Visited, (1<<depth)-1)
	require.Equal(t, []core.NodeID{8, 9, 4, 10, 11, 5, 2}, res.Order[:7])
	require.Equal(t, core.NodeID(1), res.Order[len(res.Order)-1], "root finishes last")
}

func TestDFS_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.DFS(buildChain(100), 0, dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	require.Empty(t, res.Order)
}

func TestReachable(t *testing.T) {
	t.Parallel()

	g := buildChain(6)
	not4 := func(id core.NodeID) bool { return id != 4 }

	got, err := dfs.Reachable(g, 1, not4)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 2, 3}, got.Sorted())

	got, err = dfs.Reachable(g, 4, not4)
	require.NoError(t, err)
	require.Zero(t, got.Size())

	got, err = dfs.Reachable(g, 5, nil)
	require.NoError(t, err)
	require.Equal(t, 6, got.Size())
}
