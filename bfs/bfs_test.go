package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpgm/bfs"
	"github.com/katalvlaran/lvpgm/core"
)

// graphOf builds nodes 0..n-1 with the given undirected edges.
func graphOf(n int, edges ...[2]core.NodeID) *core.UndiGraph {
	g := core.NewUndiGraph()
	for i := 0; i < n; i++ {
		g.EnsureNode(core.NodeID(i))
	}
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1])
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	t.Parallel()

	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := graphOf(1)
	_, err = bfs.BFS(g, 9)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Layering(t *testing.T) {
	t.Parallel()

	// 4-cycle: 0-1-2-3-0
	g := graphOf(4, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2}, [2]core.NodeID{2, 3}, [2]core.NodeID{3, 0})

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 3, 2}, res.Order)
	require.Equal(t, 2, res.Depth[2])
	require.Equal(t, core.NodeID(1), res.Parent[2], "smallest id discovers first")
	_, hasParent := res.Parent[0]
	require.False(t, hasParent)
}

func TestBFS_DepthAndFilter(t *testing.T) {
	t.Parallel()

	g := graphOf(5, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2}, [2]core.NodeID{2, 3}, [2]core.NodeID{0, 4})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 1, 4}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, to core.NodeID) bool { return to != 1 }))
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{0, 4}, res.Order)
}

func TestBFS_VisitAndCancel(t *testing.T) {
	t.Parallel()

	g := graphOf(3, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2})
	var seen []core.NodeID
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id core.NodeID, depth int) error {
		seen = append(seen, id)
		require.Equal(t, int(id), depth)
		if id == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, []core.NodeID{0, 1, 2}, seen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestShortestPath(t *testing.T) {
	t.Parallel()

	// Two branches 0-1-2 and 0-3-4, plus isolated 5.
	g := graphOf(6, [2]core.NodeID{0, 1}, [2]core.NodeID{1, 2}, [2]core.NodeID{0, 3}, [2]core.NodeID{3, 4})

	p, err := bfs.ShortestPath(g, 2, 4)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{2, 1, 0, 3, 4}, p)

	p, err = bfs.ShortestPath(g, 3, 3)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{3}, p)

	_, err = bfs.ShortestPath(g, 0, 5)
	require.ErrorIs(t, err, bfs.ErrUnreachable)
}
