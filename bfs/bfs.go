// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Layered walk over core.UndiGraph and path reconstruction.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// BFSResult is the breadth-first tree rooted at the source.
type BFSResult struct {
	// Order lists nodes by non-decreasing depth, ties by discovery.
	Order []core.NodeID
	// Depth is the edge count from the source.
	Depth map[core.NodeID]int
	// Parent links every non-source node to the node that discovered it.
	Parent map[core.NodeID]core.NodeID
}

// PathTo returns the tree path source..dest.
func (r *BFSResult) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %d: %w", dest, ErrUnreachable)
	}
	path := make([]core.NodeID, d+1)
	for i, cur := d, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// BFS explores g from start. Neighbours come out of core.UndiGraph sorted,
// so Order and Parent are reproducible for a given topology.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// the context error, or a wrapped visit-callback error.
func BFS(g *core.UndiGraph, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := newOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	if !g.ExistsNode(start) {
		return nil, ErrStartVertexNotFound
	}

	res := &BFSResult{
		Order:  make([]core.NodeID, 0, g.Size()),
		Depth:  map[core.NodeID]int{start: 0},
		Parent: make(map[core.NodeID]core.NodeID),
	}
	// Order doubles as the queue: res.Order[head:] is the frontier.
	res.Order = append(res.Order, start)
	for head := 0; head < len(res.Order); head++ {
		if err := o.ctx.Err(); err != nil {
			return res, err
		}
		cur := res.Order[head]
		depth := res.Depth[cur]
		if o.visit != nil {
			if err := o.visit(cur, depth); err != nil {
				return res, fmt.Errorf("bfs: visit %d: %w", cur, err)
			}
		}
		if o.maxDepth > 0 && depth == o.maxDepth {
			continue
		}
		nbrs, err := g.Neighbours(cur)
		if err != nil {
			return res, fmt.Errorf("bfs: neighbours of %d: %w", cur, err)
		}
		for _, nb := range nbrs {
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			if o.follow != nil && !o.follow(cur, nb) {
				continue
			}
			res.Depth[nb] = depth + 1
			res.Parent[nb] = cur
			res.Order = append(res.Order, nb)
		}
	}

	return res, nil
}

// ShortestPath returns a fewest-edges path src..dst, both included. On a
// junction tree it is the unique clique path between two cliques.
func ShortestPath(g *core.UndiGraph, src, dst core.NodeID) ([]core.NodeID, error) {
	res, err := BFS(g, src)
	if err != nil {
		return nil, err
	}

	return res.PathTo(dst)
}
