// SPDX-License-Identifier: MIT
//
// File: dfs.go
// Role: Depth-first walk on core.UndiGraph and predicate-bounded reachability.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// DFSResult collects one depth-first forest.
type DFSResult struct {
	// Order is the finishing (post-order) sequence.
	Order []core.NodeID
	// Depth is the tree depth of each visited node.
	Depth map[core.NodeID]int
	// Parent links each non-root node to its discoverer.
	Parent map[core.NodeID]core.NodeID
	// Visited holds every node reached.
	Visited map[core.NodeID]bool
}

// frame is one open node on the explicit stack.
type frame struct {
	id   core.NodeID
	nbrs []core.NodeID
	next int
}

// DFS walks g from start, or from every node with WithFullTraversal.
// Neighbours are taken in ascending id order, so the result is a function
// of the topology alone. The walk uses an explicit stack; long chains do
// not grow the goroutine stack.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound (single-root mode), the
// context error, or a wrapped neighbour lookup failure. On error the
// partial result is returned with it.
func DFS(g *core.UndiGraph, start core.NodeID, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := newOptions(opts)
	if !o.forest && !g.ExistsNode(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.Size()
	res := &DFSResult{
		Order:   make([]core.NodeID, 0, n),
		Depth:   make(map[core.NodeID]int, n),
		Parent:  make(map[core.NodeID]core.NodeID, n),
		Visited: make(map[core.NodeID]bool, n),
	}
	roots := []core.NodeID{start}
	if o.forest {
		roots = g.Nodes()
	}
	for _, r := range roots {
		if res.Visited[r] {
			continue
		}
		if err := walk(g, r, &o, res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func walk(g *core.UndiGraph, root core.NodeID, o *options, res *DFSResult) error {
	open := func(id core.NodeID, depth int) (frame, error) {
		res.Visited[id] = true
		res.Depth[id] = depth
		if o.maxDepth >= 0 && depth >= o.maxDepth {
			return frame{id: id}, nil
		}
		nbrs, err := g.Neighbours(id)
		if err != nil {
			return frame{}, fmt.Errorf("dfs: neighbours of %d: %w", id, err)
		}

		return frame{id: id, nbrs: nbrs}, nil
	}

	if err := o.ctx.Err(); err != nil {
		return err
	}
	f, err := open(root, 0)
	if err != nil {
		return err
	}
	stack := []frame{f}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			res.Order = append(res.Order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}
		nb := top.nbrs[top.next]
		top.next++
		if res.Visited[nb] || (o.keep != nil && !o.keep(nb)) {
			continue
		}
		if err = o.ctx.Err(); err != nil {
			return err
		}
		res.Parent[nb] = top.id
		if f, err = open(nb, len(stack)); err != nil {
			return err
		}
		stack = append(stack, f)
	}

	return nil
}

// Reachable returns the nodes reachable from start through nodes accepted
// by keep; start must itself pass keep. A nil keep accepts all nodes.
// Junction-tree verification calls it to check that the cliques holding a
// variable are connected.
func Reachable(g *core.UndiGraph, start core.NodeID, keep func(core.NodeID) bool) (core.NodeSet, error) {
	if keep != nil && !keep(start) {
		return core.NewNodeSet(), nil
	}
	res, err := DFS(g, start, WithFilterNeighbor(keep))
	if err != nil {
		return nil, err
	}
	out := make(core.NodeSet, len(res.Visited))
	for id := range res.Visited {
		out.Insert(id)
	}

	return out, nil
}
