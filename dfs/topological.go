// SPDX-License-Identifier: MIT
//
// File: topological.go
// Role: Topological order of a core.DiGraph, used to sequence operators.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// colour marks progress of a node during TopologicalSort.
type colour uint8

const (
	white colour = iota // unseen
	grey                // on the stack
	black               // finished
)

// TopologicalSort returns the nodes of g so that every arc u→v has u
// before v. It is the reverse finishing order of a depth-first walk that
// starts from nodes and children in ascending id order, hence
// deterministic. Only WithContext is honoured.
//
// Errors: ErrGraphNil, ErrCycleDetected naming the arc that closes the
// cycle, or the context error.
func TopologicalSort(g *core.DiGraph, opts ...Option) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := newOptions(opts)

	nodes := g.Nodes()
	state := make(map[core.NodeID]colour, len(nodes))
	order := make([]core.NodeID, 0, len(nodes))
	var stack []frame
	push := func(id core.NodeID) error {
		children, err := g.Children(id)
		if err != nil {
			return fmt.Errorf("dfs: children of %d: %w", id, err)
		}
		state[id] = grey
		stack = append(stack, frame{id: id, nbrs: children})

		return nil
	}

	for _, root := range nodes {
		if state[root] != white {
			continue
		}
		if err := push(root); err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			if err := o.ctx.Err(); err != nil {
				return nil, err
			}
			top := &stack[len(stack)-1]
			if top.next == len(top.nbrs) {
				state[top.id] = black
				order = append(order, top.id)
				stack = stack[:len(stack)-1]
				continue
			}
			c := top.nbrs[top.next]
			top.next++
			switch state[c] {
			case grey:
				return nil, fmt.Errorf("dfs: arc %d→%d: %w", top.id, c, ErrCycleDetected)
			case white:
				if err := push(c); err != nil {
					return nil, err
				}
			}
		}
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
