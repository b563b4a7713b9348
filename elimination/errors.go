// SPDX-License-Identifier: MIT
// Package elimination: sentinel error set.
//
// Messages are prefixed with "elimination: ". Call sites wrap them with
// github.com/pkg/errors; callers branch with errors.Is.

package elimination

import "github.com/pkg/errors"

var (
	// ErrGraphNotSet indicates a query on a strategy with no bound graph.
	ErrGraphNotSet = errors.New("elimination: no graph bound")

	// ErrEmptyGraph indicates NextNodeToEliminate on a graph with no node left.
	ErrEmptyGraph = errors.New("elimination: graph is empty")

	// ErrUnknownNode indicates a node (or an order entry) absent from the bound graph.
	ErrUnknownNode = errors.New("elimination: unknown node")

	// ErrIncompleteOrder indicates an order that is not a permutation (or a
	// partial order that is not a partition) of the bound graph's nodes.
	ErrIncompleteOrder = errors.New("elimination: order does not cover the graph")

	// ErrUnknownHeuristic indicates ParseHeuristic was given an unknown name.
	ErrUnknownHeuristic = errors.New("elimination: unknown heuristic")
)
