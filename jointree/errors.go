// SPDX-License-Identifier: MIT
// Package jointree: sentinel error set.
//
// Messages are prefixed with "jointree: ". Call sites wrap them with
// github.com/pkg/errors; callers branch with errors.Is.

package jointree

import "github.com/pkg/errors"

var (
	// ErrUnknownClique indicates a clique id absent from the clique graph.
	ErrUnknownClique = errors.New("jointree: unknown clique")

	// ErrDuplicateClique indicates AddCliqueWithID was given an id in use.
	ErrDuplicateClique = errors.New("jointree: clique already exists")

	// ErrOperationNotAllowed indicates an edit the clique graph cannot accept
	// (edge between unknown cliques, self edge, missing edge).
	ErrOperationNotAllowed = errors.New("jointree: operation not allowed")

	// ErrNoContainerClique indicates no clique contains the requested nodes.
	ErrNoContainerClique = errors.New("jointree: no clique contains the nodes")

	// ErrUnknownNode indicates a node that was never reported as eliminated.
	ErrUnknownNode = errors.New("jointree: unknown node")

	// ErrBadClique indicates an eliminated clique that does not contain its
	// node, or a node reported twice.
	ErrBadClique = errors.New("jointree: inconsistent eliminated clique")

	// ErrNotJoinTree indicates a clique graph with a cycle or a separator
	// that differs from the intersection of its endpoint cliques.
	ErrNotJoinTree = errors.New("jointree: not a join tree")

	// ErrRunningIntersection indicates a node whose cliques are not connected.
	ErrRunningIntersection = errors.New("jointree: running intersection violated")

	// ErrNotCovering indicates a node or edge of the original graph that no
	// clique contains.
	ErrNotCovering = errors.New("jointree: graph not covered")
)
