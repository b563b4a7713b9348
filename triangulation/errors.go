// SPDX-License-Identifier: MIT
// Package triangulation: sentinel error set.
//
// Messages are prefixed with "triangulation: ". A domain map that misses a
// node is reported with core.ErrMissingDomainSize; errors of the underlying
// strategies (elimination.ErrIncompleteOrder, ...) are passed through
// wrapped, so errors.Is works across packages.

package triangulation

import "github.com/pkg/errors"

var (
	// ErrGraphNotSet indicates a triangulation request before SetGraph.
	ErrGraphNotSet = errors.New("triangulation: no graph set")

	// ErrUnknownNode indicates a node absent from the triangulated graph.
	ErrUnknownNode = errors.New("triangulation: unknown node")

	// ErrOperationNotAllowed indicates a call the triangulation kind does
	// not support (e.g. SetOrder on a static triangulation).
	ErrOperationNotAllowed = errors.New("triangulation: operation not allowed")
)
