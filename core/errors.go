// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
//
// Every message is prefixed with "core: ". Methods return these sentinels
// wrapped with call context via fmt.Errorf("...: %w"); callers branch with
// errors.Is.

package core

import "errors"

var (
	// ErrNodeNotFound indicates an operation referenced a node absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNodeWithID was given an id already in use.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrEdgeNotFound indicates an operation referenced a missing edge or arc.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge or arc from a node to itself was requested.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrGraphNil indicates a nil graph pointer was passed to a helper.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrMissingDomainSize indicates a node without an entry in a DomainSizes map.
	ErrMissingDomainSize = errors.New("core: missing domain size")

	// ErrBadDomainSize indicates a non-positive domain size.
	ErrBadDomainSize = errors.New("core: domain size must be > 0")
)
