// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Options and sentinel errors shared by DFS and TopologicalSort.

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvpgm/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected is returned by TopologicalSort on a back-arc.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option tunes DFS or TopologicalSort. Options that make no sense for a
// call (a depth bound on a topological sort) are ignored.
type Option func(*options)

type options struct {
	ctx      context.Context
	maxDepth int // < 0 means unlimited
	keep     func(core.NodeID) bool
	forest   bool
}

func newOptions(opts []Option) options {
	o := options{ctx: context.Background(), maxDepth: -1}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext aborts the walk with ctx.Err() once ctx is done. A nil ctx
// is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth visits nodes at most limit edges away from the root;
// 0 visits the root alone.
func WithMaxDepth(limit int) Option {
	return func(o *options) { o.maxDepth = limit }
}

// WithFilterNeighbor skips neighbours for which keep returns false.
func WithFilterNeighbor(keep func(id core.NodeID) bool) Option {
	return func(o *options) { o.keep = keep }
}

// WithFullTraversal restarts from every unvisited node in ascending id
// order, covering all components.
func WithFullTraversal() Option {
	return func(o *options) { o.forest = true }
}
