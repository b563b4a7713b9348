// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options and sentinel errors of the breadth-first walker.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the source node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation reports an invalid option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a node outside the explored layer set.
	ErrUnreachable = errors.New("bfs: destination not reached")
)

// Option tunes a single BFS call.
type Option func(*options)

type options struct {
	ctx      context.Context
	maxDepth int // 0 means unlimited
	follow   func(from, to core.NodeID) bool
	visit    func(id core.NodeID, depth int) error
	err      error
}

func newOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxDepth bounds the number of edges between the source and any
// visited node. Zero removes the bound; a negative value is rejected.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative max depth %d", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithFilterNeighbor restricts the walk to edges for which fn(from, to)
// is true. Junction-tree code uses it to stay inside the cliques that
// hold a given variable.
func WithFilterNeighbor(fn func(from, to core.NodeID) bool) Option {
	return func(o *options) { o.follow = fn }
}

// WithOnVisit calls fn for every node in visit order; a non-nil error
// aborts the walk and is returned wrapped.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *options) { o.visit = fn }
}
