// SPDX-License-Identifier: MIT
// Package: lvpgm/builder
//
// id_fn.go: node ID schemes for graph constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpgm/core"
)

// IDFn generates a node identifier from its zero-based index.
// It must be a pure, deterministic, injective function.
type IDFn func(idx int) core.NodeID

// DefaultIDFn maps idx to NodeID(idx).
// Complexity: O(1). Never panics for idx ≥ 0.
func DefaultIDFn(idx int) core.NodeID {
	return core.NodeID(idx)
}

// OffsetIDFn returns an IDFn mapping idx to base+idx. Useful to compose
// several constructors into disjoint id ranges within one graph.
func OffsetIDFn(base core.NodeID) IDFn {
	return func(idx int) core.NodeID {
		return base + core.NodeID(idx)
	}
}

// StrideIDFn returns an IDFn mapping idx to base+idx*stride, leaving gaps in
// the id space. Panics if stride < 1.
func StrideIDFn(base core.NodeID, stride int) IDFn {
	if stride < 1 {
		panic(fmt.Sprintf("StrideIDFn: stride must be ≥ 1, got %d", stride))
	}
	return func(idx int) core.NodeID {
		return base + core.NodeID(idx*stride)
	}
}

// WithIDOffset sets the ID scheme to OffsetIDFn(base).
func WithIDOffset(base core.NodeID) BuilderOption {
	return WithIDScheme(OffsetIDFn(base))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}
