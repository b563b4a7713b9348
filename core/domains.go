// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// DomainSizes maps every node of a graph to the number of values its
// random variable can take.
type DomainSizes map[NodeID]int

// Check verifies that every node of g has a positive domain size. Extra
// entries for nodes absent from g are tolerated.
//
// Errors:
//   - ErrMissingDomainSize: some node has no entry (smallest such id is reported).
//   - ErrBadDomainSize: some entry is <= 0.
func (d DomainSizes) Check(g *UndiGraph) error {
	for _, n := range g.Nodes() {
		sz, ok := d[n]
		if !ok {
			return fmt.Errorf("DomainSizes.Check: node %d: %w", n, ErrMissingDomainSize)
		}
		if sz <= 0 {
			return fmt.Errorf("DomainSizes.Check: node %d size %d: %w", n, sz, ErrBadDomainSize)
		}
	}

	return nil
}

// LogWeight returns log(Π d[n]) over the nodes of s. Nodes without an
// entry count as size 1.
func (d DomainSizes) LogWeight(s NodeSet) float64 {
	var w float64
	for _, n := range s.Sorted() {
		if sz, ok := d[n]; ok && sz > 0 {
			w += math.Log(float64(sz))
		}
	}

	return w
}

// Clone returns a copy of d.
func (d DomainSizes) Clone() DomainSizes {
	out := make(DomainSizes, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}
