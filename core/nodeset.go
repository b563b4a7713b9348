// SPDX-License-Identifier: MIT
//
// File: nodeset.go
// Role: NodeSet, the hash set of NodeID used for cliques, separators and
// neighbourhoods.
//
// Determinism:
//   - Sorted() is the stable enumeration surface; map iteration is never
//     exposed to callers that produce ordered output.

package core

import (
	"slices"
	"strconv"
	"strings"
)

// NodeSet is a set of NodeID with O(1) membership.
// The zero value (nil) is a valid empty set for read-only operations.
type NodeSet map[NodeID]struct{}

// NewNodeSet builds a set holding ids.
func NewNodeSet(ids ...NodeID) NodeSet {
	s := make(NodeSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Insert adds id to the set.
func (s NodeSet) Insert(id NodeID) { s[id] = struct{}{} }

// Erase removes id from the set (no-op when absent).
func (s NodeSet) Erase(id NodeID) { delete(s, id) }

// Contains reports whether id is in the set.
func (s NodeSet) Contains(id NodeID) bool {
	_, ok := s[id]

	return ok
}

// Size returns the cardinality of the set.
func (s NodeSet) Size() int { return len(s) }

// Sorted returns the members in ascending order.
// Complexity: O(n log n).
func (s NodeSet) Sorted() []NodeID {
	out := make([]NodeID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Clone returns an independent copy.
func (s NodeSet) Clone() NodeSet {
	out := make(NodeSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// IsSubsetOf reports whether every member of s belongs to other.
func (s NodeSet) IsSubsetOf(other NodeSet) bool {
	if len(s) > len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}

	return true
}

// Equal reports whether both sets hold the same members.
func (s NodeSet) Equal(other NodeSet) bool {
	return len(s) == len(other) && s.IsSubsetOf(other)
}

// Intersection returns s ∩ other as a new set.
func (s NodeSet) Intersection(other NodeSet) NodeSet {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	out := make(NodeSet, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// Union returns s ∪ other as a new set.
func (s NodeSet) Union(other NodeSet) NodeSet {
	out := make(NodeSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}

	return out
}

// Minus returns s \ other as a new set.
func (s NodeSet) Minus(other NodeSet) NodeSet {
	out := make(NodeSet, len(s))
	for id := range s {
		if _, ok := other[id]; !ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// String renders the set as "{1,2,3}" in ascending order.
func (s NodeSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.Sorted() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	b.WriteByte('}')

	return b.String()
}
