// SPDX-License-Identifier: MIT
//
// File: state.go
// Role: Lifecycle states of a Triangulation.
//
//	Uninitialized --SetGraph--> GraphSet --Triangulate--> Triangulating --> Triangulated
//	      ^                        ^                                           |
//	      +--------Clear-----------+-----------SetGraph / SetOrder ------------+

package triangulation

// State is the lifecycle position of a Triangulation.
type State uint8

const (
	// Uninitialized: no graph bound.
	Uninitialized State = iota
	// GraphSet: a graph is bound; nothing derived is computed.
	GraphSet
	// Triangulating: the elimination loop is running.
	Triangulating
	// Triangulated: every derived structure may be read.
	Triangulated
)

var stateNames = [...]string{
	Uninitialized: "uninitialized",
	GraphSet:      "graph-set",
	Triangulating: "triangulating",
	Triangulated:  "triangulated",
}

// String returns the lower-case name of s.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "unknown"
}

// Kind distinguishes the three triangulation flavours.
type Kind uint8

const (
	// Static chooses the order with a heuristic elimination strategy.
	Static Kind = iota
	// Ordered replays a caller-supplied total order.
	Ordered
	// PartialOrdered follows caller-supplied levels.
	PartialOrdered
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Ordered:
		return "ordered"
	case PartialOrdered:
		return "partial-ordered"
	default:
		return "unknown"
	}
}
