// SPDX-License-Identifier: MIT
//
// File: ops.go
// Role: Pointwise combination operators and projection reductions.

package tensor

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// CombineOp is a pointwise binary operator.
type CombineOp int

const (
	Mul CombineOp = iota
	Add
	Max
	Min
	Sub
	Div // x/0 is 0
)

var combineNames = [...]string{"mul", "add", "max", "min", "sub", "div"}

// String returns the lower-case name.
func (op CombineOp) String() string {
	if op < 0 || int(op) >= len(combineNames) {
		return "unknown"
	}

	return combineNames[op]
}

// Valid reports whether op is one of the declared operators.
func (op CombineOp) Valid() bool { return op >= 0 && int(op) < len(combineNames) }

// Apply returns op(a, b). It panics on an invalid op; Combine and the
// schedule reject those first.
func (op CombineOp) Apply(a, b float64) float64 {
	switch op {
	case Mul:
		return a * b
	case Add:
		return a + b
	case Max:
		return math.Max(a, b)
	case Min:
		return math.Min(a, b)
	case Sub:
		return a - b
	case Div:
		if b == 0 {
			return 0
		}
		return a / b
	}
	panic("tensor: unknown CombineOp " + op.String())
}

// ParseCombineOp maps a name back to its operator.
func ParseCombineOp(s string) (CombineOp, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range combineNames {
		if n == s {
			return CombineOp(i), nil
		}
	}

	return 0, errors.Wrapf(ErrBadParameter, "unknown combine op %q", s)
}

// ProjectOp is an associative, commutative reduction.
type ProjectOp int

const (
	Sum ProjectOp = iota
	MaxReduce
	MinReduce
	ProductReduce
)

var projectNames = [...]string{"sum", "max", "min", "product"}

// String returns the lower-case name.
func (op ProjectOp) String() string {
	if op < 0 || int(op) >= len(projectNames) {
		return "unknown"
	}

	return projectNames[op]
}

// Valid reports whether op is one of the declared reductions.
func (op ProjectOp) Valid() bool { return op >= 0 && int(op) < len(projectNames) }

// Identity returns the neutral element of the reduction. It panics on an
// invalid op.
func (op ProjectOp) Identity() float64 {
	switch op {
	case Sum:
		return 0
	case MaxReduce:
		return math.Inf(-1)
	case MinReduce:
		return math.Inf(1)
	case ProductReduce:
		return 1
	}
	panic("tensor: unknown ProjectOp " + op.String())
}

// Reduce folds v into acc.
func (op ProjectOp) Reduce(acc, v float64) float64 {
	switch op {
	case Sum:
		return acc + v
	case MaxReduce:
		return math.Max(acc, v)
	case MinReduce:
		return math.Min(acc, v)
	case ProductReduce:
		return acc * v
	}
	panic("tensor: unknown ProjectOp " + op.String())
}

// ParseProjectOp maps a name back to its reduction.
func ParseProjectOp(s string) (ProjectOp, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range projectNames {
		if n == s {
			return ProjectOp(i), nil
		}
	}

	return 0, errors.Wrapf(ErrBadParameter, "unknown project op %q", s)
}
