// SPDX-License-Identifier: MIT
//
// File: instantiation.go
// Role: Assignment of values to an ordered list of variables, with odometer
// iteration and mixed-radix offsets.

package tensor

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

// Instantiation assigns one value to each of its variables. Iteration with
// SetFirst/Inc/End walks the Cartesian product, last variable fastest.
type Instantiation struct {
	vars []*Variable
	vals []int
	pos  map[*Variable]int
	end  bool
}

// NewInstantiation returns an instantiation over vars, every value 0.
// Repeated variables are kept once.
func NewInstantiation(vars ...*Variable) *Instantiation {
	in := &Instantiation{pos: make(map[*Variable]int, len(vars))}
	for _, v := range vars {
		_ = in.Add(v)
	}

	return in
}

// Add appends v with value 0.
func (in *Instantiation) Add(v *Variable) error {
	if v == nil {
		return ErrNilVariable
	}
	if _, ok := in.pos[v]; ok {
		return errors.Wrapf(ErrDuplicateVariable, "Instantiation.Add(%s)", v)
	}
	in.pos[v] = len(in.vars)
	in.vars = append(in.vars, v)
	in.vals = append(in.vals, 0)

	return nil
}

// Chg sets the value of v.
func (in *Instantiation) Chg(v *Variable, val int) error {
	i, ok := in.pos[v]
	if !ok {
		return errors.Wrapf(ErrVariableNotInScope, "Instantiation.Chg(%s)", v)
	}
	if val < 0 || val >= v.DomainSize() {
		return errors.Wrapf(ErrValueOutOfRange, "Instantiation.Chg(%s, %d)", v, val)
	}
	in.vals[i] = val

	return nil
}

// Val returns the value of v.
func (in *Instantiation) Val(v *Variable) (int, error) {
	i, ok := in.pos[v]
	if !ok {
		return 0, errors.Wrapf(ErrVariableNotInScope, "Instantiation.Val(%s)", v)
	}

	return in.vals[i], nil
}

// Contains reports whether v is part of the instantiation.
func (in *Instantiation) Contains(v *Variable) bool {
	_, ok := in.pos[v]
	return ok
}

// Vars returns the variables in order.
func (in *Instantiation) Vars() []*Variable { return cloneScope(in.vars) }

// SetFirst resets every value to 0 and restarts iteration.
func (in *Instantiation) SetFirst() {
	for i := range in.vals {
		in.vals[i] = 0
	}
	in.end = false
}

// Inc moves to the next assignment, last variable fastest. After the last
// assignment End reports true and the values wrap to all zeros.
func (in *Instantiation) Inc() {
	for i := len(in.vars) - 1; i >= 0; i-- {
		in.vals[i]++
		if in.vals[i] < in.vars[i].DomainSize() {
			return
		}
		in.vals[i] = 0
	}
	in.end = true
}

// End reports whether Inc has run past the last assignment.
func (in *Instantiation) End() bool { return in.end }

// Offset returns the row-major offset of this assignment within scope.
// Variables of the instantiation outside scope are ignored.
//
// Errors:
//   - ErrVariableNotInScope: a scope variable has no value here.
func (in *Instantiation) Offset(scope []*Variable) (int, error) {
	if len(scope) == 0 {
		return 0, nil
	}
	sub := make([]int, len(scope))
	for i, v := range scope {
		j, ok := in.pos[v]
		if !ok {
			return 0, errors.Wrapf(ErrVariableNotInScope, "Instantiation.Offset: missing %s", v)
		}
		sub[i] = in.vals[j]
	}

	return combin.IdxFor(sub, dimsOf(scope)), nil
}

// Clone returns an independent copy.
func (in *Instantiation) Clone() *Instantiation {
	out := &Instantiation{
		vars: cloneScope(in.vars),
		vals: make([]int, len(in.vals)),
		pos:  make(map[*Variable]int, len(in.pos)),
		end:  in.end,
	}
	copy(out.vals, in.vals)
	for v, i := range in.pos {
		out.pos[v] = i
	}

	return out
}

// decode writes the row-major subscript of offset within dims into sub.
func decode(offset int, dims, sub []int) {
	if len(dims) == 0 {
		return
	}
	combin.SubFor(sub, offset, dims)
}
