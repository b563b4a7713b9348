// SPDX-License-Identifier: MIT
//
// File: tensor.go
// Role: Tensor, a value-semantics facade over any Table bundling the
// inference helpers (marginalisation, normalisation, reorganisation).

package tensor

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"
)

// Tensor wraps a Table. Operations returning a *Tensor allocate a new Dense;
// only FillWith writes through to the wrapped table.
type Tensor struct {
	t Table
}

// New wraps t.
func New(t Table) *Tensor { return &Tensor{t: t} }

// NewFrom builds a Dense tensor over scope holding values.
func NewFrom(values []float64, scope ...*Variable) (*Tensor, error) {
	d, err := NewDenseFrom(values, scope...)
	if err != nil {
		return nil, err
	}

	return New(d), nil
}

// Table returns the wrapped table.
func (x *Tensor) Table() Table { return x.t }

// Scope returns the wrapped table's variables.
func (x *Tensor) Scope() []*Variable { return x.t.Scope() }

// Size returns the number of entries.
func (x *Tensor) Size() int { return x.t.Size() }

// Get returns the value at inst.
func (x *Tensor) Get(inst *Instantiation) (float64, error) { return x.t.Get(inst) }

// Values returns a copy of the row-major values.
func (x *Tensor) Values() []float64 {
	v := valuesOf(x.t)
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// Combine returns op(x, y) over the union scope.
func (x *Tensor) Combine(y *Tensor, op CombineOp) (*Tensor, error) {
	d, err := Combine(x.t, y.t, op)
	if err != nil {
		return nil, err
	}

	return New(d), nil
}

// MargSumOut sums vars out.
func (x *Tensor) MargSumOut(vars ...*Variable) (*Tensor, error) {
	return x.project(vars, Sum)
}

// MargMaxOut maximises vars out.
func (x *Tensor) MargMaxOut(vars ...*Variable) (*Tensor, error) {
	return x.project(vars, MaxReduce)
}

// MargSumIn keeps only vars (in the tensor's order) and sums out the rest.
func (x *Tensor) MargSumIn(vars ...*Variable) (*Tensor, error) {
	pos := positionOf(x.t.Scope())
	keep := make(map[*Variable]struct{}, len(vars))
	for _, v := range vars {
		if _, ok := pos[v]; !ok {
			return nil, errors.Wrapf(ErrVariableNotInScope, "MargSumIn: %s", v)
		}
		keep[v] = struct{}{}
	}
	var out []*Variable
	for _, v := range x.t.Scope() {
		if _, ok := keep[v]; !ok {
			out = append(out, v)
		}
	}

	return x.project(out, Sum)
}

func (x *Tensor) project(vars []*Variable, op ProjectOp) (*Tensor, error) {
	d, err := Project(x.t, vars, op)
	if err != nil {
		return nil, err
	}

	return New(d), nil
}

// Sum returns the sum of all entries.
func (x *Tensor) Sum() float64 { return floats.Sum(valuesOf(x.t)) }

// Max returns the largest entry.
func (x *Tensor) Max() float64 { return floats.Max(valuesOf(x.t)) }

// Min returns the smallest entry.
func (x *Tensor) Min() float64 { return floats.Min(valuesOf(x.t)) }

// Scale returns f times x.
func (x *Tensor) Scale(f float64) *Tensor {
	d := &Dense{scope: cloneScope(x.t.Scope()), data: x.Values()}
	floats.Scale(f, d.data)

	return New(d)
}

// Normalize returns x divided by its sum.
//
// Errors:
//   - ErrZeroSum: every entry sums to 0.
func (x *Tensor) Normalize() (*Tensor, error) {
	s := x.Sum()
	if s == 0 {
		return nil, ErrZeroSum
	}

	return x.Scale(1 / s), nil
}

// Reorganize returns x with its variables in the order of scope.
//
// Errors:
//   - ErrSizeMismatch: scope is not a permutation of x's variables.
//
// Complexity: O(|x| * |scope|).
func (x *Tensor) Reorganize(scope ...*Variable) (*Tensor, error) {
	old := x.t.Scope()
	if err := samePermutation(old, scope); err != nil {
		return nil, errors.WithMessage(err, "Reorganize")
	}
	out, _ := NewDense(scope...)
	src := valuesOf(x.t)
	if len(scope) == 0 {
		copy(out.data, src)
		return New(out), nil
	}
	oldPos := positionOf(old)
	oldDims, newDims := dimsOf(old), dimsOf(scope)
	sub := make([]int, len(scope))
	oldSub := make([]int, len(old))
	for k := range out.data {
		combin.SubFor(sub, k, newDims)
		for i, v := range scope {
			oldSub[oldPos[v]] = sub[i]
		}
		out.data[k] = src[combin.IdxFor(oldSub, oldDims)]
	}

	return New(out), nil
}

// FillWith copies values into the wrapped table.
//
// Errors:
//   - ErrReadOnly: the wrapped table is not a MutableTable.
//   - ErrSizeMismatch: len(values) != Size().
func (x *Tensor) FillWith(values []float64) error {
	m, ok := x.t.(MutableTable)
	if !ok {
		return ErrReadOnly
	}
	if len(values) != m.Size() {
		return errors.Wrapf(ErrSizeMismatch, "FillWith: %d values for size %d", len(values), m.Size())
	}
	for i, v := range values {
		if err := m.SetAt(i, v); err != nil {
			return err
		}
	}

	return nil
}

// Equal reports whether y holds the same variables and, after aligning
// variable order, every pair of entries is within eps.
func (x *Tensor) Equal(y *Tensor, eps float64) bool {
	if y == nil {
		return false
	}
	yy, err := y.Reorganize(x.t.Scope()...)
	if err != nil {
		return false
	}

	return floats.EqualApprox(valuesOf(x.t), yy.t.(*Dense).data, eps)
}

// samePermutation checks that b holds exactly the variables of a.
func samePermutation(a, b []*Variable) error {
	if err := checkScope(b); err != nil {
		return err
	}
	if len(a) != len(b) {
		return errors.Wrapf(ErrSizeMismatch, "%d variables, want %d", len(b), len(a))
	}
	pos := positionOf(a)
	for _, v := range b {
		if _, ok := pos[v]; !ok {
			return errors.Wrapf(ErrVariableNotInScope, "%s", v)
		}
	}

	return nil
}
