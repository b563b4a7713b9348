// SPDX-License-Identifier: MIT
//
// File: dense.go
// Role: Dense table, one float64 per joint assignment in a flat row-major
// slice.

package tensor

import "github.com/pkg/errors"

// Dense stores every entry of its joint domain.
type Dense struct {
	scope []*Variable
	data  []float64 // len == product of domain sizes
}

var _ MutableTable = (*Dense)(nil)

// NewDense returns a zero-filled table over scope.
// Stage 1 (Validate): no nil or repeated variable.
// Stage 2 (Prepare): allocate the flat slice.
// Complexity: O(size) time and memory.
func NewDense(scope ...*Variable) (*Dense, error) {
	if err := checkScope(scope); err != nil {
		return nil, errors.WithMessage(err, "NewDense")
	}

	return &Dense{scope: cloneScope(scope), data: make([]float64, sizeOf(scope))}, nil
}

// NewDenseFrom returns a table over scope holding a copy of values.
//
// Errors:
//   - ErrSizeMismatch: len(values) differs from the joint domain size.
func NewDenseFrom(values []float64, scope ...*Variable) (*Dense, error) {
	d, err := NewDense(scope...)
	if err != nil {
		return nil, err
	}
	if len(values) != len(d.data) {
		return nil, errors.Wrapf(ErrSizeMismatch, "NewDenseFrom: %d values for size %d", len(values), len(d.data))
	}
	copy(d.data, values)

	return d, nil
}

// Scope returns the ordered variables.
func (d *Dense) Scope() []*Variable { return d.scope }

// Size returns the number of entries.
func (d *Dense) Size() int { return len(d.data) }

// At returns the value at offset.
// Complexity: O(1).
func (d *Dense) At(offset int) (float64, error) {
	if err := checkOffset("Dense.At", offset, len(d.data)); err != nil {
		return 0, err
	}

	return d.data[offset], nil
}

// Get returns the value at inst.
// Complexity: O(|scope|).
func (d *Dense) Get(inst *Instantiation) (float64, error) { return getVia(d, inst) }

// SetAt writes v at offset.
func (d *Dense) SetAt(offset int, v float64) error {
	if err := checkOffset("Dense.SetAt", offset, len(d.data)); err != nil {
		return err
	}
	d.data[offset] = v

	return nil
}

// Set writes v at inst.
func (d *Dense) Set(inst *Instantiation, v float64) error {
	off, err := inst.Offset(d.scope)
	if err != nil {
		return err
	}
	d.data[off] = v

	return nil
}

// Fill writes v everywhere.
func (d *Dense) Fill(v float64) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Values returns a copy of the row-major values.
func (d *Dense) Values() []float64 {
	out := make([]float64, len(d.data))
	copy(out, d.data)

	return out
}

// Clone returns a deep copy sharing the variables.
func (d *Dense) Clone() *Dense {
	return &Dense{scope: cloneScope(d.scope), data: d.Values()}
}
