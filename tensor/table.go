// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Table capability interfaces and the shared read helpers every
// variant relies on.

package tensor

import "github.com/pkg/errors"

// Table is the read side of a function from the joint domain of its scope to
// float64. Offsets are row-major over Scope (first variable outermost).
type Table interface {
	// Scope returns the ordered variables. Callers must not modify it.
	Scope() []*Variable
	// Size is the product of the scope's domain sizes (1 for an empty scope).
	Size() int
	// At returns the value at offset in [0, Size()).
	At(offset int) (float64, error)
	// Get returns the value at the scope projection of inst.
	Get(inst *Instantiation) (float64, error)
}

// MutableTable is a Table accepting writes.
type MutableTable interface {
	Table
	Set(inst *Instantiation, v float64) error
	SetAt(offset int, v float64) error
	Fill(v float64)
}

// checkOffset validates offset against size.
func checkOffset(method string, offset, size int) error {
	if offset < 0 || offset >= size {
		return errors.Wrapf(ErrValueOutOfRange, "%s(%d): size %d", method, offset, size)
	}

	return nil
}

// getVia resolves inst to an offset of t and reads it.
func getVia(t Table, inst *Instantiation) (float64, error) {
	off, err := inst.Offset(t.Scope())
	if err != nil {
		return 0, err
	}

	return t.At(off)
}

// valuesOf returns the row-major values of t. The Dense fast path shares the
// backing slice; callers must treat the result as read-only.
func valuesOf(t Table) []float64 {
	switch x := t.(type) {
	case *Dense:
		return x.data
	case *ReadOnly:
		return valuesOf(x.inner)
	}
	out := make([]float64, t.Size())
	for i := range out {
		out[i], _ = t.At(i)
	}

	return out
}
