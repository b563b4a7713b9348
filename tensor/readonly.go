// SPDX-License-Identifier: MIT
//
// File: readonly.go
// Role: Read-only view over another table.

package tensor

// ReadOnly exposes the read side of a table and hides its writers. Changes
// made through the wrapped table stay visible.
type ReadOnly struct {
	inner Table
}

var _ Table = (*ReadOnly)(nil)

// NewReadOnly wraps t. Wrapping a ReadOnly returns it unchanged.
func NewReadOnly(t Table) *ReadOnly {
	if r, ok := t.(*ReadOnly); ok {
		return r
	}

	return &ReadOnly{inner: t}
}

func (r *ReadOnly) Scope() []*Variable                       { return r.inner.Scope() }
func (r *ReadOnly) Size() int                                { return r.inner.Size() }
func (r *ReadOnly) At(offset int) (float64, error)           { return r.inner.At(offset) }
func (r *ReadOnly) Get(inst *Instantiation) (float64, error) { return r.inner.Get(inst) }
