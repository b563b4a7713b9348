// SPDX-License-Identifier: MIT
//
// File: multidim.go
// Role: MultiDim, a schedule slot holding a table or only its scope.

package schedule

import (
	"github.com/katalvlaran/lvpgm/tensor"
)

// MultiDimID identifies a MultiDim within its schedule.
type MultiDimID uint64

// entryBytes is the static memory cost of one table entry.
const entryBytes = 8

// MultiDim is a table slot. It is abstract until its values exist: either
// inserted by the caller or computed by the operator producing it. A slot is
// written once and read-shared afterwards.
type MultiDim struct {
	id       MultiDimID
	scope    []*tensor.Variable
	table    tensor.Table
	produced bool // true when an operator of the schedule computes it
}

// ID returns the slot id.
func (m *MultiDim) ID() MultiDimID { return m.id }

// Scope returns the declared variables. Callers must not modify it.
func (m *MultiDim) Scope() []*tensor.Variable { return m.scope }

// Size returns the number of entries of the declared scope.
func (m *MultiDim) Size() int {
	n := 1
	for _, v := range m.scope {
		n *= v.DomainSize()
	}

	return n
}

// Bytes returns the static memory cost of the slot.
func (m *MultiDim) Bytes() int64 { return int64(m.Size()) * entryBytes }

// IsAbstract reports whether the slot has no values yet.
func (m *MultiDim) IsAbstract() bool { return m.table == nil }

// Table returns the values, or nil while abstract.
func (m *MultiDim) Table() tensor.Table { return m.table }
