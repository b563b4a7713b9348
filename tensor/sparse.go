// SPDX-License-Identifier: MIT
//
// File: sparse.go
// Role: Sparse table storing only the entries that differ from a default.

package tensor

import "github.com/pkg/errors"

// Sparse keeps a default value and a map of deviating offsets.
type Sparse struct {
	scope []*Variable
	size  int
	def   float64
	data  map[int]float64
}

var _ MutableTable = (*Sparse)(nil)

// NewSparse returns a table over scope whose every entry equals def.
func NewSparse(def float64, scope ...*Variable) (*Sparse, error) {
	if err := checkScope(scope); err != nil {
		return nil, errors.WithMessage(err, "NewSparse")
	}

	return &Sparse{
		scope: cloneScope(scope),
		size:  sizeOf(scope),
		def:   def,
		data:  make(map[int]float64),
	}, nil
}

// Scope returns the ordered variables.
func (s *Sparse) Scope() []*Variable { return s.scope }

// Size returns the number of logical entries.
func (s *Sparse) Size() int { return s.size }

// Default returns the value of every unstored entry.
func (s *Sparse) Default() float64 { return s.def }

// RealSize returns the number of stored deviations.
func (s *Sparse) RealSize() int { return len(s.data) }

// CompressionRatio returns 1 - RealSize/Size, the fraction of entries not
// stored.
func (s *Sparse) CompressionRatio() float64 {
	return 1 - float64(len(s.data))/float64(s.size)
}

// At returns the value at offset.
// Complexity: O(1) average.
func (s *Sparse) At(offset int) (float64, error) {
	if err := checkOffset("Sparse.At", offset, s.size); err != nil {
		return 0, err
	}
	if v, ok := s.data[offset]; ok {
		return v, nil
	}

	return s.def, nil
}

// Get returns the value at inst.
func (s *Sparse) Get(inst *Instantiation) (float64, error) { return getVia(s, inst) }

// SetAt writes v at offset. Writing the default drops the stored entry.
func (s *Sparse) SetAt(offset int, v float64) error {
	if err := checkOffset("Sparse.SetAt", offset, s.size); err != nil {
		return err
	}
	if v == s.def {
		delete(s.data, offset)
		return nil
	}
	s.data[offset] = v

	return nil
}

// Set writes v at inst.
func (s *Sparse) Set(inst *Instantiation, v float64) error {
	off, err := inst.Offset(s.scope)
	if err != nil {
		return err
	}

	return s.SetAt(off, v)
}

// Fill makes v the default and drops every stored entry.
func (s *Sparse) Fill(v float64) {
	s.def = v
	s.data = make(map[int]float64)
}
