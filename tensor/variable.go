// SPDX-License-Identifier: MIT
//
// File: variable.go
// Role: Discrete variables. Identity is the pointer: two variables with the
// same name and labels are still different variables.

package tensor

import (
	"strconv"
	"sync/atomic"

	"github.com/pkg/errors"
)

// uidSource numbers variables so that plan cache keys can name them.
var uidSource atomic.Uint64

// Variable is a discrete random variable. Variables are created by callers
// and only referenced by tables.
type Variable struct {
	uid    uint64
	name   string
	labels []string
	index  map[string]int
}

// NewVariable returns a variable whose domain is labels, in order.
//
// Errors:
//   - ErrEmptyDomain: no label.
//   - ErrDuplicateVariable: a label repeated (wrapped with the label).
func NewVariable(name string, labels ...string) (*Variable, error) {
	if len(labels) == 0 {
		return nil, errors.Wrapf(ErrEmptyDomain, "NewVariable(%q)", name)
	}
	v := &Variable{
		uid:    uidSource.Add(1),
		name:   name,
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if _, dup := v.index[l]; dup {
			return nil, errors.Wrapf(ErrDuplicateVariable, "NewVariable(%q): label %q repeated", name, l)
		}
		v.labels[i] = l
		v.index[l] = i
	}

	return v, nil
}

// NewRangeVariable returns a variable over "0".."n-1". Panics if n < 1.
func NewRangeVariable(name string, n int) *Variable {
	if n < 1 {
		panic("tensor: NewRangeVariable: n must be >= 1, got " + strconv.Itoa(n))
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	v, _ := NewVariable(name, labels...)

	return v
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// DomainSize returns the number of values.
func (v *Variable) DomainSize() int { return len(v.labels) }

// Label returns the label of value i.
func (v *Variable) Label(i int) (string, error) {
	if i < 0 || i >= len(v.labels) {
		return "", errors.Wrapf(ErrValueOutOfRange, "%s.Label(%d)", v.name, i)
	}

	return v.labels[i], nil
}

// Index returns the value carrying label.
func (v *Variable) Index(label string) (int, error) {
	i, ok := v.index[label]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownLabel, "%s.Index(%q)", v.name, label)
	}

	return i, nil
}

// String returns "name<size>".
func (v *Variable) String() string {
	return v.name + "<" + strconv.Itoa(len(v.labels)) + ">"
}
