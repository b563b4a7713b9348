// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
//
// Every message is prefixed with "tensor: ". Call sites attach context with
// github.com/pkg/errors; callers branch with errors.Is. Public indexers
// return these sentinels instead of panicking.

package tensor

import "github.com/pkg/errors"

var (
	// ErrVariableNotInScope indicates an instantiation or projection set
	// that refers to a variable outside the table's scope, or an
	// instantiation missing a scope variable.
	ErrVariableNotInScope = errors.New("tensor: variable not in scope")

	// ErrDuplicateVariable indicates a scope listing the same variable twice.
	ErrDuplicateVariable = errors.New("tensor: duplicate variable")

	// ErrSizeMismatch indicates a value slice whose length differs from the
	// table size, or two scopes that should hold the same variables.
	ErrSizeMismatch = errors.New("tensor: size mismatch")

	// ErrValueOutOfRange indicates a variable value or a table offset
	// outside its domain.
	ErrValueOutOfRange = errors.New("tensor: value out of range")

	// ErrEmptyDomain indicates a variable declared with no label.
	ErrEmptyDomain = errors.New("tensor: empty domain")

	// ErrUnknownLabel indicates a label absent from a variable's domain.
	ErrUnknownLabel = errors.New("tensor: unknown label")

	// ErrNilVariable indicates a nil *Variable in a scope.
	ErrNilVariable = errors.New("tensor: nil variable")

	// ErrReadOnly indicates a write through a table that does not accept one.
	ErrReadOnly = errors.New("tensor: table is read-only")

	// ErrZeroSum indicates a normalisation of a table summing to zero.
	ErrZeroSum = errors.New("tensor: table sums to zero")

	// ErrBadParameter indicates a model parameter outside its range (a
	// probability outside [0,1], a non-binary child of an ICI model).
	ErrBadParameter = errors.New("tensor: bad model parameter")
)
