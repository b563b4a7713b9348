// SPDX-License-Identifier: MIT
// Package schedule: sentinel error set.
//
// Messages are prefixed with "schedule: ". Context is attached with
// github.com/pkg/errors; callers branch with errors.Is.

package schedule

import "github.com/pkg/errors"

var (
	// ErrUnknownMultiDim indicates a MultiDim not registered in this schedule.
	ErrUnknownMultiDim = errors.New("schedule: unknown multidim")

	// ErrDeletedMultiDim indicates an operator reading a MultiDim whose
	// deletion is already scheduled.
	ErrDeletedMultiDim = errors.New("schedule: multidim is scheduled for deletion")

	// ErrUnknownOperator indicates an operator id absent from the schedule.
	ErrUnknownOperator = errors.New("schedule: unknown operator")

	// ErrAbstractInput indicates an operator reached at execution time with
	// an input that was never given values (see SetTable).
	ErrAbstractInput = errors.New("schedule: abstract input")

	// ErrOperationNotAllowed indicates SetTable on a MultiDim produced by an
	// operator, or already holding values.
	ErrOperationNotAllowed = errors.New("schedule: operation not allowed")

	// ErrNilArgument indicates a nil table, MultiDim or sink.
	ErrNilArgument = errors.New("schedule: nil argument")
)
