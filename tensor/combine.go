// SPDX-License-Identifier: MIT
//
// File: combine.go
// Role: Combination (pointwise op over the union scope) and projection
// (reduction of a variable set).

package tensor

import (
	"github.com/pkg/errors"
)

// UnionScope returns a's variables followed by the variables of b not in a.
func UnionScope(a, b []*Variable) []*Variable {
	pos := positionOf(a)
	out := cloneScope(a)
	for _, v := range b {
		if _, ok := pos[v]; !ok {
			out = append(out, v)
		}
	}

	return out
}

// Combine returns op(a, b) over UnionScope(a, b). Variables are shared by
// identity; disjoint scopes give the outer product.
// Stage 1 (Prepare): union scope and cached stride plan.
// Stage 2 (Execute): one odometer pass over the union domain.
// Complexity: O(|union domain| + |union|).
func Combine(a, b Table, op CombineOp) (*Dense, error) {
	if a == nil || b == nil {
		return nil, errors.New("tensor: Combine: nil table")
	}
	if !op.Valid() {
		return nil, errors.Wrapf(ErrBadParameter, "Combine: combine op %d", int(op))
	}
	union := UnionScope(a.Scope(), b.Scope())
	out, err := NewDense(union...)
	if err != nil {
		return nil, errors.WithMessage(err, "Combine")
	}
	av, bv := valuesOf(a), valuesOf(b)
	combinePlan(a.Scope(), b.Scope(), union).run(func(k, oa, ob int) {
		out.data[k] = op.Apply(av[oa], bv[ob])
	})

	return out, nil
}

// Project reduces t over remove with op. The result keeps the remaining
// variables in t's order. An empty remove returns a copy of t.
//
// Errors:
//   - ErrVariableNotInScope: a variable of remove is not in t's scope.
//   - ErrDuplicateVariable: remove repeats a variable.
//
// Complexity: O(|t|).
func Project(t Table, remove []*Variable, op ProjectOp) (*Dense, error) {
	if t == nil {
		return nil, errors.New("tensor: Project: nil table")
	}
	if !op.Valid() {
		return nil, errors.Wrapf(ErrBadParameter, "Project: project op %d", int(op))
	}
	if err := checkScope(remove); err != nil {
		return nil, errors.WithMessage(err, "Project")
	}
	scope := t.Scope()
	pos := positionOf(scope)
	drop := make(map[*Variable]struct{}, len(remove))
	for _, v := range remove {
		if _, ok := pos[v]; !ok {
			return nil, errors.Wrapf(ErrVariableNotInScope, "Project: %s", v)
		}
		drop[v] = struct{}{}
	}
	kept := make([]*Variable, 0, len(scope)-len(remove))
	for _, v := range scope {
		if _, ok := drop[v]; !ok {
			kept = append(kept, v)
		}
	}
	out, _ := NewDense(kept...)
	src := valuesOf(t)
	if len(remove) == 0 {
		copy(out.data, src)
		return out, nil
	}
	id := op.Identity()
	for i := range out.data {
		out.data[i] = id
	}
	projectPlan(scope, kept).run(func(k, o, _ int) {
		out.data[o] = op.Reduce(out.data[o], src[k])
	})

	return out, nil
}
