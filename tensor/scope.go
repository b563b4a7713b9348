// SPDX-License-Identifier: MIT
//
// File: scope.go
// Role: Scope helpers: validation, dims, strides and cache keys.
//
// A scope is an ordered list of distinct variables. Offsets are row-major
// (mixed radix): the first variable is outermost, the last varies fastest.

package tensor

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// checkScope rejects nil and repeated variables.
func checkScope(scope []*Variable) error {
	seen := make(map[*Variable]struct{}, len(scope))
	for _, v := range scope {
		if v == nil {
			return ErrNilVariable
		}
		if _, dup := seen[v]; dup {
			return errors.Wrapf(ErrDuplicateVariable, "%s", v)
		}
		seen[v] = struct{}{}
	}

	return nil
}

// dimsOf returns the domain sizes of scope.
func dimsOf(scope []*Variable) []int {
	d := make([]int, len(scope))
	for i, v := range scope {
		d[i] = v.DomainSize()
	}

	return d
}

// sizeOf returns the product of the domain sizes (1 for an empty scope).
func sizeOf(scope []*Variable) int {
	n := 1
	for _, v := range scope {
		n *= v.DomainSize()
	}

	return n
}

// stridesOf returns the row-major stride of every position of scope.
func stridesOf(scope []*Variable) []int {
	s := make([]int, len(scope))
	stride := 1
	for i := len(scope) - 1; i >= 0; i-- {
		s[i] = stride
		stride *= scope[i].DomainSize()
	}

	return s
}

// positionOf maps each variable of scope to its index.
func positionOf(scope []*Variable) map[*Variable]int {
	m := make(map[*Variable]int, len(scope))
	for i, v := range scope {
		m[v] = i
	}

	return m
}

// scopeKey names a scope by variable uids, e.g. "3,1,7".
func scopeKey(scope []*Variable) string {
	var b strings.Builder
	for i, v := range scope {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(v.uid, 10))
	}

	return b.String()
}

func cloneScope(scope []*Variable) []*Variable {
	out := make([]*Variable, len(scope))
	copy(out, scope)

	return out
}
