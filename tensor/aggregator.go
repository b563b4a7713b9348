// SPDX-License-Identifier: MIT
//
// File: aggregator.go
// Role: Deterministic aggregators. Entry is 1 when the child value equals
// the aggregate of the parent values, 0 otherwise.
//
// Scope layout is [child, parents...]. Aggregates are clamped into the
// child domain.

package tensor

import (
	"strings"

	"github.com/pkg/errors"
)

// AggregatorKind selects the aggregate.
type AggregatorKind int

const (
	AggMax    AggregatorKind = iota // largest parent value
	AggMin                          // smallest parent value
	AggCount                        // number of parents equal to the parameter
	AggExists                       // 1 if some parent equals the parameter
	AggForAll                       // 1 if every parent equals the parameter
	AggOr                           // 1 if some parent is non-zero
	AggAnd                          // 1 if every parent is non-zero
)

var aggregatorNames = [...]string{"max", "min", "count", "exists", "forall", "or", "and"}

// String returns the lower-case name.
func (k AggregatorKind) String() string {
	if k < 0 || int(k) >= len(aggregatorNames) {
		return "unknown"
	}

	return aggregatorNames[k]
}

// ParseAggregatorKind maps a name back to its kind.
func ParseAggregatorKind(s string) (AggregatorKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range aggregatorNames {
		if n == s {
			return AggregatorKind(i), nil
		}
	}

	return 0, errors.Wrapf(ErrBadParameter, "unknown aggregator %q", s)
}

// Aggregator is a deterministic table computed on demand.
type Aggregator struct {
	kind  AggregatorKind
	param int
	scope []*Variable
	dims  []int
}

var _ Table = (*Aggregator)(nil)

// NewAggregator returns an aggregator over child and parents. param is the
// compared value of count, exists and forall; other kinds ignore it.
func NewAggregator(kind AggregatorKind, param int, child *Variable, parents ...*Variable) (*Aggregator, error) {
	if kind < AggMax || kind > AggAnd {
		return nil, errors.Wrapf(ErrBadParameter, "NewAggregator: kind %d", int(kind))
	}
	scope := append([]*Variable{child}, parents...)
	if err := checkScope(scope); err != nil {
		return nil, errors.WithMessage(err, "NewAggregator")
	}

	return &Aggregator{kind: kind, param: param, scope: scope, dims: dimsOf(scope)}, nil
}

// Kind returns the aggregate.
func (a *Aggregator) Kind() AggregatorKind { return a.kind }

func (a *Aggregator) Scope() []*Variable { return a.scope }
func (a *Aggregator) Size() int          { return sizeOf(a.scope) }

func (a *Aggregator) At(offset int) (float64, error) {
	if err := checkOffset("Aggregator.At", offset, a.Size()); err != nil {
		return 0, err
	}
	sub := make([]int, len(a.dims))
	decode(offset, a.dims, sub)
	if sub[0] == a.aggregate(sub[1:]) {
		return 1, nil
	}

	return 0, nil
}

func (a *Aggregator) Get(inst *Instantiation) (float64, error) { return getVia(a, inst) }

// aggregate computes the clamped child value for the parent subscript.
func (a *Aggregator) aggregate(parents []int) int {
	var r int
	switch a.kind {
	case AggMax:
		for i, v := range parents {
			if i == 0 || v > r {
				r = v
			}
		}
	case AggMin:
		for i, v := range parents {
			if i == 0 || v < r {
				r = v
			}
		}
	case AggCount:
		for _, v := range parents {
			if v == a.param {
				r++
			}
		}
	case AggExists:
		for _, v := range parents {
			if v == a.param {
				r = 1
				break
			}
		}
	case AggForAll:
		r = 1
		for _, v := range parents {
			if v != a.param {
				r = 0
				break
			}
		}
	case AggOr:
		for _, v := range parents {
			if v != 0 {
				r = 1
				break
			}
		}
	case AggAnd:
		r = 1
		for _, v := range parents {
			if v == 0 {
				r = 0
				break
			}
		}
	}
	if r >= a.dims[0] {
		r = a.dims[0] - 1
	}

	return r
}
