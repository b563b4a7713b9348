// SPDX-License-Identifier: MIT
//
// File: ici.go
// Role: Independence-of-causal-influence models (noisy-OR, noisy-AND). Both
// compute their entries on demand from one weight per parent.
//
// Scope layout is [child, parents...]. The child is binary; a parent is
// active when its value is non-zero.

package tensor

import "github.com/pkg/errors"

// ici holds what noisy-OR and noisy-AND share.
type ici struct {
	scope   []*Variable
	dims    []int
	leak    float64
	weights []float64
}

func newICI(method string, child *Variable, leak float64, parents []*Variable, weights []float64) (ici, error) {
	scope := append([]*Variable{child}, parents...)
	if err := checkScope(scope); err != nil {
		return ici{}, errors.WithMessage(err, method)
	}
	if child.DomainSize() != 2 {
		return ici{}, errors.Wrapf(ErrBadParameter, "%s: child %s is not binary", method, child)
	}
	if len(weights) != len(parents) {
		return ici{}, errors.Wrapf(ErrSizeMismatch, "%s: %d weights for %d parents", method, len(weights), len(parents))
	}
	if leak < 0 || leak > 1 {
		return ici{}, errors.Wrapf(ErrBadParameter, "%s: leak %g not in [0,1]", method, leak)
	}
	for i, w := range weights {
		if w < 0 || w > 1 {
			return ici{}, errors.Wrapf(ErrBadParameter, "%s: weight of %s is %g, not in [0,1]", method, parents[i], w)
		}
	}
	ws := make([]float64, len(weights))
	copy(ws, weights)

	return ici{scope: scope, dims: dimsOf(scope), leak: leak, weights: ws}, nil
}

func (m *ici) Scope() []*Variable { return m.scope }
func (m *ici) Size() int          { return sizeOf(m.scope) }

// Leak returns the leak probability.
func (m *ici) Leak() float64 { return m.leak }

// Weight returns the weight of parent.
func (m *ici) Weight(parent *Variable) (float64, error) {
	for i, p := range m.scope[1:] {
		if p == parent {
			return m.weights[i], nil
		}
	}

	return 0, errors.Wrapf(ErrVariableNotInScope, "Weight(%s)", parent)
}

// at decodes offset and hands the child value and parent subscript to prob.
func (m *ici) at(method string, offset int, prob func(parents []int) float64) (float64, error) {
	if err := checkOffset(method, offset, m.Size()); err != nil {
		return 0, err
	}
	sub := make([]int, len(m.dims))
	decode(offset, m.dims, sub)
	p1 := prob(sub[1:])
	if sub[0] == 1 {
		return p1, nil
	}

	return 1 - p1, nil
}

// NoisyOR: P(child=1 | parents) = 1 - (1-leak) * prod over active parents
// of (1-w_i).
type NoisyOR struct{ ici }

var _ Table = (*NoisyOR)(nil)

// NewNoisyOR returns a noisy-OR over child with one weight per parent.
//
// Errors:
//   - ErrBadParameter: non-binary child, leak or weight outside [0,1].
//   - ErrSizeMismatch: len(weights) != len(parents).
func NewNoisyOR(child *Variable, leak float64, parents []*Variable, weights []float64) (*NoisyOR, error) {
	m, err := newICI("NewNoisyOR", child, leak, parents, weights)
	if err != nil {
		return nil, err
	}

	return &NoisyOR{m}, nil
}

func (n *NoisyOR) At(offset int) (float64, error) {
	return n.at("NoisyOR.At", offset, func(parents []int) float64 {
		q := 1 - n.leak
		for i, v := range parents {
			if v != 0 {
				q *= 1 - n.weights[i]
			}
		}
		return 1 - q
	})
}

func (n *NoisyOR) Get(inst *Instantiation) (float64, error) { return getVia(n, inst) }

// NoisyAND: P(child=1 | parents) = (1-leak) * prod over inactive parents
// of (1-w_i).
type NoisyAND struct{ ici }

var _ Table = (*NoisyAND)(nil)

// NewNoisyAND returns a noisy-AND over child with one weight per parent.
// Errors as for NewNoisyOR.
func NewNoisyAND(child *Variable, leak float64, parents []*Variable, weights []float64) (*NoisyAND, error) {
	m, err := newICI("NewNoisyAND", child, leak, parents, weights)
	if err != nil {
		return nil, err
	}

	return &NoisyAND{m}, nil
}

func (n *NoisyAND) At(offset int) (float64, error) {
	return n.at("NoisyAND.At", offset, func(parents []int) float64 {
		p := 1 - n.leak
		for i, v := range parents {
			if v == 0 {
				p *= 1 - n.weights[i]
			}
		}
		return p
	})
}

func (n *NoisyAND) Get(inst *Instantiation) (float64, error) { return getVia(n, inst) }
