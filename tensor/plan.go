// SPDX-License-Identifier: MIT
//
// File: plan.go
// Role: Stride plans for combination and projection, memoized in a bounded
// LRU keyed by variable identities.

package tensor

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// planCacheSize bounds the number of memoized plans.
const planCacheSize = 1024

// plan drives an odometer over dims. in[k][i] is the stride of position i
// in the k-th operand (0 when the operand does not carry that variable).
type plan struct {
	dims []int
	in   [2][]int
}

// plans is created on first use. golang-lru caches are safe for concurrent
// use, so schedulers may share it across workers.
var plans = sync.OnceValue(func() *lru.Cache[string, *plan] {
	c, err := lru.New[string, *plan](planCacheSize)
	if err != nil {
		panic(err)
	}
	return c
})

// combinePlan returns the plan walking union (a's variables then b's new
// ones) with strides into a and b.
func combinePlan(a, b, union []*Variable) *plan {
	key := "c|" + scopeKey(a) + "|" + scopeKey(b)
	if p, ok := plans().Get(key); ok {
		return p
	}
	p := &plan{dims: dimsOf(union)}
	p.in[0] = projectStrides(union, a)
	p.in[1] = projectStrides(union, b)
	plans().Add(key, p)

	return p
}

// projectPlan returns the plan walking src with strides into the kept
// result scope (second operand unused).
func projectPlan(src, kept []*Variable) *plan {
	key := "p|" + scopeKey(src) + "|" + scopeKey(kept)
	if p, ok := plans().Get(key); ok {
		return p
	}
	p := &plan{dims: dimsOf(src)}
	p.in[0] = projectStrides(src, kept)
	p.in[1] = make([]int, len(src))
	plans().Add(key, p)

	return p
}

// projectStrides returns, for every variable of walk, its stride in target
// (0 when absent).
func projectStrides(walk, target []*Variable) []int {
	st := stridesOf(target)
	pos := positionOf(target)
	out := make([]int, len(walk))
	for i, v := range walk {
		if j, ok := pos[v]; ok {
			out[i] = st[j]
		}
	}

	return out
}

// run calls fn(k, o0, o1) for every offset k of the walked domain, with o0
// and o1 the matching offsets in the two operands.
func (p *plan) run(fn func(k, o0, o1 int)) {
	n := len(p.dims)
	size := 1
	for _, d := range p.dims {
		size *= d
	}
	sub := make([]int, n)
	s0, s1 := p.in[0], p.in[1]
	o0, o1 := 0, 0
	for k := 0; k < size; k++ {
		fn(k, o0, o1)
		for i := n - 1; i >= 0; i-- {
			sub[i]++
			o0 += s0[i]
			o1 += s1[i]
			if sub[i] < p.dims[i] {
				break
			}
			o0 -= s0[i] * p.dims[i]
			o1 -= s1[i] * p.dims[i]
			sub[i] = 0
		}
	}
}
