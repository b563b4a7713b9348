// SPDX-License-Identifier: MIT
//
// File: operator.go
// Role: Deferred table operations and their static cost.

package schedule

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/tensor"
)

// Kind enumerates operator types.
type Kind int

const (
	KindCombination Kind = iota
	KindProjection
	KindDeletion
	KindStorage
)

var kindNames = [...]string{"combination", "projection", "deletion", "storage"}

// String returns the lower-case kind name, used as a metric label.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Operator is one node of the schedule DAG.
type Operator struct {
	id      core.NodeID
	kind    Kind
	args    []*MultiDim
	results []*MultiDim

	combine tensor.CombineOp
	project tensor.ProjectOp
	vars    []*tensor.Variable
	sink    Sink
}

// ID returns the operator id, which is its node id in the DAG.
func (o *Operator) ID() core.NodeID { return o.id }

// Kind returns the operator type.
func (o *Operator) Kind() Kind { return o.kind }

// Args returns the input slots.
func (o *Operator) Args() []*MultiDim { return append([]*MultiDim(nil), o.args...) }

// Results returns the output slots (empty for deletion and storage).
func (o *Operator) Results() []*MultiDim { return append([]*MultiDim(nil), o.results...) }

// Result returns the single output slot, or nil.
func (o *Operator) Result() *MultiDim {
	if len(o.results) == 0 {
		return nil
	}

	return o.results[0]
}

// NbOperations estimates the number of elementary operations from declared
// scopes only: the size of the walked domain for combination and
// projection, 1 for deletion and storage.
func (o *Operator) NbOperations() float64 {
	switch o.kind {
	case KindCombination:
		return float64(o.results[0].Size())
	case KindProjection:
		return float64(o.args[0].Size())
	}

	return 1
}

// MemoryUsage returns the static (peak, final) memory delta in bytes.
// Deleting a produced slot frees it; inserted tables are owned by the
// caller and never counted.
func (o *Operator) MemoryUsage() (peak, final int64) {
	switch o.kind {
	case KindCombination, KindProjection:
		b := o.results[0].Bytes()
		return b, b
	case KindDeletion:
		if o.args[0].produced {
			return 0, -o.args[0].Bytes()
		}
	}

	return 0, 0
}

// execute runs the operator. Inputs must be non-abstract.
func (o *Operator) execute() error {
	for _, a := range o.args {
		if a.IsAbstract() {
			return errors.Wrapf(ErrAbstractInput, "operator %d (%s): multidim %d", o.id, o.kind, a.id)
		}
	}
	switch o.kind {
	case KindCombination:
		d, err := tensor.Combine(o.args[0].table, o.args[1].table, o.combine)
		if err != nil {
			return errors.WithMessagef(err, "operator %d", o.id)
		}
		o.results[0].table = d
	case KindProjection:
		d, err := tensor.Project(o.args[0].table, o.vars, o.project)
		if err != nil {
			return errors.WithMessagef(err, "operator %d", o.id)
		}
		o.results[0].table = d
	case KindDeletion:
		o.args[0].table = nil
	case KindStorage:
		if err := o.sink.Store(o.args[0].id, o.args[0].table); err != nil {
			return errors.WithMessagef(err, "operator %d", o.id)
		}
	}

	return nil
}
