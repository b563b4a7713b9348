// SPDX-License-Identifier: MIT
//
// File: schedule.go
// Role: Schedule, a DAG of deferred table operations over MultiDim slots.
//
// Dependencies:
//   - An operator depends on the operator producing each of its inputs.
//   - A deletion depends on every operator registered so far that reads (or
//     produces) the deleted slot; no operator may read it afterwards.

package schedule

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/tensor"
)

// Schedule records table operations without running them. Build it from one
// goroutine; schedulers then execute it.
type Schedule struct {
	id  uuid.UUID
	dag *core.DiGraph

	ops     map[core.NodeID]*Operator
	nextOp  core.NodeID
	dims    map[MultiDimID]*MultiDim
	nextDim MultiDimID

	producer map[MultiDimID]core.NodeID
	readers  map[MultiDimID][]core.NodeID
	deleted  map[MultiDimID]struct{}

	mu       sync.Mutex // guards executed
	executed map[core.NodeID]struct{}
}

// New returns an empty schedule with a fresh identity.
func New() *Schedule {
	return &Schedule{
		id:       uuid.New(),
		dag:      core.NewDiGraph(),
		ops:      make(map[core.NodeID]*Operator),
		dims:     make(map[MultiDimID]*MultiDim),
		producer: make(map[MultiDimID]core.NodeID),
		readers:  make(map[MultiDimID][]core.NodeID),
		deleted:  make(map[MultiDimID]struct{}),
		executed: make(map[core.NodeID]struct{}),
	}
}

// ID returns the schedule identity, used to correlate logs.
func (s *Schedule) ID() uuid.UUID { return s.id }

// InsertTable registers a computed slot holding t.
func (s *Schedule) InsertTable(t tensor.Table) (*MultiDim, error) {
	if t == nil {
		return nil, errors.Wrap(ErrNilArgument, "InsertTable")
	}
	m := s.newDim(t.Scope())
	m.table = t

	return m, nil
}

// InsertAbstract registers a slot over scope whose values are supplied
// later with SetTable. Static analysis works on it right away.
func (s *Schedule) InsertAbstract(scope ...*tensor.Variable) (*MultiDim, error) {
	if _, err := tensor.NewDense(scope...); err != nil {
		return nil, errors.WithMessage(err, "InsertAbstract")
	}

	return s.newDim(scope), nil
}

// SetTable gives values to an abstract inserted slot. t must hold the same
// variables; a different order is reorganised into the slot's order.
func (s *Schedule) SetTable(m *MultiDim, t tensor.Table) error {
	if err := s.check(m); err != nil {
		return err
	}
	if t == nil {
		return errors.Wrap(ErrNilArgument, "SetTable")
	}
	if m.produced || !m.IsAbstract() {
		return errors.Wrapf(ErrOperationNotAllowed, "SetTable(%d)", m.id)
	}
	x, err := tensor.New(t).Reorganize(m.scope...)
	if err != nil {
		return errors.WithMessagef(err, "SetTable(%d)", m.id)
	}
	m.table = x.Table()

	return nil
}

// MultiDim returns the slot registered under id.
func (s *Schedule) MultiDim(id MultiDimID) (*MultiDim, error) {
	m, ok := s.dims[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMultiDim, "id %d", id)
	}

	return m, nil
}

// EmplaceBinaryCombination schedules op(a, b). The result scope is a's
// variables followed by b's new ones.
func (s *Schedule) EmplaceBinaryCombination(a, b *MultiDim, op tensor.CombineOp) (*Operator, error) {
	if err := s.readable(a, b); err != nil {
		return nil, errors.WithMessage(err, "EmplaceBinaryCombination")
	}
	if !op.Valid() {
		return nil, errors.Wrapf(tensor.ErrBadParameter, "EmplaceBinaryCombination: combine op %d", int(op))
	}
	o := &Operator{kind: KindCombination, args: []*MultiDim{a, b}, combine: op}
	o.results = []*MultiDim{s.newDim(tensor.UnionScope(a.scope, b.scope))}

	return s.add(o), nil
}

// EmplaceProjection schedules the reduction of vars out of a.
func (s *Schedule) EmplaceProjection(a *MultiDim, vars []*tensor.Variable, op tensor.ProjectOp) (*Operator, error) {
	if err := s.readable(a); err != nil {
		return nil, errors.WithMessage(err, "EmplaceProjection")
	}
	if !op.Valid() {
		return nil, errors.Wrapf(tensor.ErrBadParameter, "EmplaceProjection: project op %d", int(op))
	}
	kept, err := remaining(a.scope, vars)
	if err != nil {
		return nil, errors.WithMessage(err, "EmplaceProjection")
	}
	o := &Operator{
		kind:    KindProjection,
		args:    []*MultiDim{a},
		project: op,
		vars:    append([]*tensor.Variable(nil), vars...),
	}
	o.results = []*MultiDim{s.newDim(kept)}

	return s.add(o), nil
}

// EmplaceDeletion schedules the release of a once every operator already
// reading it has run.
func (s *Schedule) EmplaceDeletion(a *MultiDim) (*Operator, error) {
	if err := s.readable(a); err != nil {
		return nil, errors.WithMessage(err, "EmplaceDeletion")
	}
	o := s.add(&Operator{kind: KindDeletion, args: []*MultiDim{a}})
	for _, r := range s.readers[a.id] {
		if r != o.id {
			_ = s.dag.AddArc(r, o.id)
		}
	}
	s.deleted[a.id] = struct{}{}

	return o, nil
}

// EmplaceStorage schedules the hand-off of a to sink.
func (s *Schedule) EmplaceStorage(a *MultiDim, sink Sink) (*Operator, error) {
	if sink == nil {
		return nil, errors.Wrap(ErrNilArgument, "EmplaceStorage")
	}
	if err := s.readable(a); err != nil {
		return nil, errors.WithMessage(err, "EmplaceStorage")
	}

	return s.add(&Operator{kind: KindStorage, args: []*MultiDim{a}, sink: sink}), nil
}

// Operator returns the operator registered under id.
func (s *Schedule) Operator(id core.NodeID) (*Operator, error) {
	o, ok := s.ops[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOperator, "id %d", id)
	}

	return o, nil
}

// Operators returns every operator in id order.
func (s *Schedule) Operators() []*Operator {
	out := make([]*Operator, 0, len(s.ops))
	for _, o := range s.ops {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// Size returns the number of operators.
func (s *Schedule) Size() int { return len(s.ops) }

// Dependencies returns a copy of the operator DAG.
func (s *Schedule) Dependencies() *core.DiGraph { return s.dag.Clone() }

// Executed reports whether operator id has run.
func (s *Schedule) Executed(id core.NodeID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.executed[id]

	return ok
}

// MemoryInUse returns the bytes held by computed operator results. Inserted
// tables are not counted.
func (s *Schedule) MemoryInUse() int64 {
	var b int64
	for _, m := range s.dims {
		if m.produced && !m.IsAbstract() {
			b += m.Bytes()
		}
	}

	return b
}

func (s *Schedule) markExecuted(id core.NodeID) {
	s.mu.Lock()
	s.executed[id] = struct{}{}
	s.mu.Unlock()
}

// pending returns the operators not yet executed, in id order.
func (s *Schedule) pending() []*Operator {
	var out []*Operator
	for _, o := range s.Operators() {
		if !s.Executed(o.id) {
			out = append(out, o)
		}
	}

	return out
}

func (s *Schedule) newDim(scope []*tensor.Variable) *MultiDim {
	s.nextDim++
	m := &MultiDim{id: s.nextDim, scope: append([]*tensor.Variable(nil), scope...)}
	s.dims[m.id] = m

	return m
}

// add registers o, links it to the producers of its inputs and records it
// as a reader of each input and the producer of each result.
func (s *Schedule) add(o *Operator) *Operator {
	s.nextOp++
	o.id = s.nextOp
	_ = s.dag.AddNodeWithID(o.id)
	s.ops[o.id] = o
	for _, a := range o.args {
		if p, ok := s.producer[a.id]; ok {
			_ = s.dag.AddArc(p, o.id)
		}
		s.readers[a.id] = append(s.readers[a.id], o.id)
	}
	for _, r := range o.results {
		r.produced = true
		s.producer[r.id] = o.id
		s.readers[r.id] = append(s.readers[r.id], o.id)
	}

	return o
}

// check verifies m belongs to s.
func (s *Schedule) check(m *MultiDim) error {
	if m == nil {
		return ErrNilArgument
	}
	if got, ok := s.dims[m.id]; !ok || got != m {
		return errors.Wrapf(ErrUnknownMultiDim, "id %d", m.id)
	}

	return nil
}

// readable verifies every slot belongs to s and is not scheduled for deletion.
func (s *Schedule) readable(ms ...*MultiDim) error {
	for _, m := range ms {
		if err := s.check(m); err != nil {
			return err
		}
		if _, gone := s.deleted[m.id]; gone {
			return errors.Wrapf(ErrDeletedMultiDim, "id %d", m.id)
		}
	}

	return nil
}

// remaining returns scope minus vars, validating vars against scope.
func remaining(scope, vars []*tensor.Variable) ([]*tensor.Variable, error) {
	pos := make(map[*tensor.Variable]struct{}, len(scope))
	for _, v := range scope {
		pos[v] = struct{}{}
	}
	drop := make(map[*tensor.Variable]struct{}, len(vars))
	for _, v := range vars {
		if _, ok := pos[v]; !ok {
			return nil, errors.Wrapf(tensor.ErrVariableNotInScope, "%s", v)
		}
		if _, dup := drop[v]; dup {
			return nil, errors.Wrapf(tensor.ErrDuplicateVariable, "%s", v)
		}
		drop[v] = struct{}{}
	}
	out := make([]*tensor.Variable, 0, len(scope)-len(drop))
	for _, v := range scope {
		if _, ok := drop[v]; !ok {
			out = append(out, v)
		}
	}

	return out, nil
}
