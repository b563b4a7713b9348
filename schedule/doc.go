// SPDX-License-Identifier: MIT

// Package schedule separates what table operations must happen from when
// they run.
//
// A Schedule holds MultiDim slots (tables, or only their scopes while
// abstract) and operators over them: binary combination, projection,
// deletion and storage. Operators form a DAG kept in a core.DiGraph; an
// operator depends on the producers of its inputs, and a deletion on every
// operator reading the deleted slot.
//
// Schedulers run the DAG:
//
//	Sequential  one operator at a time, topological order
//	Parallel    worker pool (errgroup) over the ready operators, bounded by
//	            WithThreads and WithMemoryCeiling
//
// Both answer NbOperations and MemoryUsage from declared scopes alone, so a
// caller can compare candidate schedules before running any of them.
// Results do not depend on the scheduler: operators are pure functions of
// their inputs.
//
// Example:
//
//	s := schedule.New()
//	a, _ := s.InsertTable(pa)
//	b, _ := s.InsertTable(pb)
//	ab, _ := s.EmplaceBinaryCombination(a, b, tensor.Mul)
//	m, _ := s.EmplaceProjection(ab.Result(), []*tensor.Variable{x}, tensor.Sum)
//	err := schedule.NewParallel(schedule.WithThreads(4)).Execute(ctx, s)
//	marginal := m.Result().Table()
package schedule
