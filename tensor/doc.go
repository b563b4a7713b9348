// SPDX-License-Identifier: MIT

// Package tensor implements multidimensional tables over discrete variables:
// the potentials hosted by junction-tree cliques.
//
// A table maps every joint assignment of its scope (an ordered list of
// distinct *Variable) to a float64. Offsets are row-major: the first
// variable is outermost, the last one varies fastest. Variables are compared
// by identity, so two tables share a dimension only when they hold the same
// *Variable.
//
// Variants behind the Table interface:
//
//	Dense       flat slice, one entry per assignment
//	Sparse      default value plus a map of deviations
//	Constant    0-dimensional scalar
//	ReadOnly    view hiding the writers of another table
//	NoisyOR     independence-of-causal-influence model, computed on demand
//	NoisyAND    dual of NoisyOR
//	Aggregator  deterministic max/min/count/exists/forall/or/and
//
// Combine applies a pointwise operator over the union of two scopes and
// Project reduces a variable set. Both return *Dense and accept any Table.
// Their stride plans are memoized in a bounded LRU shared by all callers.
//
// Tensor wraps a Table with the helpers inference code needs (MargSumOut,
// MargMaxOut, MargSumIn, Normalize, Reorganize, Equal).
//
// Errors are sentinels (ErrVariableNotInScope, ErrSizeMismatch, ...);
// branch with errors.Is.
package tensor
