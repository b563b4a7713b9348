// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options of a Triangulation.
//
// Option constructors panic on nil arguments (programmer error).

package triangulation

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpgm/elimination"
	"github.com/katalvlaran/lvpgm/jointree"
)

// Option configures a Triangulation.
type Option func(*options)

type options struct {
	elim       elimination.Strategy
	heuristic  elimination.Heuristic
	jt         jointree.Strategy
	minimality bool
	trackFills bool
	singleTree bool
	logger     *zap.Logger
}

func defaultOptions() options {
	return options{
		heuristic:  elimination.MinWeight,
		trackFills: true,
		logger:     zap.NewNop(),
	}
}

// WithEliminationStrategy replaces the heuristic strategy of a Static
// triangulation. Ordered and PartialOrdered triangulations own their
// strategy and ignore this option.
func WithEliminationStrategy(s elimination.Strategy) Option {
	if s == nil {
		panic("triangulation: WithEliminationStrategy(nil)")
	}
	return func(o *options) { o.elim = s }
}

// WithHeuristic selects the heuristic of the default Static strategy and
// the within-level heuristic of a PartialOrdered triangulation.
func WithHeuristic(h elimination.Heuristic) Option {
	elimination.WithHeuristic(h) // validates
	return func(o *options) { o.heuristic = h }
}

// WithJunctionTreeStrategy replaces the incremental junction tree strategy.
func WithJunctionTreeStrategy(s jointree.Strategy) Option {
	if s == nil {
		panic("triangulation: WithJunctionTreeStrategy(nil)")
	}
	return func(o *options) { o.jt = s }
}

// WithMinimality removes redundant fill-ins after the greedy pass (default off).
func WithMinimality(on bool) Option {
	return func(o *options) { o.minimality = on }
}

// WithFillInTracking keeps the list returned by FillIns (default on).
// When off, FillIns returns nil.
func WithFillInTracking(on bool) Option {
	return func(o *options) { o.trackFills = on }
}

// WithSingleTree joins the junction forest of a disconnected graph into one
// tree through empty separators.
func WithSingleTree() Option {
	return func(o *options) { o.singleTree = true }
}

// WithLogger routes debug logs to l (default zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("triangulation: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}
