// SPDX-License-Identifier: MIT
//
// File: scheduler.go
// Role: Scheduler interface, shared options, metrics and static analysis.

package schedule

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/dfs"
)

// Scheduler runs the operators of a schedule in dependency order. Operators
// already executed by an earlier call are skipped.
type Scheduler interface {
	// Execute runs every pending operator. It returns the first operator
	// error or ctx.Err().
	Execute(ctx context.Context, s *Schedule) error
	// NbOperations estimates the work of the pending operators without
	// running them.
	NbOperations(s *Schedule) float64
	// MemoryUsage estimates, without running anything, the peak and final
	// bytes held by operator results over a sequential run of the pending
	// operators.
	MemoryUsage(s *Schedule) (peak, final int64)
}

// Option configures a scheduler.
type Option func(*options)

type options struct {
	threads    int
	ceiling    int64
	logger     *zap.Logger
	registerer prometheus.Registerer
	onExecuted func(*Operator)
}

func resolve(opts []Option) options {
	o := options{threads: 1, logger: zap.NewNop()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithThreads sets the number of Parallel workers. Panics if n < 1.
func WithThreads(n int) Option {
	if n < 1 {
		panic("schedule: WithThreads: n must be >= 1")
	}
	return func(o *options) { o.threads = n }
}

// WithMemoryCeiling bounds the bytes held by results and running operators
// under the Parallel scheduler. 0 selects half of the physical memory.
// Panics if bytes < 0.
func WithMemoryCeiling(bytes int64) Option {
	if bytes < 0 {
		panic("schedule: WithMemoryCeiling: bytes must be >= 0")
	}
	return func(o *options) { o.ceiling = bytes }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("schedule: WithLogger: nil logger")
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics registers the scheduler metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithOnExecuted installs a hook called after each operator succeeds. Under
// the Parallel scheduler it may run on several goroutines at once.
func WithOnExecuted(fn func(*Operator)) Option {
	return func(o *options) { o.onExecuted = fn }
}

// metrics is nil when no registerer is configured.
type metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}

	return &metrics{
		operations: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvpgm_schedule_operations_total",
			Help: "Executed schedule operators by kind and scheduler",
		}, []string{"scheduler", "kind"})),
		duration: register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvpgm_schedule_execute_duration_seconds",
			Help:    "Duration of Execute calls",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"scheduler"})),
	}
}

// register adds c to reg, reusing the collector already registered under
// the same name so that several schedulers can share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}

	return c
}

func (m *metrics) executed(scheduler string, k Kind) {
	if m != nil {
		m.operations.WithLabelValues(scheduler, k.String()).Inc()
	}
}

func (m *metrics) observe(scheduler string, seconds float64) {
	if m != nil {
		m.duration.WithLabelValues(scheduler).Observe(seconds)
	}
}

// order returns the pending operators in topological order of the DAG.
func order(ctx context.Context, s *Schedule) ([]*Operator, error) {
	ids, err := dfs.TopologicalSort(s.dag, dfs.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "schedule: ordering operators")
	}
	out := make([]*Operator, 0, len(ids))
	for _, id := range ids {
		if !s.Executed(id) {
			out = append(out, s.ops[id])
		}
	}

	return out, nil
}

// nbOperations sums the static cost of the pending operators.
func nbOperations(s *Schedule) float64 {
	var n float64
	for _, o := range s.pending() {
		n += o.NbOperations()
	}

	return n
}

// memoryUsage replays the static memory deltas in sequential order.
func memoryUsage(s *Schedule) (peak, final int64) {
	ops, err := order(context.Background(), s)
	if err != nil {
		return 0, 0
	}
	var cur int64
	for _, o := range ops {
		p, f := o.MemoryUsage()
		if cur+p > peak {
			peak = cur + p
		}
		cur += f
	}

	return peak, cur
}

// parentsOf returns the DAG parents of id.
func parentsOf(s *Schedule, id core.NodeID) []core.NodeID {
	ps, _ := s.dag.Parents(id)
	return ps
}
