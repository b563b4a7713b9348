// SPDX-License-Identifier: MIT

package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sequential runs operators one at a time in topological order.
type Sequential struct {
	opts    options
	metrics *metrics
}

var _ Scheduler = (*Sequential)(nil)

// NewSequential returns a single-threaded scheduler. Thread and memory
// ceiling options are ignored.
func NewSequential(opts ...Option) *Sequential {
	o := resolve(opts)
	o.logger = o.logger.Named("schedule")

	return &Sequential{opts: o, metrics: newMetrics(o.registerer)}
}

// Execute runs every pending operator of s.
func (q *Sequential) Execute(ctx context.Context, s *Schedule) error {
	start := time.Now()
	defer func() { q.metrics.observe("sequential", time.Since(start).Seconds()) }()

	ops, err := order(ctx, s)
	if err != nil {
		return err
	}
	log := q.opts.logger.With(zap.Stringer("schedule", s.ID()))
	log.Debug("execute", zap.Int("operators", len(ops)))
	for _, o := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := o.execute(); err != nil {
			log.Debug("operator failed", zap.Uint("operator", uint(o.id)), zap.Error(err))
			return err
		}
		s.markExecuted(o.id)
		q.metrics.executed("sequential", o.kind)
		if q.opts.onExecuted != nil {
			q.opts.onExecuted(o)
		}
	}
	log.Debug("executed", zap.Int("operators", len(ops)), zap.Duration("elapsed", time.Since(start)))

	return nil
}

// NbOperations estimates the pending work.
func (q *Sequential) NbOperations(s *Schedule) float64 { return nbOperations(s) }

// MemoryUsage estimates the peak and final bytes of a sequential run.
func (q *Sequential) MemoryUsage(s *Schedule) (peak, final int64) { return memoryUsage(s) }
