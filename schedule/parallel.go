// SPDX-License-Identifier: MIT
//
// File: parallel.go
// Role: Parallel scheduler, a worker pool over the ready operators under a
// memory ceiling.
//
// Dispatch:
//   - Ready operators (every parent executed) wait in a queue guarded by a
//     mutex and condition variable, lowest id first.
//   - An operator starts only if the bytes held by results plus the peaks of
//     running operators plus its own peak fit the ceiling.
//   - When nothing fits and nothing runs, the smallest ready operator runs
//     alone; execution continues one operator at a time until others fit.

package schedule

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pbnjay/memory"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpgm/core"
)

// Parallel runs independent operators concurrently.
type Parallel struct {
	opts    options
	metrics *metrics
}

var _ Scheduler = (*Parallel)(nil)

// NewParallel returns a pool scheduler (WithThreads, WithMemoryCeiling).
func NewParallel(opts ...Option) *Parallel {
	o := resolve(opts)
	o.logger = o.logger.Named("schedule")

	return &Parallel{opts: o, metrics: newMetrics(o.registerer)}
}

// Threads returns the worker count.
func (p *Parallel) Threads() int { return p.opts.threads }

// Ceiling returns the memory ceiling in bytes.
func (p *Parallel) Ceiling() int64 {
	if p.opts.ceiling > 0 {
		return p.opts.ceiling
	}

	return int64(memory.TotalMemory() / 2)
}

// run is the shared state of one Execute call.
type run struct {
	mu   sync.Mutex
	cond *sync.Cond

	ready    []*Operator
	waiting  map[core.NodeID]int // pending parents per operator
	children map[core.NodeID][]core.NodeID
	left     int
	running  int
	inUse    int64 // results held plus peaks of running operators
	ceiling  int64
	degraded bool
	failed   bool
}

// Execute runs every pending operator of s.
func (p *Parallel) Execute(ctx context.Context, s *Schedule) error {
	start := time.Now()
	defer func() { p.metrics.observe("parallel", time.Since(start).Seconds()) }()

	ops := s.pending()
	if len(ops) == 0 {
		return nil
	}
	r := &run{
		waiting:  make(map[core.NodeID]int, len(ops)),
		children: make(map[core.NodeID][]core.NodeID, len(ops)),
		left:     len(ops),
		inUse:    s.MemoryInUse(),
		ceiling:  p.Ceiling(),
	}
	r.cond = sync.NewCond(&r.mu)
	for _, o := range ops {
		for _, parent := range parentsOf(s, o.id) {
			if !s.Executed(parent) {
				r.waiting[o.id]++
				r.children[parent] = append(r.children[parent], o.id)
			}
		}
		if r.waiting[o.id] == 0 {
			r.ready = append(r.ready, o)
		}
	}

	log := p.opts.logger.With(zap.Stringer("schedule", s.ID()))
	log.Debug("execute",
		zap.Int("operators", len(ops)),
		zap.Int("threads", p.opts.threads),
		zap.Int64("ceiling", r.ceiling))

	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, func() {
		r.mu.Lock()
		r.failed = true
		r.cond.Broadcast()
		r.mu.Unlock()
	})
	defer stop()

	for i := 0; i < p.opts.threads; i++ {
		g.Go(func() error { return p.worker(gctx, s, r, log) })
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Debug("executed", zap.Int("operators", len(ops)), zap.Duration("elapsed", time.Since(start)))

	return nil
}

// worker takes operators until none is left or the run fails.
func (p *Parallel) worker(ctx context.Context, s *Schedule, r *run, log *zap.Logger) error {
	for {
		o, peak := p.take(r, log)
		if o == nil {
			return ctx.Err()
		}
		err := o.execute()

		r.mu.Lock()
		r.running--
		r.inUse -= peak
		if err != nil {
			r.failed = true
			r.cond.Broadcast()
			r.mu.Unlock()
			log.Debug("operator failed", zap.Uint("operator", uint(o.id)), zap.Error(err))
			return err
		}
		_, final := o.MemoryUsage()
		r.inUse += final
		r.left--
		s.markExecuted(o.id)
		for _, c := range r.children[o.id] {
			r.waiting[c]--
			if r.waiting[c] == 0 {
				r.push(s.ops[c])
			}
		}
		r.cond.Broadcast()
		r.mu.Unlock()

		p.metrics.executed("parallel", o.kind)
		if p.opts.onExecuted != nil {
			p.opts.onExecuted(o)
		}
	}
}

// take blocks until an operator can start and reserves its peak. It
// returns nil when the run is over.
func (p *Parallel) take(r *run, log *zap.Logger) (*Operator, int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		if r.failed || r.left == 0 {
			return nil, 0
		}
		for i, o := range r.ready {
			peak, _ := o.MemoryUsage()
			if r.inUse+peak <= r.ceiling {
				return r.start(i, peak), peak
			}
		}
		if r.running == 0 && len(r.ready) > 0 {
			if !r.degraded {
				r.degraded = true
				log.Debug("memory ceiling reached, running one operator at a time",
					zap.Int64("in_use", r.inUse), zap.Int64("ceiling", r.ceiling))
			}
			i := r.smallest()
			peak, _ := r.ready[i].MemoryUsage()
			return r.start(i, peak), peak
		}
		r.cond.Wait()
	}
}

func (r *run) start(i int, peak int64) *Operator {
	o := r.ready[i]
	r.ready = append(r.ready[:i], r.ready[i+1:]...)
	r.running++
	r.inUse += peak

	return o
}

// smallest returns the index of the ready operator with the lowest peak.
func (r *run) smallest() int {
	best := 0
	bp, _ := r.ready[0].MemoryUsage()
	for i, o := range r.ready[1:] {
		if p, _ := o.MemoryUsage(); p < bp {
			best, bp = i+1, p
		}
	}

	return best
}

// push inserts o keeping the queue in id order.
func (r *run) push(o *Operator) {
	i := sort.Search(len(r.ready), func(i int) bool { return r.ready[i].id > o.id })
	r.ready = append(r.ready, nil)
	copy(r.ready[i+1:], r.ready[i:])
	r.ready[i] = o
}

// NbOperations estimates the pending work.
func (p *Parallel) NbOperations(s *Schedule) float64 { return nbOperations(s) }

// MemoryUsage estimates the peak and final bytes of a sequential run, the
// footprint the ceiling degrades to.
func (p *Parallel) MemoryUsage(s *Schedule) (peak, final int64) { return memoryUsage(s) }
