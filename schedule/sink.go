// SPDX-License-Identifier: MIT

package schedule

import (
	"sync"

	"github.com/katalvlaran/lvpgm/tensor"
)

// Sink receives the tables of storage operators. Under the Parallel
// scheduler Store may be called from several goroutines.
type Sink interface {
	Store(id MultiDimID, t tensor.Table) error
}

// Collector is a Sink keeping every stored table in memory.
type Collector struct {
	mu     sync.Mutex
	tables map[MultiDimID]tensor.Table
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{tables: make(map[MultiDimID]tensor.Table)}
}

// Store records t under id, replacing any earlier table.
func (c *Collector) Store(id MultiDimID, t tensor.Table) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[id] = t

	return nil
}

// Get returns the table stored under id.
func (c *Collector) Get(id MultiDimID) (tensor.Table, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.tables[id]

	return t, ok
}

// Len returns the number of stored tables.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.tables)
}
