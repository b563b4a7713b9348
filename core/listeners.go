// SPDX-License-Identifier: MIT
//
// File: listeners.go
// Role: Synchronous structural-change notification for graphs.
//
// Delivery:
//   - Callbacks run on the mutating goroutine, after the graph lock has been
//     released, in registration order.
//   - A listener may query the graph or (un)register listeners from a callback.
//   - A callback that mutates the same graph triggers nested notifications.

package core

import (
	"slices"
	"sync"
)

// ListenerID identifies a registered listener; use it to unregister.
type ListenerID uint64

// Listener receives structural-change events from a graph.
type Listener interface {
	OnNodeAdded(id NodeID)
	OnNodeDeleted(id NodeID)
	OnEdgeAdded(u, v NodeID)
	OnEdgeDeleted(u, v NodeID)
}

// ListenerFuncs adapts optional closures into a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	NodeAdded   func(id NodeID)
	NodeDeleted func(id NodeID)
	EdgeAdded   func(u, v NodeID)
	EdgeDeleted func(u, v NodeID)
}

// OnNodeAdded implements Listener.
func (f ListenerFuncs) OnNodeAdded(id NodeID) {
	if f.NodeAdded != nil {
		f.NodeAdded(id)
	}
}

// OnNodeDeleted implements Listener.
func (f ListenerFuncs) OnNodeDeleted(id NodeID) {
	if f.NodeDeleted != nil {
		f.NodeDeleted(id)
	}
}

// OnEdgeAdded implements Listener.
func (f ListenerFuncs) OnEdgeAdded(u, v NodeID) {
	if f.EdgeAdded != nil {
		f.EdgeAdded(u, v)
	}
}

// OnEdgeDeleted implements Listener.
func (f ListenerFuncs) OnEdgeDeleted(u, v NodeID) {
	if f.EdgeDeleted != nil {
		f.EdgeDeleted(u, v)
	}
}

// eventKind enumerates the four structural events.
type eventKind uint8

const (
	evNodeAdded eventKind = iota
	evNodeDeleted
	evEdgeAdded
	evEdgeDeleted
)

// event is a buffered notification, collected under the graph lock and
// delivered after it is released.
type event struct {
	kind eventKind
	u, v NodeID
}

type listenerEntry struct {
	id ListenerID
	l  Listener
}

// listenerRegistry is an ordered list of listeners with its own lock.
// Handles are small integers; removal is O(n) on the registry length,
// which stays tiny in practice.
type listenerRegistry struct {
	mu      sync.Mutex
	next    ListenerID
	entries []listenerEntry
}

func (r *listenerRegistry) add(l Listener) ListenerID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.entries = append(r.entries, listenerEntry{id: r.next, l: l})

	return r.next
}

func (r *listenerRegistry) remove(id ListenerID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := slices.IndexFunc(r.entries, func(e listenerEntry) bool { return e.id == id })
	if i < 0 {
		return false
	}
	r.entries = slices.Delete(r.entries, i, i+1)

	return true
}

// snapshot copies the current listeners so delivery does not hold r.mu.
func (r *listenerRegistry) snapshot() []Listener {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return nil
	}
	out := make([]Listener, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.l
	}

	return out
}

// dispatch delivers events to every listener, in order.
func (r *listenerRegistry) dispatch(events []event) {
	if len(events) == 0 {
		return
	}
	ls := r.snapshot()
	for _, ev := range events {
		for _, l := range ls {
			switch ev.kind {
			case evNodeAdded:
				l.OnNodeAdded(ev.u)
			case evNodeDeleted:
				l.OnNodeDeleted(ev.u)
			case evEdgeAdded:
				l.OnEdgeAdded(ev.u, ev.v)
			case evEdgeDeleted:
				l.OnEdgeDeleted(ev.u, ev.v)
			}
		}
	}
}

// AddListener registers l and returns its handle.
// Complexity: O(1) amortized.
func (g *UndiGraph) AddListener(l Listener) ListenerID { return g.listeners.add(l) }

// RemoveListener unregisters the listener with the given handle and reports
// whether it was registered.
func (g *UndiGraph) RemoveListener(id ListenerID) bool { return g.listeners.remove(id) }
