// SPDX-License-Identifier: MIT
//
// File: strategy.go
// Role: Junction tree strategies: contract, options and the incremental
// builder fed one eliminated clique at a time.

package jointree

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpgm/core"
)

// Source is the component able to run the eliminations that feed a
// Strategy; JunctionTree and CreatedClique call Triangulate to complete a
// partial run. Triangulate must be idempotent.
type Source interface {
	Triangulate() error
}

// Strategy assembles a junction tree while the nodes of a graph are
// eliminated.
type Strategy interface {
	// Reset drops every clique and mapping; the source and options are kept.
	Reset()

	// AddEliminatedClique records that eliminating node created clique
	// ({node} ∪ its neighbours at elimination time).
	AddEliminatedClique(node core.NodeID, clique core.NodeSet) error

	// JunctionTree returns the tree built so far, completing the source
	// first. The returned graph belongs to the strategy: do not modify it.
	JunctionTree() (*CliqueGraph, error)

	// CreatedClique returns the id of the clique created by eliminating node.
	CreatedClique(node core.NodeID) (core.NodeID, error)

	// CreatedCliques returns a copy of the node → clique id mapping.
	CreatedCliques() (map[core.NodeID]core.NodeID, error)

	// SetSource attaches the component completing the eliminations.
	SetSource(src Source)

	// SetSingleTree toggles linking of the forest into a single tree.
	SetSingleTree(on bool)

	// NewStrategy returns a fresh strategy with the same options and no source.
	NewStrategy() Strategy
}

// Option configures an Incremental strategy.
type Option func(*options)

type options struct {
	singleTree bool
}

// WithSingleTree links every root clique to the root created last, with an
// empty separator, so that a disconnected graph yields one tree instead of
// a forest.
func WithSingleTree() Option {
	return func(o *options) { o.singleTree = true }
}

// Incremental builds the junction tree from eliminated cliques without ever
// recomputing it.
//
// For clique C_X created by X its separator is S_X = C_X \ {X}. A clique
// stays pending until the first node of S_X is eliminated: eliminating Y
// links every pending clique whose separator holds Y to C_Y. When C_Y equals
// the separator of one of those children, C_Y is not materialised: Y maps to
// the child, which takes over S_Y and C_Y's other children.
type Incremental struct {
	opts    options
	src     Source
	tree    *CliqueGraph
	created map[core.NodeID]core.NodeID
	pending map[core.NodeID]core.NodeSet // separator node -> pending clique ids
	seps    map[core.NodeID]core.NodeSet // pending clique id -> separator
	roots   []core.NodeID
	joined  bool
}

var _ Strategy = (*Incremental)(nil)

// NewIncremental returns an empty incremental strategy.
func NewIncremental(opts ...Option) *Incremental {
	s := &Incremental{}
	for _, opt := range opts {
		if opt != nil {
			opt(&s.opts)
		}
	}
	s.Reset()

	return s
}

// Reset drops every clique and mapping.
func (s *Incremental) Reset() {
	s.tree = NewCliqueGraph()
	s.created = make(map[core.NodeID]core.NodeID)
	s.pending = make(map[core.NodeID]core.NodeSet)
	s.seps = make(map[core.NodeID]core.NodeSet)
	s.roots = nil
	s.joined = false
}

// SetSource attaches the component completing the eliminations.
func (s *Incremental) SetSource(src Source) { s.src = src }

// SetSingleTree toggles forest joining (see WithSingleTree).
func (s *Incremental) SetSingleTree(on bool) { s.opts.singleTree = on }

// NewStrategy returns a fresh Incremental with the same options.
func (s *Incremental) NewStrategy() Strategy {
	return NewIncremental(func(o *options) { *o = s.opts })
}

// AddEliminatedClique records the clique created by eliminating node.
//
// Implementation:
//   - Stage 1: Collect the pending cliques whose separator holds node; they
//     are children of the new clique.
//   - Stage 2: If a child's separator equals the new clique, absorb: node
//     maps to that child (smallest id first).
//   - Stage 3: Otherwise add the clique under id node and link the children.
//   - Stage 4: The surviving clique becomes pending on S = clique \ {node},
//     or a root when S is empty.
//
// Errors:
//   - ErrBadClique: node not in clique, or node already reported.
//
// Complexity: O(c·k) for c children and cliques of size k.
func (s *Incremental) AddEliminatedClique(node core.NodeID, clique core.NodeSet) error {
	if !clique.Contains(node) {
		return errors.Wrapf(ErrBadClique, "AddEliminatedClique(%d): clique %s misses the node", node, clique)
	}
	if _, dup := s.created[node]; dup {
		return errors.Wrapf(ErrBadClique, "AddEliminatedClique(%d): already eliminated", node)
	}

	children := s.pending[node].Sorted()
	childSeps := make(map[core.NodeID]core.NodeSet, len(children))
	for _, c := range children {
		childSeps[c] = s.seps[c]
		for v := range s.seps[c] {
			s.pending[v].Erase(c)
		}
		delete(s.seps, c)
	}
	delete(s.pending, node)

	host, absorbed := node, false
	for _, c := range children {
		if childSeps[c].Equal(clique) {
			host, absorbed = c, true
			break
		}
	}
	if !absorbed {
		if err := s.tree.AddCliqueWithID(node, clique); err != nil {
			return errors.Wrapf(ErrBadClique, "AddEliminatedClique(%d): %v", node, err)
		}
	}
	for _, c := range children {
		if c != host {
			if err := s.tree.AddEdge(host, c); err != nil {
				return errors.Wrapf(err, "AddEliminatedClique(%d)", node)
			}
		}
	}
	s.created[node] = host

	sep := clique.Clone()
	sep.Erase(node)
	if sep.Size() == 0 {
		s.roots = append(s.roots, host)
		return nil
	}
	s.seps[host] = sep
	for v := range sep {
		if s.pending[v] == nil {
			s.pending[v] = core.NewNodeSet()
		}
		s.pending[v].Insert(host)
	}

	return nil
}

// JunctionTree completes the source, joins the forest when configured, and
// returns the tree.
func (s *Incremental) JunctionTree() (*CliqueGraph, error) {
	if err := s.complete(); err != nil {
		return nil, err
	}
	if s.opts.singleTree && !s.joined && len(s.roots) > 1 {
		last := s.roots[len(s.roots)-1]
		for _, r := range s.roots[:len(s.roots)-1] {
			if err := s.tree.AddEdge(r, last); err != nil {
				return nil, errors.Wrap(err, "JunctionTree")
			}
		}
		s.joined = true
	}

	return s.tree, nil
}

// CreatedClique returns the id of the clique created by eliminating node.
//
// Errors:
//   - ErrUnknownNode: node never eliminated.
func (s *Incremental) CreatedClique(node core.NodeID) (core.NodeID, error) {
	if err := s.complete(); err != nil {
		return 0, err
	}
	id, ok := s.created[node]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownNode, "CreatedClique(%d)", node)
	}

	return id, nil
}

// CreatedCliques returns a copy of the node → clique mapping.
func (s *Incremental) CreatedCliques() (map[core.NodeID]core.NodeID, error) {
	if err := s.complete(); err != nil {
		return nil, err
	}
	out := make(map[core.NodeID]core.NodeID, len(s.created))
	for k, v := range s.created {
		out[k] = v
	}

	return out, nil
}

// Roots returns the root clique ids in creation order.
func (s *Incremental) Roots() []core.NodeID {
	out := make([]core.NodeID, len(s.roots))
	copy(out, s.roots)

	return out
}

func (s *Incremental) complete() error {
	if s.src == nil {
		return nil
	}

	return errors.Wrap(s.src.Triangulate(), "jointree: completing source")
}
