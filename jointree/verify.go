// SPDX-License-Identifier: MIT
//
// File: verify.go
// Role: Structural checks of a clique graph: join-tree shape, running
// intersection and coverage of an original graph.

package jointree

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpgm/core"
	"github.com/katalvlaran/lvpgm/dfs"
)

// IsJoinTree reports whether cg is a forest whose every separator equals the
// intersection of its endpoint cliques.
//
// Implementation:
//   - Stage 1: A graph is a forest iff |E| = |V| - #components.
//   - Stage 2: Compare each stored separator with a fresh intersection.
//
// Complexity: O(V + E·k) for cliques of size k.
func (cg *CliqueGraph) IsJoinTree() bool {
	return cg.checkJoinTree() == nil
}

func (cg *CliqueGraph) checkJoinTree() error {
	comps := core.ConnectedComponents(cg.topo)
	if cg.SizeEdges() != cg.Size()-len(comps) {
		return errors.Wrapf(ErrNotJoinTree, "%d edges over %d cliques in %d trees",
			cg.SizeEdges(), cg.Size(), len(comps))
	}
	for _, e := range cg.Edges() {
		want := cg.cliques[e.U].Intersection(cg.cliques[e.V])
		if !want.Equal(cg.seps[e]) {
			return errors.Wrapf(ErrNotJoinTree, "edge %s: separator %s, want %s", e, cg.seps[e], want)
		}
	}

	return nil
}

// HasRunningIntersection reports whether, for every node v, the cliques
// containing v induce a connected subgraph of cg. On a join tree this is
// equivalent to: every clique on the path between two cliques holding v
// holds v too.
//
// Complexity: O(N·(V + E)) for N distinct nodes.
func (cg *CliqueGraph) HasRunningIntersection() bool {
	return cg.checkRunningIntersection() == nil
}

func (cg *CliqueGraph) checkRunningIntersection() error {
	holders := make(map[core.NodeID][]core.NodeID)
	for _, id := range cg.Cliques() {
		for _, v := range cg.cliques[id].Sorted() {
			holders[v] = append(holders[v], id)
		}
	}
	for _, v := range sortedHolderKeys(holders) {
		ids := holders[v]
		if len(ids) < 2 {
			continue
		}
		keep := func(c core.NodeID) bool { return cg.cliques[c].Contains(v) }
		reached, err := dfs.Reachable(cg.topo, ids[0], keep)
		if err != nil {
			return errors.Wrapf(err, "node %d", v)
		}
		if reached.Size() != len(ids) {
			return errors.Wrapf(ErrRunningIntersection, "node %d: %d of %d cliques connected",
				v, reached.Size(), len(ids))
		}
	}

	return nil
}

// CoversGraph reports whether every node and every edge of g lies inside at
// least one clique of cg.
//
// Complexity: O((V + E)·C).
func (cg *CliqueGraph) CoversGraph(g *core.UndiGraph) bool {
	return cg.checkCovers(g) == nil
}

func (cg *CliqueGraph) checkCovers(g *core.UndiGraph) error {
	for _, v := range g.Nodes() {
		if _, err := cg.ContainerClique(core.NewNodeSet(v)); err != nil {
			return errors.Wrapf(ErrNotCovering, "node %d", v)
		}
	}
	for _, e := range g.Edges() {
		if _, err := cg.ContainerClique(core.NewNodeSet(e.U, e.V)); err != nil {
			return errors.Wrapf(ErrNotCovering, "edge %s", e)
		}
	}

	return nil
}

// VerifyJunctionTree runs every check against the original graph g and
// returns the first violation (ErrNotJoinTree, ErrRunningIntersection,
// ErrNotCovering), or nil.
func (cg *CliqueGraph) VerifyJunctionTree(g *core.UndiGraph) error {
	if err := cg.checkJoinTree(); err != nil {
		return err
	}
	if err := cg.checkRunningIntersection(); err != nil {
		return err
	}

	return cg.checkCovers(g)
}

func sortedHolderKeys(m map[core.NodeID][]core.NodeID) []core.NodeID {
	s := make(core.NodeSet, len(m))
	for v := range m {
		s.Insert(v)
	}

	return s.Sorted()
}
