// SPDX-License-Identifier: MIT
//
// File: clique_graph.go
// Role: CliqueGraph: undirected graph of clique ids carrying a node set per
// clique and a separator per edge.
//
// Invariants:
//   - Every edge separator equals the intersection of its endpoint cliques.
//   - Cliques() / Edges() / Neighbours() enumerate in ascending order.

package jointree

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvpgm/bfs"
	"github.com/katalvlaran/lvpgm/core"
)

// CliqueGraph is a graph whose nodes are cliques. The zero value is not
// usable; call NewCliqueGraph. Not safe for concurrent mutation.
type CliqueGraph struct {
	topo    *core.UndiGraph
	cliques map[core.NodeID]core.NodeSet
	seps    map[core.Edge]core.NodeSet
}

// NewCliqueGraph returns an empty clique graph.
func NewCliqueGraph() *CliqueGraph {
	return &CliqueGraph{
		topo:    core.NewUndiGraph(),
		cliques: make(map[core.NodeID]core.NodeSet),
		seps:    make(map[core.Edge]core.NodeSet),
	}
}

// AddClique inserts a clique under the next free id and returns the id.
func (cg *CliqueGraph) AddClique(nodes core.NodeSet) core.NodeID {
	id := cg.topo.AddNode()
	cg.cliques[id] = nodes.Clone()

	return id
}

// AddCliqueWithID inserts a clique under id.
//
// Errors:
//   - ErrDuplicateClique: id already in use.
func (cg *CliqueGraph) AddCliqueWithID(id core.NodeID, nodes core.NodeSet) error {
	if err := cg.topo.AddNodeWithID(id); err != nil {
		return errors.Wrapf(ErrDuplicateClique, "AddCliqueWithID(%d)", id)
	}
	cg.cliques[id] = nodes.Clone()

	return nil
}

// EraseClique removes clique id with its incident edges.
func (cg *CliqueGraph) EraseClique(id core.NodeID) error {
	nbrs, err := cg.topo.Neighbours(id)
	if err != nil {
		return errors.Wrapf(ErrUnknownClique, "EraseClique(%d)", id)
	}
	for _, n := range nbrs {
		delete(cg.seps, core.NewEdge(id, n))
	}
	_ = cg.topo.EraseNode(id)
	delete(cg.cliques, id)

	return nil
}

// SetClique replaces the node set of clique id and refreshes the separators
// of its incident edges.
func (cg *CliqueGraph) SetClique(id core.NodeID, nodes core.NodeSet) error {
	nbrs, err := cg.topo.Neighbours(id)
	if err != nil {
		return errors.Wrapf(ErrUnknownClique, "SetClique(%d)", id)
	}
	cg.cliques[id] = nodes.Clone()
	for _, n := range nbrs {
		cg.seps[core.NewEdge(id, n)] = cg.cliques[id].Intersection(cg.cliques[n])
	}

	return nil
}

// AddEdge links c1 and c2; the separator is their intersection. Re-adding
// an existing edge is a no-op.
//
// Errors:
//   - ErrOperationNotAllowed: unknown endpoint or c1 == c2.
func (cg *CliqueGraph) AddEdge(c1, c2 core.NodeID) error {
	if err := cg.topo.AddEdge(c1, c2); err != nil {
		return errors.Wrapf(ErrOperationNotAllowed, "AddEdge(%d,%d): %v", c1, c2, err)
	}
	cg.seps[core.NewEdge(c1, c2)] = cg.cliques[c1].Intersection(cg.cliques[c2])

	return nil
}

// EraseEdge unlinks c1 and c2.
//
// Errors:
//   - ErrOperationNotAllowed: no such edge.
func (cg *CliqueGraph) EraseEdge(c1, c2 core.NodeID) error {
	if err := cg.topo.EraseEdge(c1, c2); err != nil {
		return errors.Wrapf(ErrOperationNotAllowed, "EraseEdge(%d,%d): %v", c1, c2, err)
	}
	delete(cg.seps, core.NewEdge(c1, c2))

	return nil
}

// ExistsClique reports whether id is a clique of cg.
func (cg *CliqueGraph) ExistsClique(id core.NodeID) bool { return cg.topo.ExistsNode(id) }

// ExistsEdge reports whether c1 and c2 are linked.
func (cg *CliqueGraph) ExistsEdge(c1, c2 core.NodeID) bool { return cg.topo.ExistsEdge(c1, c2) }

// Clique returns a copy of the node set of clique id.
func (cg *CliqueGraph) Clique(id core.NodeID) (core.NodeSet, error) {
	c, ok := cg.cliques[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownClique, "Clique(%d)", id)
	}

	return c.Clone(), nil
}

// Separator returns a copy of the separator of edge {c1,c2}.
func (cg *CliqueGraph) Separator(c1, c2 core.NodeID) (core.NodeSet, error) {
	s, ok := cg.seps[core.NewEdge(c1, c2)]
	if !ok {
		return nil, errors.Wrapf(ErrOperationNotAllowed, "Separator(%d,%d): no such edge", c1, c2)
	}

	return s.Clone(), nil
}

// Cliques returns the clique ids in ascending order.
func (cg *CliqueGraph) Cliques() []core.NodeID { return cg.topo.Nodes() }

// Edges returns the clique edges sorted by (U,V).
func (cg *CliqueGraph) Edges() []core.Edge { return cg.topo.Edges() }

// Neighbours returns the cliques adjacent to id in ascending order.
func (cg *CliqueGraph) Neighbours(id core.NodeID) ([]core.NodeID, error) {
	nbrs, err := cg.topo.Neighbours(id)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownClique, "Neighbours(%d)", id)
	}

	return nbrs, nil
}

// ContainerClique returns the smallest clique id whose node set includes nodes.
//
// Errors:
//   - ErrNoContainerClique.
//
// Complexity: O(C·|nodes|).
func (cg *CliqueGraph) ContainerClique(nodes core.NodeSet) (core.NodeID, error) {
	for _, id := range cg.Cliques() {
		if nodes.IsSubsetOf(cg.cliques[id]) {
			return id, nil
		}
	}

	return 0, errors.Wrapf(ErrNoContainerClique, "ContainerClique(%s)", nodes)
}

// Size returns the number of cliques.
func (cg *CliqueGraph) Size() int { return cg.topo.Size() }

// SizeEdges returns the number of clique edges.
func (cg *CliqueGraph) SizeEdges() int { return cg.topo.SizeEdges() }

// Clone returns a deep copy.
func (cg *CliqueGraph) Clone() *CliqueGraph {
	out := &CliqueGraph{
		topo:    cg.topo.Clone(),
		cliques: make(map[core.NodeID]core.NodeSet, len(cg.cliques)),
		seps:    make(map[core.Edge]core.NodeSet, len(cg.seps)),
	}
	for id, c := range cg.cliques {
		out.cliques[id] = c.Clone()
	}
	for e, s := range cg.seps {
		out.seps[e] = s.Clone()
	}

	return out
}

// Topology returns a copy of the underlying graph of clique ids.
func (cg *CliqueGraph) Topology() *core.UndiGraph { return cg.topo.Clone() }

// Path returns the clique ids on a fewest-edges path from c1 to c2, both
// included. On a join tree this is the unique tree path.
//
// Errors:
//   - ErrUnknownClique: c1 absent.
//   - ErrOperationNotAllowed: c2 absent or in another tree.
func (cg *CliqueGraph) Path(c1, c2 core.NodeID) ([]core.NodeID, error) {
	if !cg.topo.ExistsNode(c1) {
		return nil, errors.Wrapf(ErrUnknownClique, "Path(%d,%d)", c1, c2)
	}
	path, err := bfs.ShortestPath(cg.topo, c1, c2)
	if err != nil {
		return nil, errors.Wrapf(ErrOperationNotAllowed, "Path(%d,%d): %v", c1, c2, err)
	}

	return path, nil
}

// Contract merges clique drop into clique keep: keep becomes the union of
// both node sets, inherits every other neighbour of drop, and drop is
// removed. The two cliques need not be adjacent.
func (cg *CliqueGraph) Contract(keep, drop core.NodeID) error {
	if keep == drop {
		return errors.Wrapf(ErrOperationNotAllowed, "Contract(%d,%d)", keep, drop)
	}
	if !cg.ExistsClique(keep) {
		return errors.Wrapf(ErrUnknownClique, "Contract(%d,%d): clique %d", keep, drop, keep)
	}
	nbrs, err := cg.topo.Neighbours(drop)
	if err != nil {
		return errors.Wrapf(ErrUnknownClique, "Contract(%d,%d): clique %d", keep, drop, drop)
	}

	merged := cg.cliques[keep].Union(cg.cliques[drop])
	if err = cg.EraseClique(drop); err != nil {
		return err
	}
	if err = cg.SetClique(keep, merged); err != nil {
		return err
	}
	for _, n := range nbrs {
		if n != keep {
			if err = cg.AddEdge(keep, n); err != nil {
				return err
			}
		}
	}

	return nil
}
