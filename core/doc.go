// Package core provides the thread-safe in-memory graphs every other lvpgm
// package builds on, with a small, composable API surface.
//
// Two graph types live here:
//
//   - UndiGraph: undirected simple graph over NodeID (no self-loops, no
//     parallel edges). Used for moral graphs, triangulated graphs, clique
//     graphs and junction trees.
//   - DiGraph: directed graph over NodeID. Used for Bayesian-network
//     structures (see Moralize) and for the dependency DAG of schedules.
//
// Both store adjacency as nested maps (adj[u][v] = struct{}{}) guarded by a
// single sync.RWMutex, so concurrent reads are safe and writes are
// serialized. Enumerations (Nodes, Edges, Neighbours, Arcs) are always
// sorted ascending: two runs on the same input produce the same output.
//
// Configuration Options (GraphOption):
//
//	– WithCapacity(n)     pre-size the node catalog.
//	– WithDegreeHint(d)   pre-size each adjacency bucket.
//
// Core Methods (UndiGraph):
//
//	// Node lifecycle
//	AddNode() NodeID                  // O(1), smallest free id
//	AddNodeWithID(id) error           // O(1), ErrDuplicateNode
//	EnsureNode(id)                    // O(1), idempotent
//	EraseNode(id) error               // O(deg·log deg)
//
//	// Edge lifecycle
//	AddEdge(u,v) error                // O(1), duplicate is a no-op
//	EraseEdge(u,v) error              // O(1)
//	ExistsEdge(u,v) bool              // O(1)
//
//	// Query
//	Neighbours(id) ([]NodeID, error)  // sorted
//	NeighbourSet(id) (NodeSet, error)
//	IsComplete(s NodeSet) bool        // O(|s|²)
//	Nodes() / Edges() / Size() / SizeEdges()
//
//	// Maintenance
//	Clone() *UndiGraph                // deep copy, listeners not copied
//	Clear()
//
// Listeners:
//
// AddListener registers a Listener (or a ListenerFuncs value) that receives
// OnNodeAdded/OnNodeDeleted/OnEdgeAdded/OnEdgeDeleted after each mutation.
// Callbacks run after the graph lock is released, so a listener may read the
// graph it observes.
//
// Graph algorithms shipped with the types:
//
//	Moralize(dag)                     // DAG → moral UndiGraph
//	MaximumCardinalitySearch(g)       // elimination order, PEO when chordal
//	IsPerfectEliminationOrder(g, o)
//	IsChordal(g)
//	ConnectedComponents(g)            // via gonum graph/topo
//	InducedSubgraph(g, keep)
//
// Errors:
//
//	ErrNodeNotFound      – missing node
//	ErrDuplicateNode     – AddNodeWithID on a taken id
//	ErrEdgeNotFound      – missing edge/arc
//	ErrSelfLoop          – u == v
//	ErrMissingDomainSize – DomainSizes.Check found an uncovered node
//	ErrBadDomainSize     – non-positive domain size
package core
