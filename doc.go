// Package lvpgm is the graph and table core of a probabilistic graphical
// model engine: everything between a model's structure and the message
// passing that runs on it.
//
// What is inside?
//
//	core/            UndiGraph, DiGraph, NodeSet, DomainSizes, listeners,
//	                 moral graph, chordality helpers, connected components
//	bfs/, dfs/       traversals, tree paths, topological sort
//	builder/         deterministic graph fixtures and domain-size maps
//	elimination/     elimination sequence strategies (min-weight, min-fill,
//	                 min-degree, weighted-fill; ordered; partially ordered)
//	jointree/        clique graphs, incremental junction-tree strategy,
//	                 join-tree verification, spanning join trees
//	triangulation/   Static / Ordered / PartialOrdered triangulations with
//	                 minimality, elimination tree, junction tree and
//	                 maximal prime subgraph tree
//	tensor/          variables, dense/sparse/ICI/aggregator tables,
//	                 combination and projection
//	schedule/        deferred table operations, sequential and parallel
//	                 schedulers with static cost and memory analysis
//	config/, logging/   layered configuration and zap loggers
//
// Typical flow:
//
//	moral := core.Moralize(dag)
//	tr := triangulation.NewStatic(triangulation.WithMinimality(true))
//	_ = tr.SetGraph(moral, domains)
//	jt, _ := tr.JunctionTree()          // cliques host tables
//	s := schedule.New()                 // combine/project along the tree
//	_ = schedule.NewParallel(schedule.WithThreads(4)).Execute(ctx, s)
//
// A complete run over the Asia network lives in examples/junction_tree.
//
//	go get github.com/katalvlaran/lvpgm
package lvpgm
