// Package graphops is an in-memory, undirected, weighted graph with three
// searches over it and an interactive shell in front.
//
// What is in the module?
//
//	core/      - the graph store: nodes, symmetric weighted edges, no self-loops
//	bfs/       - breadth-first search, ignores costs, reports exploration order
//	dfs/       - depth-first search with an explicit stack
//	ucs/       - uniform-cost search over a cost-ordered queue
//	builder/   - deterministic graph fixtures (paths, grids, random sparse…)
//	internal/  - config, logging, JSON store, metrics, rendering and the shell
//	cmd/graphops - the command-line entry point
//	examples/  - small runnable programs
//
// Searches read the graph only through core.Graph.Neighbors and never mutate
// it. A target that cannot be reached is a normal result (Found == false);
// errors are reserved for invalid input, cancellation and hook failures.
//
// Quick ASCII example:
//
//	    A─1─B
//	    │   │
//	    4   2
//	    │   │
//	    C─1─D
//
//	g := core.NewGraph(core.WithNodes("A", "B", "C", "D"))
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("A", "C", 4)
//	g.AddEdge("B", "D", 2)
//	g.AddEdge("C", "D", 1)
//	res, _ := ucs.UCS(g, "A", "D") // Path [A B D], Cost 3
//
//	go install github.com/santhosh-kumar-karthikeyan/graph-ops/cmd/graphops@latest
package graphops
