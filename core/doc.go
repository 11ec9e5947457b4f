// Package core provides the in-memory graph store: an undirected, weighted
// graph kept as an adjacency map of adjacency maps (label -> neighbor -> cost).
//
// The store owns every invariant of the graph, so all mutation goes through
// its methods:
//
//   - Symmetry: an edge u–v of cost c is stored as adj[u][v] == adj[v][u] == c.
//   - No self-loops: AddEdge(x, x, …) fails with ErrSameStartAndEnd.
//   - Node count is tracked incrementally and always equals the number of nodes.
//   - Edges connect existing nodes only; AddNode with initial neighbors is the
//     one operation that creates missing neighbors as bare nodes.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(label string, neighbors ...Neighbor) error    // O(k)
//	RemoveNode(label string) error                        // O(V + deg)
//	HasNode(label string) bool                            // O(1)
//
//	// Edge lifecycle
//	CheckEdge(start, end string) error                    // O(1)
//	AddEdge(start, end string, cost int64) (EdgeChange, error) // O(1), update-in-place
//	RemoveEdge(start, end string) error                   // O(deg), idempotent
//
//	// Queries
//	Neighbors(label string) ([]Neighbor, error)           // insertion order
//	Adjacency() map[string]map[string]int64               // deep copy, persistence layout
//	Replace(map[string]map[string]int64)                  // trusted full-state load
//
// Errors:
//
//	ErrEmptyLabel        - label is the empty string.
//	ErrNodeAlreadyExists - AddNode on an existing label.
//	ErrNodeNotFound      - RemoveNode/Neighbors on a missing label.
//	ErrSameStartAndEnd   - edge endpoints are equal.
//	ErrStartNodeMissing  - edge start is not a node.
//	ErrEndNodeMissing    - edge end is not a node.
//
// Rejected operations return the sentinel wrapped in a *NodeError carrying the
// offending label and never partially mutate the graph.
//
// Determinism:
//
//	Nodes() and Neighbors() iterate in insertion order, so BFS, DFS and UCS
//	expand neighbors in the order edges were added and their results are
//	reproducible run to run.
//
// Concurrency:
//
//	A single sync.RWMutex guards the graph. Searches only read through
//	Neighbors and never mutate the store.
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
package core
