// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Neighbor and EdgeChange types, sentinel errors, options and the NewGraph constructor.
// Determinism:
//   - Node order and per-node neighbor order are insertion order.
// Concurrency:
//   - A single sync.RWMutex guards every map and order slice of a Graph.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
//
// Every rejected mutation returns one of these (usually wrapped in a *NodeError)
// and leaves the graph untouched.
var (
	// ErrEmptyLabel indicates that an operation received the empty string as a node label.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrNodeAlreadyExists indicates AddNode was called for a label that is already a node.
	ErrNodeAlreadyExists = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a node that does not exist.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSameStartAndEnd indicates an edge whose two endpoints are the same node.
	ErrSameStartAndEnd = errors.New("core: start node is same as end node")

	// ErrStartNodeMissing indicates the start endpoint of an edge is not a node.
	ErrStartNodeMissing = errors.New("core: start node does not exist")

	// ErrEndNodeMissing indicates the end endpoint of an edge is not a node.
	ErrEndNodeMissing = errors.New("core: end node does not exist")
)

// Operation names recorded in NodeError.Op.
const (
	OpAddNode    = "add_node"
	OpRemoveNode = "remove_node"
	OpCheckEdge  = "check_edge"
	OpAddEdge    = "add_edge"
	OpRemoveEdge = "remove_edge"
	OpNeighbors  = "neighbors"
)

// NodeError reports which node made an operation fail.
//
// Err is always one of the package sentinels, so callers can match with
// errors.Is and still recover the offending label with errors.As.
type NodeError struct {
	Op    string // operation name, one of the Op* constants
	Label string // the offending node label
	Err   error  // sentinel cause
}

// Error implements error.
func (e *NodeError) Error() string {
	return fmt.Sprintf("%v (op=%s, label=%q)", e.Err, e.Op, e.Label)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *NodeError) Unwrap() error { return e.Err }

func nodeErr(op, label string, err error) error {
	return &NodeError{Op: op, Label: label, Err: err}
}

// Neighbor is one entry of a node's neighbor map: the adjacent label and the edge cost.
type Neighbor struct {
	Label string
	Cost  int64
}

// EdgeChange tells whether AddEdge created a new edge or overwrote an existing one.
type EdgeChange int

const (
	// EdgeAdded means no edge existed between the endpoints before the call.
	EdgeAdded EdgeChange = iota + 1

	// EdgeUpdated means an existing edge had its cost overwritten.
	EdgeUpdated
)

// String returns "added" or "updated".
func (c EdgeChange) String() string {
	switch c {
	case EdgeAdded:
		return "added"
	case EdgeUpdated:
		return "updated"
	default:
		return fmt.Sprintf("EdgeChange(%d)", int(c))
	}
}

// adjacency is the neighbor map of a single node.
// costs holds label -> cost; order keeps the labels in insertion order.
type adjacency struct {
	costs map[string]int64
	order []string
}

func newAdjacency(capacity int) *adjacency {
	return &adjacency{
		costs: make(map[string]int64, capacity),
		order: make([]string, 0, capacity),
	}
}

// set writes cost for label and reports whether label was already present.
// An existing entry keeps its position in order.
func (a *adjacency) set(label string, cost int64) bool {
	_, existed := a.costs[label]
	a.costs[label] = cost
	if !existed {
		a.order = append(a.order, label)
	}

	return existed
}

// remove deletes label and reports whether it was present.
func (a *adjacency) remove(label string) bool {
	if _, ok := a.costs[label]; !ok {
		return false
	}
	delete(a.costs, label)
	a.order = removeLabel(a.order, label)

	return true
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithNodes pre-populates the graph with bare nodes. Duplicates and empty
// labels are ignored.
func WithNodes(labels ...string) GraphOption {
	return func(g *Graph) {
		for _, label := range labels {
			if label == "" {
				continue
			}
			if _, exists := g.nodes[label]; exists {
				continue
			}
			g.insertNode(label)
		}
	}
}

// Graph is an undirected, weighted graph stored as an adjacency map of
// adjacency maps (label -> neighbor -> cost).
//
// Invariants (held under mu at every exit of an exported method):
//   - Symmetry: nodes[u].costs[v] == nodes[v].costs[u] for every stored edge.
//   - No self-loops: a node never appears in its own neighbor map.
//   - numNodes == len(nodes) == len(order).
//   - numEdges equals the number of unordered stored pairs.
type Graph struct {
	mu sync.RWMutex

	nodes    map[string]*adjacency // label -> neighbor map
	order    []string              // node labels in insertion order
	numNodes int                   // tracked incrementally
	numEdges int                   // tracked incrementally
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	IsolatedCount int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)) plus whatever the options insert.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// insertNode registers a bare node. Caller holds the write lock and has
// checked that label is absent.
func (g *Graph) insertNode(label string) *adjacency {
	adj := newAdjacency(0)
	g.nodes[label] = adj
	g.order = append(g.order, label)
	g.numNodes++

	return adj
}

// removeLabel returns s without the first occurrence of label, reusing s's backing array.
func removeLabel(s []string, label string) []string {
	for i, v := range s {
		if v == label {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
