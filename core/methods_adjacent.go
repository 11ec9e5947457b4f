// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood and full-state APIs: Neighbors, Adjacency, Replace, Stats.
// Determinism:
//   - Neighbors() returns insertion order.
//   - Replace() orders nodes and neighbors by natural label order, since a map
//     carries no insertion order of its own.
// Concurrency:
//   - Neighbors/Adjacency/Stats hold the read lock; Replace holds the write lock.

package core

import (
	"sort"

	"github.com/maruel/natural"
)

// Neighbors returns the neighbors of label with their edge costs, in insertion order.
//
// Searches walk the graph exclusively through this method; the returned
// slice is a copy and may be retained.
//
// Errors:
//   - ErrNodeNotFound: label is not a node.
//
// Complexity: O(deg).
func (g *Graph) Neighbors(label string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.nodes[label]
	if !ok {
		return nil, nodeErr(OpNeighbors, label, ErrNodeNotFound)
	}

	out := make([]Neighbor, 0, len(adj.order))
	for _, nb := range adj.order {
		out = append(out, Neighbor{Label: nb, Cost: adj.costs[nb]})
	}

	return out, nil
}

// Adjacency returns a deep copy of the adjacency map (label -> neighbor -> cost).
//
// This is the full-state accessor used by persistence: the result is exactly
// the serialized layout. Every node appears as a key, isolated nodes with an
// empty (non-nil) inner map.
//
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[string]map[string]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]int64, len(g.nodes))
	for label, adj := range g.nodes {
		inner := make(map[string]int64, len(adj.costs))
		for nb, cost := range adj.costs {
			inner[nb] = cost
		}
		out[label] = inner
	}

	return out
}

// Replace discards the current contents and loads data verbatim.
//
// data is trusted to already satisfy the graph invariants (symmetry, no
// self-loops); it is copied, not retained. Node and neighbor order are set to
// natural label order ("N2" before "N10"). The node count is reset to len(data).
//
// Complexity: O(V log V + E log deg).
func (g *Graph) Replace(data map[string]map[string]int64) {
	nodes := make(map[string]*adjacency, len(data))
	order := make([]string, 0, len(data))
	pairs := 0
	for label, inner := range data {
		adj := newAdjacency(len(inner))
		for nb, cost := range inner {
			adj.costs[nb] = cost
			adj.order = append(adj.order, nb)
		}
		sort.Sort(natural.StringSlice(adj.order))
		pairs += len(inner)
		nodes[label] = adj
		order = append(order, label)
	}
	sort.Sort(natural.StringSlice(order))

	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = nodes
	g.order = order
	g.numNodes = len(data)
	g.numEdges = pairs / 2
}

// Stats returns a snapshot of node, edge and isolated-node counts.
// Complexity: O(V).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: g.numNodes,
		EdgeCount: g.numEdges,
	}
	for _, adj := range g.nodes {
		if len(adj.order) == 0 {
			stats.IsolatedCount++
		}
	}

	return &stats
}
