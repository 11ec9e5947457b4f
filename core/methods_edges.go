// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: CheckEdge/AddEdge/RemoveEdge/HasEdge/Cost/EdgeCount.
// Determinism:
//   - A new edge is appended to both endpoints' neighbor order; an update keeps positions.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// CheckEdge classifies the endpoint pair of a prospective edge.
//
// Checks run in a fixed order and the first failure wins:
//  1. start == end        -> ErrSameStartAndEnd
//  2. start is not a node -> ErrStartNodeMissing
//  3. end is not a node   -> ErrEndNodeMissing
//
// A nil return means both endpoints exist and differ; it says nothing about
// whether an edge is currently stored between them.
//
// Complexity: O(1).
func (g *Graph) CheckEdge(start, end string) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.checkEdge(OpCheckEdge, start, end)
}

// checkEdge is CheckEdge without locking; caller holds mu.
func (g *Graph) checkEdge(op, start, end string) error {
	if start == end {
		return nodeErr(op, start, ErrSameStartAndEnd)
	}
	if _, ok := g.nodes[start]; !ok {
		return nodeErr(op, start, ErrStartNodeMissing)
	}
	if _, ok := g.nodes[end]; !ok {
		return nodeErr(op, end, ErrEndNodeMissing)
	}

	return nil
}

// AddEdge stores an undirected edge of the given cost between two existing nodes.
//
// The cost is written in both directions unconditionally: an existing edge is
// overwritten and EdgeUpdated is returned, otherwise EdgeAdded.
//
// Errors (from CheckEdge, graph unchanged):
//   - ErrSameStartAndEnd, ErrStartNodeMissing, ErrEndNodeMissing.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(start, end string, cost int64) (EdgeChange, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEdge(OpAddEdge, start, end); err != nil {
		return 0, err
	}

	existed := g.nodes[start].set(end, cost)
	g.nodes[end].set(start, cost)
	if existed {
		return EdgeUpdated, nil
	}
	g.numEdges++

	return EdgeAdded, nil
}

// RemoveEdge deletes the edge between start and end, if any.
//
// Removing an edge that is not stored, between two distinct existing nodes,
// succeeds without changing anything.
//
// Errors (from CheckEdge, graph unchanged):
//   - ErrSameStartAndEnd, ErrStartNodeMissing, ErrEndNodeMissing.
//
// Complexity: O(deg) for the neighbor-order splice.
func (g *Graph) RemoveEdge(start, end string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEdge(OpRemoveEdge, start, end); err != nil {
		return err
	}

	removed := g.nodes[start].remove(end)
	g.nodes[end].remove(start)
	if removed {
		g.numEdges--
	}

	return nil
}

// HasEdge reports whether an edge is stored between start and end.
// Complexity: O(1).
func (g *Graph) HasEdge(start, end string) bool {
	_, ok := g.Cost(start, end)

	return ok
}

// Cost returns the cost of the edge between start and end and whether it exists.
// Complexity: O(1).
func (g *Graph) Cost(start, end string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.nodes[start]
	if !ok {
		return 0, false
	}
	cost, ok := adj.costs[end]

	return cost, ok
}

// EdgeCount returns the number of stored undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}
