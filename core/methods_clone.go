// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves node order and every neighbor order.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the graph, including insertion orders and counters.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.order = make([]string, len(g.order))
	copy(clone.order, g.order)
	for label, adj := range g.nodes {
		cp := newAdjacency(len(adj.order))
		for _, nb := range adj.order {
			cp.costs[nb] = adj.costs[nb]
			cp.order = append(cp.order, nb)
		}
		clone.nodes[label] = cp
	}
	clone.numNodes = g.numNodes
	clone.numEdges = g.numEdges

	return clone
}

// Clear removes every node and edge.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[string]*adjacency)
	g.order = nil
	g.numNodes = 0
	g.numEdges = 0
}
