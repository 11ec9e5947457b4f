// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries: AddNode/RemoveNode/HasNode/Nodes/NodeCount.
// Determinism:
//   - Nodes() returns labels in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddNode inserts a new node, optionally connected to initial neighbors.
//
// Implementation:
//   - Stage 1: Validate the label and every neighbor label before touching the maps.
//   - Stage 2: Reject an existing label with ErrNodeAlreadyExists.
//   - Stage 3: Create the node; create each missing neighbor as a bare node.
//   - Stage 4: Record every neighbor edge in both directions.
//
// Behavior highlights:
//   - This is the only operation that creates nodes implicitly (the neighbors).
//   - Repeating a neighbor label keeps the last cost, as a map literal would.
//   - On any error the graph is unchanged.
//
// Errors:
//   - ErrEmptyLabel: label or a neighbor label is "".
//   - ErrSameStartAndEnd: a neighbor equals label.
//   - ErrNodeAlreadyExists: label is already a node.
//
// Complexity:
//   - Time O(k) for k neighbors, Space O(k).
func (g *Graph) AddNode(label string, neighbors ...Neighbor) error {
	if label == "" {
		return nodeErr(OpAddNode, label, ErrEmptyLabel)
	}
	for _, nb := range neighbors {
		if nb.Label == "" {
			return nodeErr(OpAddNode, nb.Label, ErrEmptyLabel)
		}
		if nb.Label == label {
			return nodeErr(OpAddNode, label, ErrSameStartAndEnd)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[label]; exists {
		return nodeErr(OpAddNode, label, ErrNodeAlreadyExists)
	}

	adj := g.insertNode(label)
	for _, nb := range neighbors {
		other, ok := g.nodes[nb.Label]
		if !ok {
			other = g.insertNode(nb.Label)
		}
		if !adj.set(nb.Label, nb.Cost) {
			g.numEdges++
		}
		other.set(label, nb.Cost)
	}

	return nil
}

// RemoveNode deletes a node and strips it from every other node's neighbor map.
//
// Implementation:
//   - Stage 1: Reject a missing label with ErrNodeNotFound.
//   - Stage 2: Scan all remaining nodes and delete label from their neighbor maps.
//   - Stage 3: Delete the node itself and decrement the node count.
//
// The scan covers every node rather than only label's own neighbors, so a
// graph loaded through Replace with asymmetric entries is still cleaned.
//
// Complexity:
//   - Time O(V + deg), Space O(1).
func (g *Graph) RemoveNode(label string) error {
	if label == "" {
		return nodeErr(OpRemoveNode, label, ErrEmptyLabel)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	adj, exists := g.nodes[label]
	if !exists {
		return nodeErr(OpRemoveNode, label, ErrNodeNotFound)
	}

	for _, other := range g.order {
		if other == label {
			continue
		}
		g.nodes[other].remove(label)
	}
	g.numEdges -= len(adj.order)

	delete(g.nodes, label)
	g.order = removeLabel(g.order, label)
	g.numNodes--

	return nil
}

// HasNode reports whether label is a node. The empty label is never a node.
// Complexity: O(1).
func (g *Graph) HasNode(label string) bool {
	if label == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[label]

	return ok
}

// Nodes returns all node labels in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the incrementally tracked number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numNodes
}
