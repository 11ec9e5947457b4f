// Package ucs implements uniform-cost search (UCS) on core.Graph.
//
// UCS finds the minimum-cost path between two nodes of a graph with
// non-negative edge costs. It is Dijkstra's algorithm stopped at the target,
// with each queue entry carrying the path that produced it.
//
// Algorithm:
//
//   - Both endpoints are validated before any traversal.
//   - The queue is seeded with (0, start, [start]).
//   - Pop the cheapest entry. Entries for already-explored nodes are stale
//     and skipped (lazy duplicate suppression).
//   - Mark the node explored. If it is the target, succeed with its path and cost.
//   - Otherwise push every unexplored neighbor with cost + edge cost and the
//     extended path.
//   - An exhausted queue means the target is unreachable.
//
// Tie-break:
//
//	Queue orders entries by (cost, insertion sequence). An entry is placed
//	after every entry of equal or lower cost, so among equal-cost paths the
//	one pushed first wins, and results are reproducible for a fixed
//	neighbor order.
//
// Queue is backed by a B-tree (github.com/tidwall/btree), which gives
// O(log n) insertion and removal with the same ordering as a sorted list
// with binary-search insertion.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(E) queue entries, each carrying its path
//
// Errors (sentinel):
//
//   - ErrGraphNil              if g is nil.
//   - ErrStartVertexNotFound   if start is not a node.
//   - ErrTargetVertexNotFound  if target is not a node.
//   - ctx.Err() on cancellation, or a wrapped OnExpand error.
//
// Example usage:
//
//	res, err := ucs.UCS(g, "A", "D")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Printf("Path: %s, Total cost: %d\n", strings.Join(res.Path, " -> "), res.Cost)
//	}
package ucs
