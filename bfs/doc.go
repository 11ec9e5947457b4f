// Package bfs provides breadth-first search between two nodes of a core.Graph.
//
// What
//
//   - Explore nodes in strict FIFO order from a start node until the target
//     is dequeued or the fringe is exhausted.
//   - A node is marked explored when it is dequeued, not when it is enqueued.
//     A neighbor already in the fringe or already explored is never re-added.
//   - Edge costs are ignored; every edge counts as one hop.
//   - Returns a Result containing:
//   - Found: whether the target was reached
//   - Path:  explored nodes in dequeue order, ending with the target
//   - Depth: hop distance from start for every node that entered the fringe
//   - Trace: fringe/explored snapshots (WithTrace)
//
// Path is the visitation order, not the edge path: on the graph A–B, A–C
// with target C, Path is [A B C].
//
// Determinism
//
//	core.Graph.Neighbors returns insertion order, and BFS enqueues neighbors
//	in that order, so Path and Trace are fully reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V), plus O(V²) when tracing
//
// Usage
//
//	res, err := bfs.BFS(g, "A", "D", bfs.WithTrace(true))
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//	    // ErrNeighbors, ctx.Err() or a wrapped OnVisit error
//	}
//	if !res.Found {
//	    // D can't be reached from A
//	}
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per dequeue.
//   - WithOnVisit(fn):   hook on every explored node; an error aborts BFS.
//   - WithMaxDepth(d):   do not enqueue nodes deeper than d (>0).
//   - WithTrace(on):     record Result.Trace.
package bfs
