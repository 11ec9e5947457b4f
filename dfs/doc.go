// Package dfs provides depth-first search between two nodes of a core.Graph.
//
// Algorithm:
//
//   - The explored set is seeded with the start node.
//   - Entering a node appends it to the current path. If it is the target the
//     search succeeds immediately.
//   - Otherwise each neighbor not yet explored, in insertion order, is marked
//     explored *before* descending into it (visited-on-discovery).
//   - When a node runs out of neighbors it is popped from the path (backtrack).
//   - The first branch that reaches the target wins; DFS does not look for a
//     shorter alternative.
//
// The recursion is rendered with an explicit stack of frames, so very long
// paths do not grow the goroutine stack.
//
// Result:
//
//   - Found: target was entered.
//   - Path:  root-to-target chain.
//   - Order: every entered node, in pre-order.
//   - Trace: path/explored snapshot per entered node (WithTrace).
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack, path and explored set.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook on entering a node; error aborts traversal.
//   - WithMaxDepth(limit)       do not descend below depth limit (>=0).
//   - WithTrace(on)             record Result.Trace.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
