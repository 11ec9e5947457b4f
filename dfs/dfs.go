// Package dfs implements depth-first search between two nodes of a core.Graph
// with an explicit stack, so path length is not bounded by the goroutine stack.
package dfs

import (
	"fmt"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
)

// frame is one entered node on the explicit stack together with the
// position of the next neighbor to try.
type frame struct {
	id   string
	nbs  []core.Neighbor
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph    *core.Graph
	opts     Options
	target   string
	stack    []frame
	path     []string
	explored map[string]bool
	seen     []string // explored labels in marking order, for the trace
	res      *Result
}

// DFS performs depth-first search on g from start toward target.
//
// Neighbors are tried in the graph's insertion order and are marked explored
// when discovered, before descending; the first branch that reaches target
// wins. An unreachable target is a normal outcome (Result.Found == false).
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ctx.Err() on cancellation,
// or a wrapped OnVisit error.
func DFS(g *core.Graph, start, target string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &dfsWalker{
		graph:    g,
		opts:     dopts,
		target:   target,
		explored: make(map[string]bool, n),
		res: &Result{
			Order: make([]string, 0, n),
		},
	}
	w.mark(start)

	if err := w.run(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// mark records id as explored.
func (w *dfsWalker) mark(id string) {
	w.explored[id] = true
	w.seen = append(w.seen, id)
}

// run drives the explicit stack until target is entered or every branch
// from start is exhausted.
func (w *dfsWalker) run(start string) error {
	found, err := w.enter(start)
	if err != nil || found {
		return err
	}

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.nbs) {
			// backtrack
			w.stack = w.stack[:len(w.stack)-1]
			w.path = w.path[:len(w.path)-1]

			continue
		}

		nb := top.nbs[top.next]
		top.next++
		if w.explored[nb.Label] {
			continue
		}
		w.mark(nb.Label)

		found, err = w.enter(nb.Label)
		if err != nil || found {
			return err
		}
	}

	w.res.Path = nil

	return nil
}

// enter pushes id onto the path, records it and reports whether it is the target.
// A node at the depth limit is entered but its neighbors are not.
func (w *dfsWalker) enter(id string) (bool, error) {
	depth := len(w.path)
	w.path = append(w.path, id)
	w.res.Order = append(w.res.Order, id)
	if w.opts.Trace {
		w.snapshot()
	}

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if id == w.target {
		w.res.Found = true
		w.res.Path = append([]string(nil), w.path...)

		return true, nil
	}

	var nbs []core.Neighbor
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		var err error
		if nbs, err = w.graph.Neighbors(id); err != nil {
			return false, fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
		}
	}
	w.stack = append(w.stack, frame{id: id, nbs: nbs})

	return false, nil
}

// snapshot appends the current path and explored list to the trace.
func (w *dfsWalker) snapshot() {
	w.res.Trace = append(w.res.Trace, Step{
		Path:     append([]string(nil), w.path...),
		Explored: append([]string(nil), w.seen...),
	})
}
