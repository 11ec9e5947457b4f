// Package bfs provides breadth-first search over a core.Graph.
//
// BFS explores nodes in FIFO order from a start node, ignoring edge costs,
// and stops the moment it dequeues the target.
package bfs

import (
	"context"
	"fmt"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
)

// queueItem pairs a node label with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	opts     Options
	ctx      context.Context
	target   string
	queue    []queueItem
	inFringe map[string]bool
	explored map[string]bool
	res      *Result
}

// BFS runs breadth-first search on g from start until target is dequeued
// or the fringe is exhausted.
//
// A target that cannot be reached is a normal outcome (Result.Found == false),
// not an error. Returns ErrGraphNil or ErrStartVertexNotFound for invalid
// input, ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start, target string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:    g,
		opts:     o,
		ctx:      o.Ctx,
		target:   target,
		queue:    make([]queueItem, 0, n),
		inFringe: make(map[string]bool, n),
		explored: make(map[string]bool, n),
		res: &Result{
			Path:  make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue appends id to the fringe at depth d.
func (w *walker) enqueue(id string, d int) {
	w.inFringe[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the fringe until the target is found, the fringe empties,
// an error occurs or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.opts.Trace {
			w.snapshot()
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.id == w.target {
			w.res.Found = true

			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// snapshot appends the current fringe and explored list to the trace.
func (w *walker) snapshot() {
	fringe := make([]string, len(w.queue))
	for i, item := range w.queue {
		fringe[i] = item.id
	}
	explored := make([]string, len(w.res.Path))
	copy(explored, w.res.Path)
	w.res.Trace = append(w.res.Trace, Step{Fringe: fringe, Explored: explored})
}

// dequeue pops the front of the fringe.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	delete(w.inFringe, item.id)

	return item
}

// visit marks the node explored, records it on the path and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.explored[item.id] = true
	w.res.Path = append(w.res.Path, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors adds every neighbor that is neither in the fringe nor
// explored, in the graph's neighbor order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nb := range neighbors {
		if w.inFringe[nb.Label] || w.explored[nb.Label] {
			continue
		}
		w.enqueue(nb.Label, nextDepth)
	}

	return nil
}
