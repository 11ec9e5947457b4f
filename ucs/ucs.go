// Package ucs implements uniform-cost search between two nodes of a core.Graph.
//
// The search expands nodes in order of accumulated path cost using Queue,
// with lazy duplicate suppression: a node may sit in the queue several times
// under different costs, and every entry after the first to be dequeued is
// skipped as stale.
package ucs

import (
	"fmt"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
)

// UCS finds the cheapest path from start to target in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. start must be a node (ErrStartVertexNotFound).
//  3. target must be a node (ErrTargetVertexNotFound).
//
// An unreachable target is a normal outcome (Result.Found == false).
// start == target succeeds with Path [start] and Cost 0.
// Costs are assumed non-negative; with negative costs the returned path is
// still a real path but is not guaranteed to be the cheapest.
//
// Complexity:
//
//   - Time:  O(E log E)
//   - Space: O(E · L) for queued paths of length L
func UCS(g *core.Graph, start, target string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetVertexNotFound, target)
	}

	r := &runner{
		g:        g,
		options:  cfg,
		target:   target,
		explored: make(map[string]bool, g.NodeCount()),
		pq:       NewQueue(),
		res:      &Result{},
	}
	r.pq.Push(Item{Cost: 0, Label: start, Path: []string{start}})

	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single UCS execution.
type runner struct {
	g        *core.Graph
	options  Options
	target   string
	explored map[string]bool
	seen     []string // explored labels in expansion order, for the trace
	pq       *Queue
	res      *Result
}

// process pops entries until the target is expanded or the queue empties.
func (r *runner) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if r.options.Trace {
			r.snapshot()
		}

		item, _ := r.pq.Pop()
		if r.explored[item.Label] {
			continue // stale entry
		}
		r.explored[item.Label] = true
		r.seen = append(r.seen, item.Label)

		if r.options.OnExpand != nil {
			if err := r.options.OnExpand(item.Label, item.Cost); err != nil {
				return fmt.Errorf("ucs: OnExpand hook for %q: %w", item.Label, err)
			}
		}

		if item.Label == r.target {
			r.res.Found = true
			r.res.Path = item.Path
			r.res.Cost = item.Cost

			return nil
		}

		if err := r.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand queues every unexplored neighbor of item with the extended cost and path.
func (r *runner) expand(item Item) error {
	neighbors, err := r.g.Neighbors(item.Label)
	if err != nil {
		return fmt.Errorf("ucs: failed to get neighbors of %q: %w", item.Label, err)
	}
	for _, nb := range neighbors {
		if r.explored[nb.Label] {
			continue
		}
		path := make([]string, len(item.Path)+1)
		copy(path, item.Path)
		path[len(item.Path)] = nb.Label
		r.pq.Push(Item{Cost: item.Cost + nb.Cost, Label: nb.Label, Path: path})
	}

	return nil
}

// snapshot appends the current queue and explored list to the trace.
func (r *runner) snapshot() {
	r.res.Trace = append(r.res.Trace, Step{
		Queue:    r.pq.Items(),
		Explored: append([]string(nil), r.seen...),
	})
}
