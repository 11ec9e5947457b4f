// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start label is not a node.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// OnVisit is called when a node is dequeued and explored, with its depth
	// in edges from the start. Returning an error aborts the search.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, keeps nodes deeper than MaxDepth out of the fringe.
	MaxDepth int

	// Trace records a fringe/explored snapshot before every dequeue.
	Trace bool

	err error
}

// DefaultOptions returns Options with background context, a no-op OnVisit,
// no depth limit and tracing off.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits how far from the start nodes are enqueued.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithTrace turns trace recording on or off.
func WithTrace(on bool) Option {
	return func(o *Options) {
		o.Trace = on
	}
}

// Step is one row of the search trace: the fringe (front first) and the
// explored list as they stood right before a dequeue.
type Step struct {
	Fringe   []string
	Explored []string
}

// Result holds the outcome of a BFS run.
//
//   - Found: whether target was dequeued.
//   - Path: explored nodes in dequeue order, ending with target when Found.
//     This is the visitation order, not the tree path to target.
//   - Depth: distance in edges from start for every node that reached the fringe.
//   - Trace: per-dequeue snapshots, only filled with WithTrace(true).
type Result struct {
	Found bool
	Path  []string
	Depth map[string]int
	Trace []Step
}
