// Package ucs defines types, options and errors for uniform-cost search
// between two nodes of a core.Graph.
package ucs

import (
	"context"
	"errors"
)

// Sentinel errors returned by UCS.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to UCS.
	ErrGraphNil = errors.New("ucs: graph is nil")

	// ErrStartVertexNotFound indicates that the start label is not a node.
	ErrStartVertexNotFound = errors.New("ucs: start vertex not found")

	// ErrTargetVertexNotFound indicates that the target label is not a node.
	ErrTargetVertexNotFound = errors.New("ucs: target vertex not found")
)

// Options configures the behavior of UCS.
type Options struct {
	// Ctx allows cancellation; checked once per dequeue.
	Ctx context.Context

	// OnExpand, if non-nil, is called for every node that is dequeued while
	// unexplored, with the accumulated cost it was reached at. An error aborts.
	OnExpand func(id string, cost int64) error

	// Trace records a queue/explored snapshot before every dequeue.
	Trace bool
}

// Option represents a functional option for configuring UCS.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no hook and tracing off.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand installs fn as the expansion hook.
func WithOnExpand(fn func(id string, cost int64) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithTrace turns trace recording on or off.
func WithTrace(on bool) Option {
	return func(o *Options) {
		o.Trace = on
	}
}

// Step is one row of the UCS trace: the queue (front first) and the explored
// list as they stood right before a dequeue.
type Step struct {
	Queue    []Item
	Explored []string
}

// Result is the outcome of a UCS run.
//
//   - Found: target was dequeued while unexplored.
//   - Path:  start-to-target path carried with the winning queue entry.
//   - Cost:  sum of edge costs along Path.
//   - Trace: per-dequeue snapshots, only with WithTrace(true).
type Result struct {
	Found bool
	Path  []string
	Cost  int64
	Trace []Step
}
