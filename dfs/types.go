// Package dfs defines types and options for depth-first search between two
// nodes, including cancellation, a discovery hook, depth limiting and tracing.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start label is not a node.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Checked once per step of the explicit stack.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is entered, with its depth
	// on the current path. Returning an error aborts traversal with that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if non-negative, stops descending below the given depth.
	// A depth of 0 enters only the start node. Default is -1 (no limit).
	MaxDepth int

	// Trace records a path/explored snapshot every time a node is entered.
	Trace bool
}

// DefaultOptions returns Options with a background context, no hook,
// no depth limit and tracing off.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithTrace returns an Option that turns trace recording on or off.
func WithTrace(on bool) Option {
	return func(o *Options) {
		o.Trace = on
	}
}

// Step is one row of the DFS trace: the current root-to-node path and the
// explored list, captured right after a node is entered.
type Step struct {
	Path     []string
	Explored []string
}

// Result captures the outcome of a depth-first search.
type Result struct {
	// Found reports whether target was entered.
	Found bool

	// Path is the root-to-target chain when Found, empty otherwise.
	Path []string

	// Order lists nodes in the sequence they were entered (pre-order).
	Order []string

	// Trace holds one Step per entered node, only with WithTrace(true).
	Trace []Step
}
