// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate their parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves bopts and applies cons in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts cfg.idFn(0..n-1) in index order. Labels already present
// (from an earlier constructor) are kept.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if g.HasNode(id) {
			continue
		}
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge connects u and v with the next generated cost.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
