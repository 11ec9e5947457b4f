// SPDX-License-Identifier: MIT
//
// File: impl_basic.go
// Role: Path, Cycle, Star, Wheel and Complete constructors.
// Determinism:
//   - Nodes in index order; edges in the order listed on each constructor.

package builder

import (
	"fmt"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

func checkMin(method string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}

	return nil
}

// Path builds P_n: edges (0-1), (1-2), …, (n-2 - n-1). n ≥ 2.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		if err := addNodes(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: the path edges followed by the closing edge (n-1 - 0). n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		if err := addNodes(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with center index 0 and leaves 1..n-1. n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		if err := addNodes(g, cfg, methodStar, n); err != nil {
			return err
		}
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a rim cycle over indices 1..n-1, then spokes from
// center 0 to every rim node. n ≥ 4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		if err := addNodes(g, cfg, methodWheel, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := addEdge(g, cfg, methodWheel, cfg.idFn(1+i), cfg.idFn(1+(i+1)%rim)); err != nil {
				return err
			}
		}
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodWheel, center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n with edges (i-j) for i < j in lexicographic index order. n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		if err := addNodes(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
