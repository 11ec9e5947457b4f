// SPDX-License-Identifier: MIT
//
// File: impl_random_sparse.go
// Role: RandomSparse(n, p) constructor, an Erdős–Rényi style sampler.
// Determinism:
//   - Pairs {i,j}, i<j, are tried with i ascending then j ascending, so a
//     fixed seed always draws the same edges and costs.

package builder

import (
	"fmt"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds n nodes and includes each pair independently with
// probability p. n ≥ 1, 0 ≤ p ≤ 1. An RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addNodes(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				include := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
