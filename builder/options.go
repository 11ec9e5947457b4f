// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options and the resolved builderConfig.
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Options apply in order; the last one wins.

package builder

import (
	"math/rand"
	"strconv"
)

const defaultCost = int64(1)

// builderConfig aggregates every knob used by constructors.
// It is passed by value.
type builderConfig struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64
}

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) int64 { return defaultCost },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the node label for index i. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides the RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG, making stochastic output reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge cost generator. fn receives the configured RNG,
// which may be nil. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// ConstantWeight returns a generator that always yields cost.
func ConstantWeight(cost int64) func(*rand.Rand) int64 {
	return func(*rand.Rand) int64 { return cost }
}

// UniformWeight returns a generator drawing costs uniformly from [lo, hi].
// Without an RNG it yields lo. Panics if hi < lo.
func UniformWeight(lo, hi int64) func(*rand.Rand) int64 {
	if hi < lo {
		panic("builder: UniformWeight(hi<lo)")
	}

	return func(r *rand.Rand) int64 {
		if r == nil || hi == lo {
			return lo
		}

		return lo + r.Int63n(hi-lo+1)
	}
}

// LetterIDs labels nodes "A".."Z", then "AA", "AB", … like spreadsheet columns.
func LetterIDs(i int) string {
	var buf []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}

	return string(buf)
}
