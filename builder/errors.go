// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the builder package.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a construction that could not be carried out,
	// such as a nil Constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
