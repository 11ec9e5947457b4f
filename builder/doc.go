// Package builder generates deterministic core.Graph fixtures: paths, cycles,
// stars, wheels, complete graphs, grids and seeded random sparse graphs.
//
// A graph is assembled by BuildGraph from one or more Constructors that share
// a resolved configuration:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeight(1, 9))},
//		builder.RandomSparse(50, 0.1),
//	)
//
// Options:
//
//	WithIDScheme(fn)   - node label for index i (default "0","1",…).
//	WithSeed(seed)     - seeded RNG for RandomSparse and random weights.
//	WithRand(r)        - explicit RNG.
//	WithWeightFn(fn)   - edge cost generator (default constant 1).
//
// Option constructors panic on meaningless input (nil functions, an empty
// weight range). Constructors never panic; they return ErrTooFewVertices,
// ErrInvalidProbability or ErrNeedRandSource wrapped with the method name.
//
// Determinism:
//
//	Nodes are added in index order and edges in a fixed, documented order,
//	so equal options and seeds always yield identical graphs, including the
//	neighbor order searches observe.
package builder
