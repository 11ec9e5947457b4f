// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for graph-ops/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Centralize the invariant checks (symmetry, node count, no self-loops)
//     so every mutation test can assert them after each step.

package core_test

import (
	"errors"
	"testing"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
)

// Common node labels used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"

	NodeX = "X"
	NodeY = "Y"
	NodeZ = "Z"

	NodeCenter = "CENTER"
)

// Common costs used across core tests (avoid magic numbers in test bodies).
const (
	Cost0  = 0
	Cost1  = 1
	Cost2  = 2
	Cost3  = 3
	Cost4  = 4
	Cost5  = 5
	Cost7  = 7
	Cost10 = 10
)

// Common concurrency sizes used across core tests.
const (
	NWriters = 20
	NReaders = 20
	NRounds  = 100
)

// NewSquare RETURNS the four-node square used across the search tests:
//
//	A─1─B
//	│   │
//	4   2
//	│   │
//	C─1─D
func NewSquare(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithNodes(NodeA, NodeB, NodeC, NodeD))
	MustAddEdge(t, g, NodeA, NodeB, Cost1)
	MustAddEdge(t, g, NodeA, NodeC, Cost4)
	MustAddEdge(t, g, NodeB, NodeD, Cost2)
	MustAddEdge(t, g, NodeC, NodeD, Cost1)

	return g
}

// MustAddEdge FAILS the test if AddEdge returns an error.
func MustAddEdge(t *testing.T, g *core.Graph, start, end string, cost int64) core.EdgeChange {
	t.Helper()

	change, err := g.AddEdge(start, end, cost)
	if err != nil {
		t.Fatalf("AddEdge(%s,%s,%d): unexpected error: %v", start, end, cost, err)
	}

	return change
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustNodeErrorLabel FAILS the test unless err is a *core.NodeError naming label.
func MustNodeErrorLabel(t *testing.T, err error, label string, op string) {
	t.Helper()

	var ne *core.NodeError
	if !errors.As(err, &ne) {
		t.Fatalf("%s: want *core.NodeError; got %T (%v)", op, err, err)
	}
	if ne.Label != label {
		t.Fatalf("%s: NodeError.Label=%q; want %q", op, ne.Label, label)
	}
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: expected true", op)
}

// MustEqualInt FAILS the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got %d; want %d", op, got, want)
}

// MustCost FAILS the test unless the edge start–end exists with cost want in BOTH directions.
func MustCost(t *testing.T, g *core.Graph, start, end string, want int64) {
	t.Helper()

	fwd, ok := g.Cost(start, end)
	if !ok || fwd != want {
		t.Fatalf("Cost(%s,%s) = (%d,%v); want (%d,true)", start, end, fwd, ok, want)
	}
	rev, ok := g.Cost(end, start)
	if !ok || rev != want {
		t.Fatalf("Cost(%s,%s) = (%d,%v); want (%d,true)", end, start, rev, ok, want)
	}
}

// MustInvariants FAILS the test if any structural invariant of g is broken:
// symmetry, no self-loops, node count and edge count.
func MustInvariants(t *testing.T, g *core.Graph) {
	t.Helper()

	adj := g.Adjacency()
	if got := g.NodeCount(); got != len(adj) {
		t.Fatalf("NodeCount()=%d; len(Adjacency())=%d", got, len(adj))
	}
	if got := len(g.Nodes()); got != len(adj) {
		t.Fatalf("len(Nodes())=%d; len(Adjacency())=%d", got, len(adj))
	}

	pairs := 0
	for u, inner := range adj {
		for v, c := range inner {
			if u == v {
				t.Fatalf("self-loop stored on %q", u)
			}
			back, ok := adj[v][u]
			if !ok || back != c {
				t.Fatalf("asymmetric edge %s->%s=%d, %s->%s=(%d,%v)", u, v, c, v, u, back, ok)
			}
			pairs++
		}
	}
	if got := g.EdgeCount(); got != pairs/2 {
		t.Fatalf("EdgeCount()=%d; counted %d", got, pairs/2)
	}
}

// NeighborLabels RETURNS the neighbor labels of id in the order the graph reports them.
func NeighborLabels(t *testing.T, g *core.Graph, id string) []string {
	t.Helper()

	nbs, err := g.Neighbors(id)
	MustNoError(t, err, "Neighbors("+id+")")
	out := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		out = append(out, nb.Label)
	}

	return out
}
