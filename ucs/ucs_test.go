package ucs_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/builder"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/ucs"
)

type edge struct {
	u, v string
	w    int64
}

// build creates a graph whose nodes appear in the order given, then adds edges in order.
func build(t testing.TB, nodes []string, edges ...edge) *core.Graph {
	g := core.NewGraph(core.WithNodes(nodes...))
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestUCS_Validation(t *testing.T) {
	_, err := ucs.UCS(nil, "A", "B")
	assert.ErrorIs(t, err, ucs.ErrGraphNil)

	// empty graph: start is reported first
	_, err = ucs.UCS(core.NewGraph(), "A", "B")
	assert.ErrorIs(t, err, ucs.ErrStartVertexNotFound)

	g := core.NewGraph(core.WithNodes("A"))
	_, err = ucs.UCS(g, "A", "Z")
	assert.ErrorIs(t, err, ucs.ErrTargetVertexNotFound)
	_, err = ucs.UCS(g, "Z", "Z")
	assert.ErrorIs(t, err, ucs.ErrStartVertexNotFound)
}

func TestUCS_Square(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"},
		edge{"A", "B", 1}, edge{"A", "C", 4}, edge{"B", "D", 2}, edge{"C", "D", 1})

	res, err := ucs.UCS(g, "A", "D")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "D"}, res.Path)
	assert.Equal(t, int64(3), res.Cost)
}

func TestUCS_Diamond(t *testing.T) {
	g := build(t, []string{"START", "TOP", "BOTTOM", "END"},
		edge{"START", "TOP", 50}, edge{"START", "BOTTOM", 2},
		edge{"TOP", "END", 50}, edge{"BOTTOM", "END", 1})

	res, err := ucs.UCS(g, "START", "END")
	require.NoError(t, err)
	assert.Equal(t, []string{"START", "BOTTOM", "END"}, res.Path)
	assert.Equal(t, int64(3), res.Cost)
}

func TestUCS_StartIsTarget(t *testing.T) {
	g := core.NewGraph(core.WithNodes("A"))
	res, err := ucs.UCS(g, "A", "A")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, int64(0), res.Cost)
}

func TestUCS_Unreachable(t *testing.T) {
	g := core.NewGraph(core.WithNodes("A", "B"))
	res, err := ucs.UCS(g, "A", "B")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
}

// TestUCS_CheaperDetour covers cases where the direct edge loses to a longer, cheaper route.
func TestUCS_CheaperDetour(t *testing.T) {
	cases := []struct {
		name  string
		nodes []string
		edges []edge
		from  string
		to    string
		path  []string
		cost  int64
	}{
		{
			name:  "high cost direct edge",
			nodes: []string{"A", "B", "C"},
			edges: []edge{{"A", "B", 1000000}, {"A", "C", 1}, {"C", "B", 1}},
			from:  "A", to: "B",
			path: []string{"A", "C", "B"}, cost: 2,
		},
		{
			name:  "detour through a cheaper neighbor",
			nodes: []string{"A", "B", "C", "D"},
			edges: []edge{{"A", "B", 5}, {"A", "C", 2}, {"B", "D", 1}, {"C", "B", 1}},
			from:  "A", to: "D",
			path: []string{"A", "C", "B", "D"}, cost: 4,
		},
		{
			name:  "stale entry for a revisited node",
			nodes: []string{"A", "B", "C", "D"},
			edges: []edge{{"A", "B", 1}, {"A", "C", 10}, {"B", "D", 1}, {"C", "D", 1}},
			from:  "A", to: "D",
			path: []string{"A", "B", "D"}, cost: 2,
		},
		{
			name:  "zero cost edges",
			nodes: []string{"A", "B", "C"},
			edges: []edge{{"A", "B", 0}, {"B", "C", 0}},
			from:  "A", to: "C",
			path: []string{"A", "B", "C"}, cost: 0,
		},
		{
			name:  "expensive direct edge versus three hops",
			nodes: []string{"A", "B", "C", "D"},
			edges: []edge{{"A", "D", 100}, {"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}},
			from:  "A", to: "D",
			path: []string{"A", "B", "C", "D"}, cost: 3,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.nodes, tc.edges...)
			res, err := ucs.UCS(g, tc.from, tc.to)
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, tc.path, res.Path)
			assert.Equal(t, tc.cost, res.Cost)
		})
	}
}

func TestUCS_ManyEntries(t *testing.T) {
	nodes := []string{"START"}
	for i := 0; i < 10; i++ {
		nodes = append(nodes, fmt.Sprintf("N%d", i))
	}
	nodes = append(nodes, "END")
	g := core.NewGraph(core.WithNodes(nodes...))
	for i := 0; i < 10; i++ {
		_, err := g.AddEdge("START", fmt.Sprintf("N%d", i), int64(10-i))
		require.NoError(t, err)
	}
	for i := 0; i < 10; i++ {
		_, err := g.AddEdge(fmt.Sprintf("N%d", i), "END", 1)
		require.NoError(t, err)
	}

	res, err := ucs.UCS(g, "START", "END")
	require.NoError(t, err)
	assert.Equal(t, []string{"START", "N9", "END"}, res.Path)
	assert.Equal(t, int64(2), res.Cost)
}

// TestUCS_TieBreak checks that of two optimal paths of cost 9 the one queued first wins.
func TestUCS_TieBreak(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		edge{"A", "B", 3}, edge{"A", "C", 8}, edge{"A", "D", 2},
		edge{"B", "E", 4}, edge{"C", "F", 1}, edge{"D", "G", 6},
		edge{"E", "H", 2}, edge{"F", "H", 3}, edge{"G", "H", 1})

	for i := 0; i < 5; i++ {
		res, err := ucs.UCS(g, "A", "H")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "E", "H"}, res.Path)
		assert.Equal(t, int64(9), res.Cost)
	}
}

func TestUCS_Trace(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, edge{"A", "B", 1}, edge{"A", "C", 1})

	res, err := ucs.UCS(g, "A", "C", ucs.WithTrace(true))
	require.NoError(t, err)
	require.Len(t, res.Trace, 3)
	assert.Equal(t, []string{"A"}, labels(res.Trace[0].Queue))
	assert.Empty(t, res.Trace[0].Explored)
	assert.Equal(t, []string{"B", "C"}, labels(res.Trace[1].Queue))
	assert.Equal(t, []string{"A"}, res.Trace[1].Explored)
	assert.Equal(t, []string{"C"}, labels(res.Trace[2].Queue))
	assert.Equal(t, []string{"A", "B"}, res.Trace[2].Explored)
}

func TestUCS_OnExpand(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"},
		edge{"A", "B", 1}, edge{"A", "C", 4}, edge{"B", "D", 2}, edge{"C", "D", 1})

	var expanded []string
	_, err := ucs.UCS(g, "A", "D", ucs.WithOnExpand(func(id string, _ int64) error {
		expanded = append(expanded, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, expanded)

	halt := errors.New("halt")
	_, err = ucs.UCS(g, "A", "D", ucs.WithOnExpand(func(id string, _ int64) error {
		if id == "B" {
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)
}

func TestUCS_Cancelled(t *testing.T) {
	g := build(t, []string{"A", "B"}, edge{"A", "B", 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ucs.UCS(g, "A", "B", ucs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestUCS_Optimality compares UCS against an all-pairs relaxation on random graphs.
func TestUCS_Optimality(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 30; round++ {
		n := 3 + rng.Intn(8)
		nodes := make([]string, n)
		for i := range nodes {
			nodes[i] = fmt.Sprintf("V%d", i)
		}
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{
				builder.WithRand(rng),
				builder.WithIDScheme(func(i int) string { return nodes[i] }),
				builder.WithWeightFn(builder.UniformWeight(0, 19)),
			},
			builder.RandomSparse(n, 0.35),
		)
		require.NoError(t, err)

		dist := floydWarshall(g, nodes)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				res, err := ucs.UCS(g, nodes[i], nodes[j])
				require.NoError(t, err)
				want := dist[i][j]
				if want == math.MaxInt64 {
					assert.False(t, res.Found, "round %d %s->%s", round, nodes[i], nodes[j])
					continue
				}
				require.True(t, res.Found, "round %d %s->%s", round, nodes[i], nodes[j])
				assert.Equal(t, want, res.Cost, "round %d %s->%s", round, nodes[i], nodes[j])
				assert.Equal(t, res.Cost, pathCost(t, g, res.Path))
			}
		}
	}
}

func floydWarshall(g *core.Graph, nodes []string) [][]int64 {
	n := len(nodes)
	d := make([][]int64, n)
	for i := range d {
		d[i] = make([]int64, n)
		for j := range d[i] {
			switch c, ok := g.Cost(nodes[i], nodes[j]); {
			case i == j:
				d[i][j] = 0
			case ok:
				d[i][j] = c
			default:
				d[i][j] = math.MaxInt64
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k] == math.MaxInt64 || d[k][j] == math.MaxInt64 {
					continue
				}
				if s := d[i][k] + d[k][j]; s < d[i][j] {
					d[i][j] = s
				}
			}
		}
	}

	return d
}

func pathCost(t *testing.T, g *core.Graph, path []string) int64 {
	t.Helper()
	var total int64
	for i := 1; i < len(path); i++ {
		c, ok := g.Cost(path[i-1], path[i])
		require.True(t, ok, "path step %s->%s is not an edge", path[i-1], path[i])
		total += c
	}

	return total
}
