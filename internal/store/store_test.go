package store_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/store"
)

func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithNodes("A", "B", "C", "D", "E"))
	for _, e := range []struct {
		u, v string
		c    int64
	}{{"A", "B", 1}, {"A", "C", 4}, {"B", "D", 2}, {"C", "D", 1}} {
		_, err := g.AddEdge(e.u, e.v, e.c)
		require.NoError(t, err)
	}

	return g
}

func newStore(t *testing.T) *store.Store {
	t.Helper()

	return store.New(filepath.Join(t.TempDir(), ".graph_data.json"), zerolog.Nop())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newStore(t)
	src := square(t)
	require.NoError(t, s.Save(src))

	dst := core.NewGraph(core.WithNodes("stale"))
	ok, err := s.Load(dst)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, src.Adjacency(), dst.Adjacency())
	assert.Equal(t, 5, dst.NodeCount())
	assert.Equal(t, 4, dst.EdgeCount())
	assert.False(t, dst.HasNode("stale"))
}

func TestSave_Layout(t *testing.T) {
	s := newStore(t)
	g := core.NewGraph(core.WithNodes("B", "A", "I"))
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	require.NoError(t, s.Save(g))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"A":{"B":5},"B":{"A":5},"I":{}}`, string(data))

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_FileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	s := newStore(t)
	require.NoError(t, s.Save(square(t)))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSave_MissingDirectory(t *testing.T) {
	s := store.New(filepath.Join(t.TempDir(), "gone", "graph.json"), zerolog.Nop())
	assert.Error(t, s.Save(square(t)))
}

func TestLoad_MissingFile(t *testing.T) {
	s := newStore(t)
	g := square(t)
	before := g.Adjacency()

	ok, err := s.Load(g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, g.Adjacency())
}

func TestLoad_Malformed(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"A": {"B": "five"}}`), 0o600))

	g := square(t)
	before := g.Adjacency()
	_, err := s.Load(g)
	assert.ErrorIs(t, err, store.ErrMalformed)
	assert.Equal(t, before, g.Adjacency())
}

func TestDecode(t *testing.T) {
	adj, err := store.Decode([]byte(`{"A":{"B":3},"B":{"A":3},"C":null}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]map[string]int64{
		"A": {"B": 3},
		"B": {"A": 3},
		"C": {},
	}, adj)

	for _, bad := range []string{``, `null`, `[]`, `{"A":[1]}`, `{"A":{"B":1.5}}`} {
		_, err := store.Decode([]byte(bad))
		assert.ErrorIs(t, err, store.ErrMalformed, "input %q", bad)
	}
}
