package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/internal/config"
)

// run executes graphops with args against an isolated config and data file.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(dir, "graphops.yaml")
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg := "data_file: " + filepath.Join(dir, "graph.json") + "\nlog:\n  level: error\n"
		require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestExecPersistsBetweenRuns(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "exec", "--", "add_node", "A", "B:1", "C:4")
	require.NoError(t, err)
	assert.Equal(t, "A added to the graph.\n", out)

	out, err = run(t, dir, "", "exec", "--", "add_edge", "B", "C", "-1")
	require.NoError(t, err)
	assert.Equal(t, "Edge added between B and C with cost -1\n", out)

	out, err = run(t, dir, "", "exec", "--", "ucs", "A", "C")
	require.NoError(t, err)
	assert.Equal(t, "Path: A -> B -> C, Total cost: 0\n", out)

	data, err := os.ReadFile(filepath.Join(dir, "graph.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"A":{"B":1,"C":4},"B":{"A":1,"C":-1},"C":{"A":4,"B":-1}}`, string(data))
}

func TestExecTraceFlag(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "", "exec", "--", "add_node", "A", "B")
	require.NoError(t, err)

	out, err := run(t, dir, "", "--trace", "exec", "--", "bfs", "A", "B")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "BFS for target B\n"), out)
	assert.True(t, strings.HasSuffix(out, "A -> B\n"), out)
}

func TestDataFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "other.json")

	_, err := run(t, dir, "", "--data", other, "exec", "--", "add_node", "X")
	require.NoError(t, err)

	_, err = os.Stat(other)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "graph.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestShellSession(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "add_node A\nadd_node B\nadd_edge A B 2\nexit\n")
	require.NoError(t, err)

	want := "Welcome to the Graph shell. Type help or ? to list commands.\n" +
		config.DefaultPrompt + "A added to the graph.\n" +
		config.DefaultPrompt + "B added to the graph.\n" +
		config.DefaultPrompt + "Edge added between A and B with cost 2\n" +
		config.DefaultPrompt + "Graph saved.\n"
	assert.Equal(t, want, out)

	out, err = run(t, dir, "", "exec", "--", "display", "B")
	require.NoError(t, err)
	assert.Equal(t, "B -> A(2)\n", out)
}

func TestMissingExplicitConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""), &out, &errOut)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "version"})

	// version does not read the config.
	require.NoError(t, cmd.Execute())

	cmd = newRootCmd(strings.NewReader(""), &out, &errOut)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "exec", "--", "stats"})
	assert.Error(t, cmd.Execute())
}

func TestInvalidLogFormat(t *testing.T) {
	_, err := run(t, t.TempDir(), "", "--log-format", "xml", "exec", "--", "stats")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "graphops dev\n", out)
}

func TestShellWithMetricsServer(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "add_node A\nexit\n", "--metrics-addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, out, "A added to the graph.")
	assert.True(t, strings.HasSuffix(out, "Graph saved.\n"), out)
}
