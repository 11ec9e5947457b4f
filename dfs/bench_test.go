package dfs_test

import (
	"testing"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/dfs"
)

// BenchmarkDFS_Chain measures an end-to-end search along a long chain.
func BenchmarkDFS_Chain(b *testing.B) {
	g := buildChain(b, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "N0", "N9999")
	}
}

// BenchmarkDFS_Tree measures an unreachable-target search over a small tree.
func BenchmarkDFS_Tree(b *testing.B) {
	g := buildTree(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "A", "missing")
	}
}
