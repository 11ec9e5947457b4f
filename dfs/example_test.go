package dfs_test

import (
	"fmt"
	"strings"

	"github.com/santhosh-kumar-karthikeyan/graph-ops/core"
	"github.com/santhosh-kumar-karthikeyan/graph-ops/dfs"
)

// ExampleDFS finds d in a small tree and prints the chain that reached it.
func ExampleDFS() {
	g := core.NewGraph(core.WithNodes("a", "b", "c", "d", "e", "f", "g"))
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("a", "c", 0)
	_, _ = g.AddEdge("b", "d", 0)
	_, _ = g.AddEdge("b", "e", 0)
	_, _ = g.AddEdge("c", "f", 0)
	_, _ = g.AddEdge("c", "g", 0)

	res, err := dfs.DFS(g, "a", "g")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path: ", strings.Join(res.Path, " -> "))
	fmt.Println("order:", strings.Join(res.Order, " "))
	// Output:
	// path:  a -> c -> g
	// order: a b d e c f g
}
