package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/crowd/bfs"
	"github.com/katalvlaran/crowd/core"
)

// ExampleBFS_exclude measures hop distance with one vertex removed.
func ExampleBFS_exclude() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)
	_, _ = g.AddEdge("a", "c", 0)

	full, _ := bfs.BFS(g, "a")
	holed, _ := bfs.BFS(g, "a", bfs.WithExclude("c"))
	fmt.Println(full.Depth["c"], len(holed.Order))

	// Output:
	// 1 2
}
