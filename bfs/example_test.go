package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/navedge/bfs"
	"github.com/katalvlaran/navedge/core"
)

// ExampleBFS walks a chain of lines joined by passages.
func ExampleBFS() {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "2", 4)
	_, _ = g.AddEdge("2", "3", 6)
	_, _ = g.AddEdge("1", "5", 2)

	res, err := bfs.BFS(g, "3")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("5")
	fmt.Println(res.Order, path)
	// Output:
	// [3 2 1 5] [3 2 1 5]
}
