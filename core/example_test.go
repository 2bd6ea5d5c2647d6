package core_test

import (
	"fmt"

	"github.com/katalvlaran/navedge/core"
)

// ExampleGraph links three lines through two passages of different widths.
func ExampleGraph() {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("1", "2", 5)
	_, _ = g.AddEdge("2", "1", 4)
	_, _ = g.AddEdge("2", "3", 9)

	nbrs, _ := g.NeighborIDs("2")
	fmt.Println(g.Vertices(), nbrs, g.EdgeCount())
	between, _ := g.EdgesBetween("1", "2")
	for _, e := range between {
		fmt.Printf("%s %s-%s %g\n", e.ID, e.From, e.To, e.Weight)
	}
	// Output:
	// [1 2 3] [1 3] 3
	// e1 1-2 5
	// e2 2-1 4
}
