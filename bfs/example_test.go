package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/genremap/bfs"
	"github.com/katalvlaran/genremap/core"
)

// ExampleBFS_shortestPathNetwork finds the fewest-hop path between two genres.
// Two competing routes exist from "A" to "K": one of length 4, another length 3.
func ExampleBFS_shortestPathNetwork() {
	g := core.NewGraph()
	// Route1: A–B–C–D–K (4 hops), heavily co-occurring
	g.AddCooccurrence("A", "B", 9)
	g.AddCooccurrence("B", "C", 9)
	g.AddCooccurrence("C", "D", 9)
	g.AddCooccurrence("D", "K", 9)
	// Route2: A–E–F–K (3 hops), rare
	g.AddCooccurrence("A", "E", 1)
	g.AddCooccurrence("E", "F", 1)
	g.AddCooccurrence("F", "K", 1)

	res, err := bfs.BFS(g, "A", bfs.WithTarget("K"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleBFS_depthLimitOnChain shows applying WithMaxDepth to a chain of 10 vertices.
// With depth=2 we only visit the first three nodes.
func ExampleBFS_depthLimitOnChain() {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		g.AddCooccurrence(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 1)
	}

	res, err := bfs.BFS(g, "v0", bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [v0 v1 v2]
}
