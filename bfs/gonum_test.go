package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/genremap/bfs"
	"github.com/katalvlaran/genremap/core"
)

// TestBFS_DepthsMatchGonum cross-checks hop distances against gonum's
// breadth-first walker on random sparse graphs.
func TestBFS_DepthsMatchGonum(t *testing.T) {
	const n = 40
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := core.NewGraph()
		ref := simple.NewUndirectedGraph()
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex(label(i)))
			ref.AddNode(simple.Node(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.06 {
					_, err := g.AddCooccurrence(label(i), label(j), int64(1+rng.Intn(9)))
					require.NoError(t, err)
					ref.SetEdge(ref.NewEdge(simple.Node(i), simple.Node(j)))
				}
			}
		}

		res, err := bfs.BFS(g, label(0))
		require.NoError(t, err)

		want := make(map[string]int)
		var walker traverse.BreadthFirst
		walker.Walk(ref, simple.Node(0), func(nd graph.Node, d int) bool {
			want[label(int(nd.ID()))] = d
			return false
		})

		require.Equal(t, want, res.Depth, "seed %d", seed)
	}
}

func label(i int) string { return fmt.Sprintf("G%02d", i) }
