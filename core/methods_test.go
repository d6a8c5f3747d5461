package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/genremap/core"
)

// TestAddVertex_Errors checks validation of AddVertex.
func TestAddVertex_Errors(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	require.Equal(t, 1, g.VertexCount())

	d, err := g.Degree("A")
	require.NoError(t, err)
	require.Zero(t, d)
}

// TestAddCooccurrence_Errors covers every rejected input.
func TestAddCooccurrence_Errors(t *testing.T) {
	g := core.NewGraph()
	cases := []struct {
		name  string
		a, b  string
		delta int64
		want  error
	}{
		{"empty from", "", "B", 1, core.ErrEmptyVertexID},
		{"empty to", "A", "", 1, core.ErrEmptyVertexID},
		{"self loop", "A", "A", 1, core.ErrLoopNotAllowed},
		{"zero delta", "A", "B", 0, core.ErrBadWeight},
		{"negative delta", "A", "B", -3, core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddCooccurrence(tc.a, tc.b, tc.delta)
			require.ErrorIs(t, err, tc.want)
		})
	}
	// Nothing leaked into the graph.
	require.Zero(t, g.VertexCount())
	require.Zero(t, g.EdgeCount())
}

// TestAddCooccurrence_SymmetricAccumulation verifies mirrored weights accumulate.
func TestAddCooccurrence_SymmetricAccumulation(t *testing.T) {
	g := core.NewGraph()
	w, err := g.AddCooccurrence("A", "B", 1)
	require.NoError(t, err)
	require.EqualValues(t, 1, w)

	w, err = g.AddCooccurrence("B", "A", 2)
	require.NoError(t, err)
	require.EqualValues(t, 3, w)

	require.EqualValues(t, 3, g.Weight("A", "B"))
	require.EqualValues(t, 3, g.Weight("B", "A"))
	require.True(t, g.HasEdge("B", "A"))
	require.Equal(t, 1, g.EdgeCount())
	require.EqualValues(t, 3, g.TotalWeight())

	// Absent pairs and self pairs are weight 0, not errors.
	require.Zero(t, g.Weight("A", "A"))
	require.Zero(t, g.Weight("A", "Z"))
	require.False(t, g.HasEdge("A", "A"))
}

// TestNeighbors checks sorted IDs, copy semantics and missing-vertex errors.
func TestNeighbors(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddCooccurrence("M", "C", 1)
	_, _ = g.AddCooccurrence("M", "A", 4)
	_, _ = g.AddCooccurrence("M", "B", 2)

	ids, err := g.NeighborIDs("M")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, ids)

	nbrs, err := g.Neighbors("M")
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"A": 4, "B": 2, "C": 1}, nbrs)

	nbrs["A"] = 100 // must not leak back
	require.EqualValues(t, 4, g.Weight("M", "A"))

	_, err = g.NeighborIDs("nope")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Degree("nope")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestVertices_Sorted checks deterministic vertex order.
func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, g.Vertices())
	require.True(t, g.HasVertex("alpha"))
	require.False(t, g.HasVertex(""))
}

// TestFreeze verifies that snapshots reject mutation and are independent.
func TestFreeze(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddCooccurrence("A", "B", 1)

	snap := g.Freeze()
	require.True(t, snap.Frozen())
	require.False(t, g.Frozen())

	require.ErrorIs(t, snap.AddVertex("C"), core.ErrGraphFrozen)
	_, err := snap.AddCooccurrence("A", "C", 1)
	require.ErrorIs(t, err, core.ErrGraphFrozen)
	require.ErrorIs(t, snap.Merge(core.NewGraph()), core.ErrGraphFrozen)

	// The source keeps evolving without touching the snapshot.
	_, _ = g.AddCooccurrence("A", "B", 1)
	require.EqualValues(t, 2, g.Weight("A", "B"))
	require.EqualValues(t, 1, snap.Weight("A", "B"))

	// A clone of a frozen snapshot is mutable again.
	require.NoError(t, snap.Clone().AddVertex("C"))
}

// TestMerge_Additive verifies that merging accumulates weights and vertices.
func TestMerge_Additive(t *testing.T) {
	left := core.NewGraph()
	_, _ = left.AddCooccurrence("A", "B", 2)
	require.NoError(t, left.AddVertex("solo"))

	right := core.NewGraph()
	_, _ = right.AddCooccurrence("A", "B", 1)
	_, _ = right.AddCooccurrence("B", "C", 5)

	require.NoError(t, left.Merge(right))
	require.EqualValues(t, 3, left.Weight("A", "B"))
	require.EqualValues(t, 5, left.Weight("C", "B"))
	require.True(t, left.HasVertex("solo"))
	require.Equal(t, 2, left.EdgeCount())
	require.EqualValues(t, 8, left.TotalWeight())

	require.ErrorIs(t, left.Merge(nil), core.ErrNilGraph)
	var nilGraph *core.Graph
	require.True(t, errors.Is(left.Merge(nilGraph), core.ErrNilGraph))
}

// TestEqual compares graphs by vertex set and weights.
func TestEqual(t *testing.T) {
	a := core.NewGraph()
	_, _ = a.AddCooccurrence("X", "Y", 2)
	b := core.NewGraph()
	_, _ = b.AddCooccurrence("Y", "X", 1)
	require.False(t, a.Equal(b))

	_, _ = b.AddCooccurrence("X", "Y", 1)
	require.True(t, a.Equal(b))
	require.True(t, a.Equal(b.Freeze()))

	require.NoError(t, b.AddVertex("Z"))
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
}

// TestInducedSubgraph keeps only pairs with both endpoints kept.
func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddCooccurrence("A", "B", 3)
	_, _ = g.AddCooccurrence("B", "C", 1)
	_, _ = g.AddCooccurrence("C", "D", 7)

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "D": true, "ghost": true})
	require.True(t, sub.Frozen())
	require.Equal(t, []string{"A", "B", "D"}, sub.Vertices())
	require.Equal(t, 1, sub.EdgeCount())
	require.EqualValues(t, 3, sub.Weight("B", "A"))
	require.Zero(t, sub.Weight("C", "D"))

	empty := core.InducedSubgraph(nil, map[string]bool{"A": true})
	require.Zero(t, empty.VertexCount())
}

// TestStats summarises counters and degree extremes.
func TestStats(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddCooccurrence("A", "B", 2)
	_, _ = g.AddCooccurrence("A", "C", 1)
	require.NoError(t, g.AddVertex("D"))

	s := g.Stats()
	require.Equal(t, 4, s.VertexCount)
	require.Equal(t, 2, s.EdgeCount)
	require.EqualValues(t, 3, s.TotalWeight)
	require.Equal(t, 1, s.IsolatedCount)
	require.Equal(t, 2, s.MaxDegree)
	require.False(t, s.Frozen)
	require.True(t, g.Freeze().Stats().Frozen)
}
