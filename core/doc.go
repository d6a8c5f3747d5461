// Package core provides the co-occurrence Graph: a thread-safe, undirected,
// weighted in-memory graph whose vertices are category labels and whose edge
// weights count how many records carried both endpoint labels.
//
// The Graph G = (V,E) keeps a small, fixed set of invariants:
//
//   - Undirected: adjacency[a][b] and adjacency[b][a] always hold the same weight.
//   - No self-loops: AddCooccurrence(a, a, …) → ErrLoopNotAllowed.
//   - Positive weights: every stored edge has weight ≥ 1; a missing entry
//     means "never observed together" (weight 0), which is not an error.
//   - Vertices may be isolated (degree 0) when a record carried one label.
//
// Storage is a nested map: adjacency[label][neighbor] = weight, giving O(1)
// existence checks, weight lookups and increments.
//
// Ownership:
//
//	Mutation (AddVertex, AddCooccurrence, Merge) belongs to the builder.
//	Freeze() publishes an immutable snapshot; every mutator on a frozen
//	graph returns ErrGraphFrozen. Query code should hold a Reader only.
//
// Core Methods:
//
//	// Mutation (builder-owned)
//	AddVertex(id string) error                                    // O(1)
//	AddCooccurrence(a, b string, delta int64) (int64, error)      // O(1)
//	Merge(src Reader) error                                       // O(V'+E')
//
//	// Query (Reader)
//	HasVertex(id string) bool                                     // O(1)
//	Vertices() []string                                           // O(V·log V), sorted
//	NeighborIDs(id string) ([]string, error)                      // O(d·log d), sorted
//	Neighbors(id string) (map[string]int64, error)                // O(d), copy
//	Weight(a, b string) int64                                     // O(1)
//	HasEdge(a, b string) bool                                     // O(1)
//	Degree(id string) (int, error)                                // O(1)
//	VertexCount() int / EdgeCount() int                           // O(1)
//
//	// Snapshots & views
//	Clone() *Graph / Freeze() *Graph                              // O(V+E)
//	InducedSubgraph(g, keep) *Graph                               // O(V+E)
//	Stats() *GraphStats                                           // O(V)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length label
//	ErrVertexNotFound – label not present
//	ErrLoopNotAllowed – a == b in AddCooccurrence
//	ErrBadWeight      – non-positive increment
//	ErrGraphFrozen    – mutation of a frozen snapshot
//	ErrNilGraph       – nil source passed to Merge
package core
