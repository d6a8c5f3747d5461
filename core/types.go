// Package core defines the co-occurrence Graph type, the Reader capability,
// and the sentinel errors returned by graph primitives.
//
// All Graph methods are guarded by a single sync.RWMutex: mutators take the
// write lock, queries take the read lock, so a graph can be read from many
// goroutines at once.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided label is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a co-occurrence of a label with itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-positive weight increment.
	ErrBadWeight = errors.New("core: weight increment must be positive")

	// ErrGraphFrozen indicates a mutation attempt on a frozen snapshot.
	ErrGraphFrozen = errors.New("core: graph is frozen")

	// ErrNilGraph indicates a nil graph was passed where one is required.
	ErrNilGraph = errors.New("core: graph is nil")
)

// Reader is the read-only capability over a co-occurrence graph.
// Query engines, traversals and renderers depend on Reader, never on the
// mutators, so they cannot alter the graph they inspect.
type Reader interface {
	// HasVertex reports whether id is a vertex.
	HasVertex(id string) bool

	// Vertices returns all vertex IDs sorted ascending.
	Vertices() []string

	// NeighborIDs returns the distinct neighbors of id sorted ascending.
	NeighborIDs(id string) ([]string, error)

	// Neighbors returns a copy of the neighbor → weight mapping of id.
	Neighbors(id string) (map[string]int64, error)

	// Weight returns the co-occurrence count of {a,b}, or 0 if never observed.
	Weight(a, b string) int64

	// Degree returns the number of distinct neighbors of id.
	Degree(id string) (int, error)

	// VertexCount returns |V|.
	VertexCount() int

	// EdgeCount returns the number of unordered pairs with weight ≥ 1.
	EdgeCount() int
}

// Graph is the co-occurrence graph.
//
// adjacency holds one entry per vertex (possibly an empty map for isolated
// labels); adjacency[a][b] == adjacency[b][a] == weight of {a,b}.
// edgeCount counts unordered pairs; totalWeight sums one side of each pair.
type Graph struct {
	mu sync.RWMutex // guards every field below

	frozen bool // set by Freeze; mutators then fail with ErrGraphFrozen

	// adjacency[(label)][(neighbor)] = co-occurrence weight
	adjacency map[string]map[string]int64

	edgeCount   int
	totalWeight int64
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	VertexCount   int   // |V|
	EdgeCount     int   // unordered pairs with weight ≥ 1
	TotalWeight   int64 // Σ weight over unordered pairs
	IsolatedCount int   // vertices with degree 0
	MaxDegree     int   // largest number of distinct neighbors
	Frozen        bool  // snapshot flag
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]int64),
	}
}

// compile-time check
var _ Reader = (*Graph)(nil)
