// File: methods_vertices.go
// Role: Vertex lifecycle and vertex-level queries.
// Determinism:
//   - Vertices() returns IDs sorted lex asc.
// Concurrency:
//   - AddVertex takes the write lock; queries take the read lock.

package core

import "sort"

// AddVertex inserts a label with no neighbors.
// Re-adding an existing label is a no-op (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrGraphFrozen: if the graph is a frozen snapshot.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrGraphFrozen
	}
	g.ensureVertex(id)

	return nil
}

// ensureVertex creates the adjacency bucket for id if absent.
// Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) map[string]int64 {
	nbrs, ok := g.adjacency[id]
	if !ok {
		nbrs = make(map[string]int64)
		g.adjacency[id] = nbrs
	}

	return nbrs
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// Vertices returns all vertex IDs sorted lexicographically.
// The returned slice is owned by the caller.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Degree returns the number of distinct neighbors of id (degree centrality).
// Edge weights are not summed: a neighbor seen in 10 records counts once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is not a vertex.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}
