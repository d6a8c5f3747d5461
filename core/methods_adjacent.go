// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, Neighbors).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - Neighbors() returns an independent map (no shared backing with the graph).
// Concurrency:
//   - Read lock only.

package core

import "sort"

// NeighborIDs returns the distinct labels that co-occurred with id, sorted
// lexicographically ascending. Traversals rely on this order for
// reproducible results.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is not a vertex.
//
// Complexity: O(d log d), where d is the degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(nbrs))
	for nbr := range nbrs {
		ids = append(ids, nbr)
	}
	g.mu.RUnlock()
	// Sort outside the lock; ids is private to this call.
	sort.Strings(ids)

	return ids, nil
}

// Neighbors returns a copy of the neighbor → weight mapping of id.
// Renderers use it to style edges by weight; mutating the result does not
// affect the graph.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is not a vertex.
//
// Complexity: O(d).
func (g *Graph) Neighbors(id string) (map[string]int64, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make(map[string]int64, len(nbrs))
	for nbr, w := range nbrs {
		out[nbr] = w
	}

	return out, nil
}
