// File: methods_edges.go
// Role: Co-occurrence edge mutation and edge-level queries.
// Concurrency:
//   - AddCooccurrence takes the write lock; Weight/HasEdge/EdgeCount take the read lock.
// Invariants enforced here:
//   - symmetric weights, no self-loops, weight ≥ 1 for every stored pair.

package core

// AddCooccurrence increments the weight of the unordered pair {a,b} by delta,
// creating both vertices and the pair as needed, and returns the new weight.
// Both mirror entries adjacency[a][b] and adjacency[b][a] are updated under
// the same lock, so readers never observe an asymmetric pair.
//
// Errors:
//   - ErrEmptyVertexID: if a or b is "".
//   - ErrLoopNotAllowed: if a == b.
//   - ErrBadWeight: if delta < 1.
//   - ErrGraphFrozen: if the graph is a frozen snapshot.
//
// Complexity: O(1) amortized.
func (g *Graph) AddCooccurrence(a, b string, delta int64) (int64, error) {
	// 1) Input validation
	if a == "" || b == "" {
		return 0, ErrEmptyVertexID
	}
	// 2) No self-loops
	if a == b {
		return 0, ErrLoopNotAllowed
	}
	// 3) Only positive increments keep weight ≥ 1
	if delta < 1 {
		return 0, ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return 0, ErrGraphFrozen
	}

	return g.addPairLocked(a, b, delta), nil
}

// addPairLocked performs the mirrored increment. Caller holds the write lock
// and has validated a != b, both non-empty, delta ≥ 1.
func (g *Graph) addPairLocked(a, b string, delta int64) int64 {
	na := g.ensureVertex(a)
	nb := g.ensureVertex(b)
	if _, seen := na[b]; !seen {
		g.edgeCount++
	}
	na[b] += delta
	nb[a] = na[b]
	g.totalWeight += delta

	return na[b]
}

// Weight returns the co-occurrence count of {a,b}.
// Unknown labels, a == b and never-observed pairs all yield 0.
// Complexity: O(1).
func (g *Graph) Weight(a, b string) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency[a][b]
}

// HasEdge reports whether {a,b} was observed in at least one record.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	return g.Weight(a, b) > 0
}

// EdgeCount returns the number of unordered pairs with weight ≥ 1.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// TotalWeight returns the sum of weights over all unordered pairs, i.e. the
// number of pair observations ingested so far.
// Complexity: O(1).
func (g *Graph) TotalWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.totalWeight
}
