// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only summaries.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Stats produces a read-only snapshot of catalog sizes and degree extremes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Copy counters and scan vertices once for isolated/max degree.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.adjacency),
		EdgeCount:   g.edgeCount,
		TotalWeight: g.totalWeight,
		Frozen:      g.frozen,
	}
	var d int
	for _, nbrs := range g.adjacency { // single pass over vertices (O(V))
		d = len(nbrs)
		if d == 0 {
			stats.IsolatedCount++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
