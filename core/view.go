// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read locks on source; result is a fresh, frozen graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only vertices in 'keep' and pairs with both endpoints kept.

package core

// InducedSubgraph returns a frozen Graph induced by the set keep: it contains
// every vertex v of g with keep[v] == true and every pair whose endpoints are
// both kept, with the original weights. Labels in keep that are not vertices
// of g are ignored.
//
// Renderers use it to draw only the top-N most connected labels.
//
// Complexity: O(V + E). Concurrency: read lock only on g.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()
	if g == nil {
		out.frozen = true
		return out
	}

	g.mu.RLock()
	var (
		id, nbr string
		nbrs    map[string]int64
		w       int64
	)
	for id, nbrs = range g.adjacency {
		if !keep[id] {
			continue
		}
		out.ensureVertex(id)
		for nbr, w = range nbrs {
			// each unordered pair once; both endpoints must be kept
			if id < nbr && keep[nbr] {
				out.addPairLocked(id, nbr, w)
			}
		}
	}
	g.mu.RUnlock()

	out.frozen = true

	return out
}
