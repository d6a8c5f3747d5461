// File: methods_clone.go
// Role: Cloning, freezing and additive merging of graph instances.
// Determinism:
//   - Clone/Freeze copy weights exactly; Merge is order-independent because
//     weight addition is commutative and associative.
// Concurrency:
//   - Read locks on the source; the result is a fresh graph instance.
//   - Merge snapshots the source before taking the destination write lock,
//     so merging a graph into itself cannot deadlock.

package core

// Clone returns a deep, mutable copy of the graph (the frozen flag is not
// carried over).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency:   make(map[string]map[string]int64, len(g.adjacency)),
		edgeCount:   g.edgeCount,
		totalWeight: g.totalWeight,
	}
	var (
		id, nbr string
		nbrs    map[string]int64
		w       int64
	)
	for id, nbrs = range g.adjacency {
		cp := make(map[string]int64, len(nbrs))
		for nbr, w = range nbrs {
			cp[nbr] = w
		}
		clone.adjacency[id] = cp
	}

	return clone
}

// Freeze returns an immutable deep copy of the graph. The receiver stays
// mutable, so a builder can keep ingesting while published snapshots are
// queried concurrently.
// Complexity: O(V + E).
func (g *Graph) Freeze() *Graph {
	snap := g.Clone()
	snap.frozen = true

	return snap
}

// Frozen reports whether the graph rejects mutation.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// pair is an unordered edge snapshot used by Merge.
type pair struct {
	a, b string
	w    int64
}

// Merge adds every vertex and pair weight of src into g. Weights accumulate,
// so merging the partial graphs of two record batches yields the graph of
// the combined batch.
//
// Errors:
//   - ErrNilGraph: if src is nil.
//   - ErrGraphFrozen: if g is a frozen snapshot.
//   - errors from src reads (ErrVertexNotFound if src is mutated concurrently).
//
// Complexity: O(V' + E') for src with V' vertices and E' pairs.
func (g *Graph) Merge(src Reader) error {
	if src == nil {
		return ErrNilGraph
	}
	if sg, ok := src.(*Graph); ok && sg == nil {
		return ErrNilGraph
	}

	// Stage 1: snapshot src without holding g's lock.
	vertices := src.Vertices()
	pairs := make([]pair, 0, src.EdgeCount())
	for _, v := range vertices {
		nbrs, err := src.Neighbors(v)
		if err != nil {
			return err
		}
		for nbr, w := range nbrs {
			if v < nbr { // each unordered pair once
				pairs = append(pairs, pair{a: v, b: nbr, w: w})
			}
		}
	}

	// Stage 2: apply under the write lock.
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrGraphFrozen
	}
	for _, v := range vertices {
		g.ensureVertex(v)
	}
	for _, p := range pairs {
		g.addPairLocked(p.a, p.b, p.w)
	}

	return nil
}

// Equal reports whether g and other have the same vertex set and the same
// weight for every pair. The frozen flag is ignored.
// Complexity: O(V + E).
func (g *Graph) Equal(other Reader) bool {
	if other == nil {
		return false
	}
	if g.VertexCount() != other.VertexCount() || g.EdgeCount() != other.EdgeCount() {
		return false
	}
	for _, v := range g.Vertices() {
		if !other.HasVertex(v) {
			return false
		}
		mine, err := g.Neighbors(v)
		if err != nil {
			return false
		}
		theirs, err := other.Neighbors(v)
		if err != nil || len(mine) != len(theirs) {
			return false
		}
		for nbr, w := range mine {
			if theirs[nbr] != w {
				return false
			}
		}
	}

	return true
}
