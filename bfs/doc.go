// Package bfs provides breadth-first search over a co-occurrence graph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Found: whether the WithTarget vertex was discovered
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops as soon as a WithTarget vertex is discovered.
//
// Edge weights are never consulted: a pair seen in one record and a pair
// seen in a thousand records are both a single hop.
//
// Determinism
//
//	The graph's NeighborIDs returns labels sorted ascending and BFS enqueues
//	neighbors in that order, so among several shortest paths the one through
//	lexicographically smaller labels is discovered first.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E·log d)   (each vertex and edge seen at most once; neighbor lists sorted)
//   - Memory: O(V)             (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, "PODCASTSERIES_COMEDY", bfs.WithTarget("PODCASTSERIES_NEWS"))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//		// a wrapped OnVisit error, or a context error
//	}
//	if res.Found {
//		path, _ := res.PathTo("PODCASTSERIES_NEWS")
//	}
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if NeighborIDs fails for any vertex.
//   - ErrNoPath               from PathTo when dest was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
