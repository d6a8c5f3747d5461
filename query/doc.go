// Package query answers questions about a frozen co-occurrence graph.
//
// An Engine wraps one immutable core.Graph snapshot and offers:
//
//   - ShortestPath: the fewest-hop chain of labels between two labels,
//     found by breadth-first search over edge existence (weights ignored).
//     Ties between equally short paths resolve by lexicographic neighbor
//     order, so the answer is deterministic.
//   - TopConnected: labels ranked by degree (number of distinct neighbors),
//     highest first, ties broken by ascending label.
//   - TopSubgraph: the subgraph induced by the top-N labels, ready for a
//     renderer (see package converters).
//
// Unknown or unreachable labels are not errors: ShortestPath reports NoPath.
// The engine never mutates its graph and is safe for concurrent use; an
// optional LRU cache (WithPathCache) memoises path answers.
package query
