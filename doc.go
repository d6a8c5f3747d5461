// Package genremap maps how podcast genres co-occur: every show tagged with
// several genres links those genres, and the link weight counts the shows
// that carry both.
//
// 🚀 What is genremap?
//
//	An in-memory, thread-safe co-occurrence graph plus the tools around it:
//		• Ingestion: records → weighted undirected graph, sequential or sharded
//		• Traversal: BFS with hooks, depth limits and early target exit
//		• Queries: fewest-hop genre chains, most connected genres
//		• Hand-off: gonum graphs, Graphviz DOT, JSON node/edge documents
//		• CLI: one-shot commands and the classic numbered menu
//
// ✨ Guarantees
//
//   - Deterministic – same records, same graph, same answers, in any order
//   - Immutable snapshots – builders mutate, queries read frozen copies
//   - Negative answers are values – unknown or unreachable genres give NoPath
//
// Packages:
//
//	core/        — Graph (symmetric weighted adjacency), Reader, snapshots
//	builder/     — Record, Builder: label normalisation, policies, workers, metrics
//	bfs/         — breadth-first search over any Reader
//	query/       — Engine: ShortestPath, TopConnected, TopSubgraph
//	converters/  — gonum, DOT and JSON exports
//	dataset/     — loader for the chart dump ({"title","genres","country"} array)
//	config/      — YAML configuration with validation
//	cmd/genremap — command-line interface
//
// Quick start:
//
//	go install github.com/katalvlaran/genremap/cmd/genremap@latest
//	genremap --dataset top_US_podcasts.json path comedy true_crime
package genremap
