// Package builder turns labeled records into a co-occurrence core.Graph.
// It owns every mutation of the graph it builds and hands out frozen
// snapshots, so query code never sees a graph that is still changing.
//
// The package offers the following key components:
//
//   - Record: one source item (e.g. a podcast) with its category labels.
//   - Builder: accumulates records into a private graph.
//     – Add:          ingest a single record (streaming).
//     – Ingest:       ingest a batch and return a frozen snapshot.
//     – IngestStream: ingest from a channel until closed or cancelled.
//     – Snapshot:     frozen copy of the current state.
//   - Functional options (Option):
//     – WithLabelFunc: label normalisation (TrimSpaceLabel, UpperLabel, …).
//     – WithPolicy:    PolicySkip (default) or PolicyAbort for invalid records.
//     – WithWorkers:   shard a batch across n workers, merge partial graphs.
//     – WithLogger:    structured zap logging of skipped records.
//     – WithMetrics:   Prometheus counters for ingested/skipped records.
//
// Ingestion rule:
//
//	For each record the labels are normalised and de-duplicated, then every
//	unordered pair (i<j) gets +1. A record therefore adds at most 1 to any
//	pair, and a weight is exactly "the number of records carrying both
//	labels". Records with a single label register an isolated vertex;
//	records without labels contribute nothing and are not errors.
//
// Guarantees:
//
//   - Order independence: any permutation of a batch yields an equal graph.
//   - Additivity: Ingest(R1); Ingest(R2) equals Ingest(R1+R2).
//   - Parallel ingestion yields the same graph as sequential ingestion.
//   - PolicyAbort validates the whole batch before the first mutation, so a
//     rejected batch leaves the graph untouched.
package builder
