// SPDX-License-Identifier: MIT
// Package: genremap/builder
//
// api.go — public entry-points of the builder package.
//
// Design contract:
//   - The Builder owns the only mutable *core.Graph; callers receive frozen
//     snapshots (core.Graph.Freeze) and can query them concurrently.
//   - Batches are applied to a scratch graph first and merged on success, so a
//     rejected, failed or cancelled batch leaves the graph untouched.
//   - Determinism: the resulting graph depends only on the multiset of
//     records, never on their order or on the number of workers.

package builder

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/genremap/core"
)

// Report summarises what a Builder has ingested so far.
type Report struct {
	Records  int // records seen
	Ingested int // valid records with at least one label
	Empty    int // valid records without labels (contribute nothing)
	Skipped  int // invalid records dropped under PolicySkip
	Pairs    int // pair observations added
}

// Builder accumulates records into a co-occurrence graph.
// All methods are safe for concurrent use; ingestion calls are serialised.
type Builder struct {
	mu     sync.Mutex
	cfg    builderConfig
	graph  *core.Graph
	report Report
}

// New returns an empty Builder configured by opts.
// Complexity: O(len(opts)).
func New(opts ...Option) *Builder {
	return &Builder{
		cfg:   newBuilderConfig(opts...),
		graph: core.NewGraph(),
	}
}

// Add ingests a single record. A record rejected with an error is not
// counted in the Report, matching IngestContext.
//
// Errors:
//   - ErrInvalidRecord (wrapping ErrEmptyLabel) under PolicyAbort.
//     Under PolicySkip invalid records are logged and counted, and Add
//     returns nil.
//
// Complexity: O(k²) for a record with k distinct labels.
func (b *Builder) Add(rec Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := prepare(rec, b.cfg.labelFn)
	if err != nil {
		if b.cfg.policy == PolicyAbort {
			return builderErrorf(MethodAdd, invalid(err), "record %q", rec.Title)
		}
		b.skip(b.report.Records, rec, err)
		b.report.Records++
		b.report.Skipped++
		b.cfg.metrics.observe(0, 1, 0)
		return nil
	}
	if len(p.labels) == 0 {
		b.report.Records++
		b.report.Empty++
		return nil
	}
	pairs, err := apply(b.graph, p)
	if err != nil {
		return builderErrorf(MethodAdd, err, "record %q", rec.Title)
	}
	b.report.Records++
	b.report.Ingested++
	b.report.Pairs += pairs
	b.cfg.metrics.observe(1, 0, pairs)

	return nil
}

// Ingest adds a batch of records and returns a frozen snapshot of the
// resulting graph. It is equivalent to IngestContext with a background
// context.
func (b *Builder) Ingest(records []Record) (*core.Graph, error) {
	return b.IngestContext(context.Background(), records)
}

// IngestContext adds a batch of records and returns a frozen snapshot.
//
// Implementation:
//   - Stage 1: normalise and validate every record (PolicyAbort stops here
//     on the first invalid record, before any mutation).
//   - Stage 2: fill one scratch graph per worker shard.
//   - Stage 3: merge the scratch graphs into the builder's graph.
//
// Errors:
//   - ErrInvalidRecord (wrapping ErrEmptyLabel) under PolicyAbort, with the
//     index of the offending record.
//   - ctx.Err() if the context is cancelled before the merge.
//
// Complexity: O(Σ kᵢ²) over records plus O(V+E) for the snapshot.
func (b *Builder) IngestContext(ctx context.Context, records []Record) (*core.Graph, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Stage 1: validation
	batch := make([]prepared, 0, len(records))
	var skipped, empty int
	for i, rec := range records {
		p, err := prepare(rec, b.cfg.labelFn)
		if err != nil {
			if b.cfg.policy == PolicyAbort {
				return nil, builderErrorf(MethodIngest, invalid(err), "record %d (%q)", i, rec.Title)
			}
			b.skip(b.report.Records+i, rec, err)
			skipped++
			continue
		}
		if len(p.labels) == 0 {
			empty++
			continue
		}
		batch = append(batch, p)
	}

	// Stage 2 + 3: build partial graphs and merge
	pairs, err := b.applyBatch(ctx, batch)
	if err != nil {
		return nil, builderErrorf(MethodIngest, err, "apply %d records", len(batch))
	}

	b.report.Records += len(records)
	b.report.Ingested += len(batch)
	b.report.Empty += empty
	b.report.Skipped += skipped
	b.report.Pairs += pairs
	b.cfg.metrics.observe(len(batch), skipped, pairs)

	b.cfg.logger.Debug("batch ingested",
		zap.Int("records", len(records)),
		zap.Int("ingested", len(batch)),
		zap.Int("empty", empty),
		zap.Int("skipped", skipped),
		zap.Int("pairs", pairs),
		zap.Int("vertices", b.graph.VertexCount()),
		zap.Int("edges", b.graph.EdgeCount()),
	)

	return b.graph.Freeze(), nil
}

// IngestStream adds records from ch until it is closed, then returns a
// frozen snapshot. Records are applied one by one through Add, so on
// cancellation or an abort-policy rejection the records received earlier
// stay applied.
//
// Errors:
//   - ErrNilChannel if ch is nil.
//   - ctx.Err() on cancellation.
//   - ErrInvalidRecord under PolicyAbort.
func (b *Builder) IngestStream(ctx context.Context, ch <-chan Record) (*core.Graph, error) {
	if ch == nil {
		return nil, builderErrorf(MethodIngestStream, ErrNilChannel, "no input")
	}
	for {
		select {
		case <-ctx.Done():
			return nil, builderErrorf(MethodIngestStream, ctx.Err(), "stream interrupted")
		case rec, ok := <-ch:
			if !ok {
				return b.Snapshot(), nil
			}
			if err := b.Add(rec); err != nil {
				return nil, fmt.Errorf("%s: %w", MethodIngestStream, err)
			}
		}
	}
}

// Snapshot returns a frozen copy of the current graph. It waits for an
// in-flight batch, so a snapshot never shows part of a batch.
// Complexity: O(V + E).
func (b *Builder) Snapshot() *core.Graph {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.graph.Freeze()
}

// Report returns the cumulative ingestion summary.
func (b *Builder) Report() Report {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.report
}

// skip logs an invalid record dropped under PolicySkip; counting is left to
// the caller so a batch commits its counters at once.
func (b *Builder) skip(index int, rec Record, err error) {
	b.cfg.logger.Warn("skipping invalid record",
		zap.Int("index", index),
		zap.String("title", rec.Title),
		zap.Strings("labels", rec.Labels),
		zap.Error(err),
	)
}

// invalid tags err as an invalid record while keeping it visible to errors.Is.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
}

// apply adds one prepared record to g and returns the number of pairs added.
func apply(g *core.Graph, p prepared) (int, error) {
	var (
		i, j int
		err  error
	)
	for i = range p.labels {
		if err = g.AddVertex(p.labels[i]); err != nil {
			return 0, err
		}
	}
	for i = 0; i < len(p.labels); i++ {
		for j = i + 1; j < len(p.labels); j++ {
			if _, err = g.AddCooccurrence(p.labels[i], p.labels[j], 1); err != nil {
				return 0, err
			}
		}
	}

	return p.pairs(), nil
}
