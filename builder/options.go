// SPDX-License-Identifier: MIT
// Package: genremap/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     ingestion itself never panics.

package builder

import (
	"fmt"

	"go.uber.org/zap"
)

// Option customizes a Builder by mutating its builderConfig before use.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithLabelFunc sets the label normalisation applied before validation.
// Panics on nil.
func WithLabelFunc(fn LabelFn) Option {
	if fn == nil {
		panic("builder: WithLabelFunc(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}

// WithPolicy selects how invalid records are handled.
// Panics on an unknown Policy value.
func WithPolicy(p Policy) Option {
	if p != PolicySkip && p != PolicyAbort {
		panic(fmt.Sprintf("builder: WithPolicy(%d)", int(p)))
	}
	return func(c *builderConfig) {
		c.policy = p
	}
}

// WithWorkers shards batch ingestion across n workers, each filling a
// private partial graph that is merged afterwards. n must be in
// [1, MaxWorkers]; 1 means sequential ingestion.
func WithWorkers(n int) Option {
	if n < 1 || n > MaxWorkers {
		panic(fmt.Sprintf("builder: WithWorkers(%d) outside [1,%d]", n, MaxWorkers))
	}
	return func(c *builderConfig) {
		c.workers = n
	}
}

// WithLogger sets the structured logger used to report skipped records and
// batch summaries. Panics on nil; use zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithMetrics attaches Prometheus counters (see NewMetrics).
// A nil *Metrics disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *builderConfig) {
		c.metrics = m
	}
}
