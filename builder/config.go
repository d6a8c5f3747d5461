// SPDX-License-Identifier: MIT
// Package: genremap/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • labelFn = IdentityLabel
//   • policy  = PolicySkip
//   • workers = DefaultWorkers (sequential)
//   • logger  = zap.NewNop()
//   • metrics = nil (no Prometheus counters)

package builder

import "go.uber.org/zap"

// builderConfig aggregates all knobs used by the Builder.
// It is held by VALUE inside the Builder (immutable after New).
type builderConfig struct {
	labelFn LabelFn
	policy  Policy
	workers int
	logger  *zap.Logger
	metrics *Metrics
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		labelFn: IdentityLabel,
		policy:  PolicySkip,
		workers: DefaultWorkers,
		logger:  zap.NewNop(),
	}
	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
