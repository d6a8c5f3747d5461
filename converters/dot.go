// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/katalvlaran/genremap/core"
)

// DOTOption configures MarshalDOT.
type DOTOption func(*dotConfig)

type dotConfig struct {
	stripPrefix string
	penWidth    bool
}

func (c dotConfig) display(label string) string {
	if c.stripPrefix == "" {
		return ""
	}
	return strings.TrimPrefix(label, c.stripPrefix)
}

// WithStripPrefix shows labels without prefix (e.g. "PODCASTSERIES_") while
// keeping the full label as the node ID.
func WithStripPrefix(prefix string) DOTOption {
	return func(c *dotConfig) {
		c.stripPrefix = prefix
	}
}

// WithoutPenWidth omits the weight-scaled penwidth edge attribute.
func WithoutPenWidth() DOTOption {
	return func(c *dotConfig) {
		c.penWidth = false
	}
}

// MarshalDOT renders g as a Graphviz graph named name. Every edge carries its
// co-occurrence weight and a penwidth of 1 + 5·w/max(w). Layout is left to
// Graphviz.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - encoding errors from gonum.
//
// Complexity: O(V log V + E).
func MarshalDOT(g core.Reader, name string, opts ...DOTOption) ([]byte, error) {
	cfg := dotConfig{penWidth: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	gg, _, err := toGonum(g, cfg)
	if err != nil {
		return nil, err
	}
	b, err := dot.Marshal(gg, name, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("converters: marshal dot: %w", err)
	}

	return b, nil
}
