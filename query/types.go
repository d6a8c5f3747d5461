package query

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrNilGraph is returned by New when no graph is supplied.
var ErrNilGraph = errors.New("query: graph is nil")

// Path is a shortest-path answer. Hops is the number of edges; Labels lists
// the labels from start to end inclusive.
type Path struct {
	Hops   int
	Labels []string
}

// NoPath is the answer when either label is unknown or the labels lie in
// different components.
var NoPath = Path{Hops: -1}

// Found reports whether p is an actual path.
func (p Path) Found() bool { return p.Hops >= 0 }

// String renders the path as "A --> B --> C".
func (p Path) String() string {
	if !p.Found() {
		return "no path"
	}
	return strings.Join(p.Labels, " --> ")
}

// Ranked is one entry of a TopConnected answer.
type Ranked struct {
	Label  string
	Degree int
}

// String renders the entry the way the CLI prints it.
func (r Ranked) String() string {
	return fmt.Sprintf("%s: connected to %d genres", r.Label, r.Degree)
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	cacheSize int
	logger    *zap.Logger
}

// WithPathCache memoises up to size ShortestPath answers in an LRU cache.
// size == 0 disables caching. Panics on a negative size.
func WithPathCache(size int) Option {
	if size < 0 {
		panic(fmt.Sprintf("query: WithPathCache(%d)", size))
	}
	return func(c *engineConfig) {
		c.cacheSize = size
	}
}

// WithLogger sets the logger for query diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("query: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = l
	}
}
