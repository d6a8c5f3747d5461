// SPDX-License-Identifier: MIT

package query

import (
	"context"
	"fmt"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/genremap/bfs"
	"github.com/katalvlaran/genremap/core"
)

type pathKey struct {
	start, end string
}

// Engine answers path and ranking queries over one immutable graph.
type Engine struct {
	g      *core.Graph
	logger *zap.Logger
	cache  *lru.Cache[pathKey, Path] // nil when caching is off

	rankOnce sync.Once
	ranked   []Ranked
}

// New returns an Engine over a frozen snapshot of g. A frozen *core.Graph is
// used as is; anything else is copied first, so later changes to g are not
// observed.
//
// Errors:
//   - ErrNilGraph if g is nil.
//
// Complexity: O(1) for a frozen *core.Graph, O(V + E) otherwise.
func New(g core.Reader, opts ...Option) (*Engine, error) {
	snap, err := snapshot(g)
	if err != nil {
		return nil, err
	}

	cfg := engineConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Engine{g: snap, logger: cfg.logger}
	if cfg.cacheSize > 0 {
		if e.cache, err = lru.New[pathKey, Path](cfg.cacheSize); err != nil {
			return nil, fmt.Errorf("query: path cache: %w", err)
		}
	}

	return e, nil
}

func snapshot(g core.Reader) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cg, ok := g.(*core.Graph); ok {
		if cg == nil {
			return nil, ErrNilGraph
		}
		if cg.Frozen() {
			return cg, nil
		}
		return cg.Freeze(), nil
	}

	cp := core.NewGraph()
	if err := cp.Merge(g); err != nil {
		return nil, fmt.Errorf("query: copy graph: %w", err)
	}
	return cp.Freeze(), nil
}

// Graph returns the snapshot the engine queries.
func (e *Engine) Graph() *core.Graph { return e.g }

// ShortestPath is ShortestPathContext with a background context. Internal
// failures are logged and reported as NoPath.
func (e *Engine) ShortestPath(start, end string) Path {
	p, err := e.ShortestPathContext(context.Background(), start, end)
	if err != nil {
		e.logger.Error("shortest path failed",
			zap.String("start", start), zap.String("end", end), zap.Error(err))
		return NoPath
	}
	return p
}

// ShortestPathContext returns the fewest-hop path from start to end.
//
//   - unknown start or end: NoPath.
//   - start == end (known): Path{Hops: 0, Labels: [start]}.
//   - different components: NoPath.
//
// Among equally short paths the one found by visiting neighbors in
// lexicographic order wins.
//
// Errors: only ctx.Err() on cancellation.
//
// Complexity: O(V + E) per uncached query.
func (e *Engine) ShortestPathContext(ctx context.Context, start, end string) (Path, error) {
	if !e.g.HasVertex(start) || !e.g.HasVertex(end) {
		return NoPath, nil
	}
	if start == end {
		return Path{Hops: 0, Labels: []string{start}}, nil
	}

	key := pathKey{start: start, end: end}
	if e.cache != nil {
		if p, ok := e.cache.Get(key); ok {
			return clonePath(p), nil
		}
	}

	res, err := bfs.BFS(e.g, start, bfs.WithContext(ctx), bfs.WithTarget(end))
	if err != nil {
		return NoPath, fmt.Errorf("query: path %q -> %q: %w", start, end, err)
	}

	p := NoPath
	if res.Found {
		labels, err := res.PathTo(end)
		if err != nil {
			return NoPath, fmt.Errorf("query: path %q -> %q: %w", start, end, err)
		}
		p = Path{Hops: len(labels) - 1, Labels: labels}
	}
	e.logger.Debug("shortest path",
		zap.String("start", start), zap.String("end", end),
		zap.Int("hops", p.Hops), zap.Int("explored", len(res.Depth)))

	if e.cache != nil {
		e.cache.Add(key, clonePath(p))
	}
	return p, nil
}

// TopConnected returns the n labels with the most distinct neighbors,
// highest degree first, ties by ascending label. n <= 0 yields an empty
// slice; n above the vertex count yields every label.
//
// Complexity: O(V log V) once, then O(n) per call.
func (e *Engine) TopConnected(n int) []Ranked {
	if n <= 0 {
		return []Ranked{}
	}
	e.rankOnce.Do(e.rank)
	if n > len(e.ranked) {
		n = len(e.ranked)
	}
	out := make([]Ranked, n)
	copy(out, e.ranked[:n])

	return out
}

// TopSubgraph returns the frozen subgraph induced by TopConnected(n).
func (e *Engine) TopSubgraph(n int) *core.Graph {
	top := e.TopConnected(n)
	keep := make(map[string]bool, len(top))
	for _, r := range top {
		keep[r.Label] = true
	}
	return core.InducedSubgraph(e.g, keep)
}

func (e *Engine) rank() {
	ids := e.g.Vertices()
	ranked := make([]Ranked, 0, len(ids))
	for _, id := range ids {
		d, err := e.g.Degree(id)
		if err != nil {
			continue // unreachable on a frozen graph
		}
		ranked = append(ranked, Ranked{Label: id, Degree: d})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Degree != ranked[j].Degree {
			return ranked[i].Degree > ranked[j].Degree
		}
		return ranked[i].Label < ranked[j].Label
	})
	e.ranked = ranked
}

func clonePath(p Path) Path {
	if p.Labels == nil {
		return p
	}
	return Path{Hops: p.Hops, Labels: append([]string(nil), p.Labels...)}
}
