package builder

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/genremap/core"
)

// applyBatch fills per-shard scratch graphs, folds them into one batch graph
// and merges that into b.graph with a single Merge. b.graph is touched only
// after every shard succeeded.
// Caller holds b.mu.
func (b *Builder) applyBatch(ctx context.Context, batch []prepared) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(batch) == 0 {
		return 0, nil
	}

	shards := shardCount(len(batch), b.cfg.workers)
	partials := make([]*core.Graph, shards)
	counts := make([]int, shards)
	size := (len(batch) + shards - 1) / shards

	g, gctx := errgroup.WithContext(ctx)
	for s := 0; s < shards; s++ {
		lo := s * size
		hi := lo + size
		if hi > len(batch) {
			hi = len(batch)
		}
		s, part := s, batch[lo:hi]
		g.Go(func() error {
			local := core.NewGraph()
			for i, p := range part {
				// check for cancellation every shard-sized stride
				if i%minShardSize == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				n, err := apply(local, p)
				if err != nil {
					return err
				}
				counts[s] += n
			}
			partials[s] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	whole := partials[0]
	total := counts[0]
	for s := 1; s < shards; s++ {
		if err := whole.Merge(partials[s]); err != nil {
			return 0, err
		}
		total += counts[s]
	}
	if err := b.graph.Merge(whole); err != nil {
		return 0, err
	}

	return total, nil
}

// shardCount picks how many workers a batch of n prepared records gets:
// at most workers, and no shard smaller than minShardSize.
func shardCount(n, workers int) int {
	if workers <= 1 || n < 2*minShardSize {
		return 1
	}
	shards := n / minShardSize
	if shards > workers {
		shards = workers
	}

	return shards
}
