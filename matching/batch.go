package matching

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MatchAll matches independent instances in parallel, at most workers at a
// time (workers <= 0 means no limit). Each instance gets its own network,
// so nothing mutable is shared; an Observer in opts.Flow, however, is
// called from several goroutines and must be safe for concurrent use.
//
// Results are returned in input order. The first failure cancels the
// remaining work and is returned annotated with the instance index.
func MatchAll(ctx context.Context, insts []Instance, workers int, opts *Options) ([]*Result, error) {
	results := make([]*Result, len(insts))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i := range insts {
		i := i
		eg.Go(func() error {
			res, err := Match(ctx, insts[i], opts)
			if err != nil {
				return fmt.Errorf("instance %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
