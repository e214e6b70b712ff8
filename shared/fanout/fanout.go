package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Sum runs fn for every index in [0, n) on at most workers goroutines and
// adds up the results. workers <= 0 means no limit.
//
// The first error cancels the context passed to the remaining calls and is
// returned; calls that have not started yet are skipped.
func Sum(ctx context.Context, n, workers int, fn func(ctx context.Context, i int) (uint64, error)) (uint64, error) {
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	results := make([]uint64, n)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := fn(ctx, i)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, v := range results {
		total += v
	}
	return total, nil
}
