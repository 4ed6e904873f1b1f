// Package sweep runs independent table rows concurrently.
package sweep

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Rows calls fn(ctx, i) for every i in [0, n) using at most workers
// goroutines. workers <= 0 means GOMAXPROCS. The first error cancels ctx for
// the remaining calls and is returned.
//
// fn must only write to state owned by index i.
func Rows(ctx context.Context, n, workers int, fn func(ctx context.Context, i int) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, i)
		})
	}
	return g.Wait()
}
