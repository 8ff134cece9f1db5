package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ParallelMap applies fn to every element of items concurrently and
// returns the results in input order. The first error cancels the
// remaining work and is returned; no partial results are surfaced.
//
// Example:
//
//	summaries, err := ParallelMap(ctx, filenames, svc.buildSummary)
func ParallelMap[In, Out any](
	ctx context.Context,
	items []In,
	fn func(context.Context, In) (Out, error),
) ([]Out, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]Out, len(items))

	for i, item := range items {
		g.Go(func() error {
			result, err := fn(ctx, item)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, fmt.Errorf("parallel execution failed: %w", err)
	}

	return results, nil
}
