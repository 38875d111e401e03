package join

import (
	"context"
	"slices"

	"github.com/wangTheTiger/new-ring/internal/ltj"
	"github.com/wangTheTiger/new-ring/internal/options"
	"github.com/wangTheTiger/new-ring/internal/triples"
	"golang.org/x/sync/errgroup"
)

// EvaluateAll evaluates independent queries concurrently over the shared
// idx, at most opts.Parallelism at a time. Result i holds the tuples of
// queries[i]. The first error cancels the remaining queries. A
// non-positive Parallelism falls back to options.DefaultParallelism.
func EvaluateAll(ctx context.Context, idx ltj.Index, queries []*Query, opts *options.Options) ([][][]triples.ID, error) {
	results := make([][][]triples.ID, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	limit := opts.Parallelism
	if limit <= 0 {
		limit = options.DefaultParallelism
	}
	g.SetLimit(limit)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			return Evaluate(gctx, idx, q, opts, func(tuple []triples.ID) bool {
				results[i] = append(results[i], slices.Clone(tuple))
				return true
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
