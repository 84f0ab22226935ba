package pathsearch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SolveAll solves independent puzzles concurrently, at most workers at a
// time (workers ≤ 0 means no limit). Each request gets its own engine, so
// no search state is shared; one puzzle's search is never split.
//
// Results are returned in request order. The first failing request cancels
// the others; its error is returned together with whatever results were
// produced. opts apply to every request; the group context replaces any
// context given through WithContext while still inheriting from ctx.
func SolveAll(ctx context.Context, reqs []Request, workers int, opts ...Option) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	perReq := make([]Option, 0, len(opts)+1)
	perReq = append(perReq, opts...)
	perReq = append(perReq, WithContext(gctx))

	for i := range reqs {
		g.Go(func() error {
			r := reqs[i]
			res, err := Solve(r.Matrix, r.Targets, r.BufferSize, perReq...)
			results[i] = res
			if err != nil {
				return fmt.Errorf("request %d %q: %w", i, r.ID, err)
			}

			return nil
		})
	}

	return results, g.Wait()
}
