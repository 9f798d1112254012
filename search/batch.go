package search

import (
	"cmp"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// OptimumAll runs Optimum independently for every initial state, at most
// limit at a time (limit ≤ 0 means one goroutine per state).
//
// Each run owns its frontier and dominance store; opts are shared. The
// Observer, Logger and OnStep hook from opts are called from every run's
// goroutine and must be safe for concurrent use (metrics.Collector and
// slog loggers are). Results are returned in input order. The first failing
// run cancels the context of the others; the returned slice then holds the
// results of the runs that completed and nil for the rest.
//
// Every run is canceled through ctx. A non-nil ctx takes precedence over a
// WithContext option; with a nil ctx the WithContext value (or
// context.Background) is the parent.
func OptimumAll[S State[S, K, V], K comparable, V cmp.Ordered](ctx context.Context, initials []S, limit int, opts ...Option) ([]*Result[S, V], error) {
	return runAll[S, K, V](ctx, Maximize, initials, limit, opts)
}

// GoalAll is the Minimize counterpart of OptimumAll.
func GoalAll[S State[S, K, V], K comparable, V cmp.Ordered](ctx context.Context, initials []S, limit int, opts ...Option) ([]*Result[S, V], error) {
	return runAll[S, K, V](ctx, Minimize, initials, limit, opts)
}

// runAll fans the searches out over an errgroup.
func runAll[S State[S, K, V], K comparable, V cmp.Ordered](ctx context.Context, mode Mode, initials []S, limit int, opts []Option) ([]*Result[S, V], error) {
	base, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = base.Ctx
	}

	results := make([]*Result[S, V], len(initials))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, initial := range initials {
		runOpts := append(append([]Option(nil), opts...), WithContext(gctx))
		if base.RunID != "" {
			runOpts = append(runOpts, WithRunID(fmt.Sprintf("%s-%d", base.RunID, i)))
		}
		g.Go(func() error {
			st, err := NewStepper[S, K, V](mode, initial, runOpts...)
			if err != nil {
				return err
			}
			res, err := st.Run()
			if err != nil {
				return fmt.Errorf("search: run %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
