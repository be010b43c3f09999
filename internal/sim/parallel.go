package sim

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs several seeded headless runs concurrently. Engines are
// stateful, so each run builds its own Frontend through the factory.
type Ensemble struct {
	factory   func(seed int64) (*Runner, error)
	numRuns   int
	seedStart int64
}

func NewEnsemble(factory func(seed int64) (*Runner, error), numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{factory: factory, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg RunConfig) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			cfgCopy := cfg
			cfgCopy.Seed = e.seedStart + int64(idx)

			runner, err := e.factory(cfgCopy.Seed)
			if err != nil {
				return err
			}

			results[idx], err = runner.Run(ctx, cfgCopy)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParallelFor splits [0, n) across workers and blocks until every
// chunk has run. Chunks are disjoint, so fn may write freely to
// per-index state. workers <= 0 means one worker per CPU.
func ParallelFor(n, minChunk, workers int, fn func(start, end int)) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if n <= minChunk || workers <= 1 {
		fn(0, n)
		return
	}

	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
