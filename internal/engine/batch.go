package engine

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/varalys/luhnkit/internal/types"
)

// BatchOptions controls ValidateBatch.
type BatchOptions struct {
	// Workers bounds concurrent validations; <= 0 means GOMAXPROCS.
	Workers int
	// Progress, when set, is called once per finished item. Calls are
	// serialized.
	Progress func()
}

// ValidateBatch validates every input independently. Results keep the input
// order. A malformed item produces a result with Error set instead of failing
// the whole batch; only context cancellation returns an error.
func ValidateBatch(ctx context.Context, inputs []string, opts BatchOptions) ([]types.BatchResult, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]types.BatchResult, len(inputs))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, in := range inputs {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = validateOne(in)
			if opts.Progress != nil {
				mu.Lock()
				opts.Progress()
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func validateOne(in string) types.BatchResult {
	seq, err := Parse(in)
	if err != nil {
		return types.BatchResult{Input: in, Error: err.Error()}
	}
	total := SumOf(seq)
	return types.BatchResult{Input: in, Valid: total%10 == 0, Checksum: total}
}
