// Package batch runs per-item workers in bounded-concurrency chunks.
package batch

import (
	"context"
	"sync"
)

// Result is one item's settled outcome. Exactly one of Value and Err is
// meaningful, discriminated by Success.
type Result[R any] struct {
	Success bool
	Value   R
	Err     error
}

// Worker performs the per-item work. Failures are isolated to the item.
type Worker[T, R any] func(ctx context.Context, item T) (R, error)

// Process partitions items into sequential chunks of size and runs the
// worker concurrently within each chunk, waiting for the whole chunk to
// settle before starting the next. Peak concurrency is therefore bounded by
// size. One item failing never cancels its siblings.
//
// When ctx is cancelled, chunks already settled are returned together with a
// cancellation Result for each unprocessed item, keeping the output aligned
// with the input.
func Process[T, R any](ctx context.Context, items []T, size int, worker Worker[T, R]) []Result[R] {
	if size <= 0 {
		size = 1
	}

	results := make([]Result[R], len(items))

	for start := 0; start < len(items); start += size {
		if err := ctx.Err(); err != nil {
			for i := start; i < len(items); i++ {
				results[i] = Result[R]{Err: err}
			}
			return results
		}

		end := start + size
		if end > len(items) {
			end = len(items)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				value, err := worker(ctx, items[idx])
				if err != nil {
					results[idx] = Result[R]{Err: err}
					return
				}
				results[idx] = Result[R]{Success: true, Value: value}
			}(i)
		}
		wg.Wait()
	}

	return results
}

// Tally counts settled successes and failures.
func Tally[R any](results []Result[R]) (succeeded, failed int) {
	for _, r := range results {
		if r.Success {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
