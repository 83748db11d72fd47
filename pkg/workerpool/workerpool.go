// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Result pairs one input item with the outcome of processing it.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// ProcessCollect runs a worker pool over the items and collects an outcome
// for every one of them. One item's failure does not stop the others; the
// caller decides what a partial failure means. Results are ordered by input
// index. After the context is canceled, unstarted items report the context
// error instead of being processed.
func ProcessCollect[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (R, error),
) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if err := ctx.Err(); err != nil {
					results[idx] = Result[R]{Index: idx, Err: err}
					continue
				}
				value, err := process(ctx, items[idx])
				results[idx] = Result[R]{Index: idx, Value: value, Err: err}
			}
		}()
	}

	for idx := range items {
		tasks <- idx
	}
	close(tasks)
	wg.Wait()

	return results
}
