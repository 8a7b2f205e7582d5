// Package pipeline fans independent per-sequence scans across a worker
// pool. Every scan is a pure, bounded computation, so the pool needs no
// coordination beyond cancellation and first-error capture; results come
// back in input order regardless of completion order.
package pipeline

import (
	"context"
	"sync"
)

// Map runs fn over each sequence on up to threads workers (threads < 1
// means 1) and returns the results in input order. The first error cancels
// outstanding work and is returned.
func Map[T any](ctx context.Context, threads int, seqs []string, fn func(index int, seq string) (T, error)) ([]T, error) {
	if len(seqs) == 0 {
		return []T{}, nil
	}
	if threads < 1 {
		threads = 1
	}
	if threads > len(seqs) {
		threads = len(seqs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int, threads)
	results := make([]T, len(seqs))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					out, err := fn(i, seqs[i])
					if err != nil {
						fail(err)
						return
					}
					results[i] = out
				}
			}
		}()
	}

feed:
	for i := range seqs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
