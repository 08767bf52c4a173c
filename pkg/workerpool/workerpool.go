// Package workerpool provides a bounded fan-out over a slice of work items.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// Process runs up to workerCount workers over items, invoking process for
// each. The first process error cancels the pool context and stops further
// work; in-flight items finish before Process returns. Workers own no shared
// state, results belong to the process closure.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	errs := make(chan error, workerCount)

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, cancel, tasks, errs, process)
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()
	close(errs)

	// A sibling cancelled by the first failure may also report an error
	// wrapping the cancellation; the originating failure wins over those.
	var firstErr error
	for err := range errs {
		if err == nil {
			continue
		}
		if firstErr == nil || (isCancellation(firstErr) && !isCancellation(err)) {
			firstErr = err
		}
	}
	if firstErr != nil {
		return firstErr
	}

	return ctx.Err()
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func worker[T any](
	ctx context.Context,
	cancel context.CancelFunc,
	tasks <-chan T,
	errs chan<- error,
	process func(context.Context, T) error,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-tasks:
			if !ok {
				return
			}
			if err := process(ctx, item); err != nil {
				select {
				case errs <- err:
				default:
				}
				cancel()
				return
			}
		}
	}
}
