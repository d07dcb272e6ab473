package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
//
// The interface is deliberately small so that a future can be retyped by a
// thin wrapper without re-implementing execution: a wrapper that forwards
// all four methods behaves exactly like the computation it wraps, down to
// the completion channel it blocks on.
type Future[U any] interface {
	// Done returns a channel that is closed once the computation has finished.
	Done() <-chan struct{}

	// Await waits for the computation to complete and returns its result and error.
	Await() (U, error)

	// AwaitWithTimeout waits for the computation to complete with a timeout.
	// Returns the result and error if the computation completes before the
	// timeout; otherwise returns ErrTimeout.
	AwaitWithTimeout(timeout time.Duration) (U, error)

	// IsComplete checks if the computation is complete without blocking.
	IsComplete() bool
}

// task is the canonical Future implementation, backed by a single goroutine.
// result and err are written exactly once, before done is closed.
type task[U any] struct {
	result U
	err    error
	done   chan struct{}
}

func (t *task[U]) Done() <-chan struct{} { return t.done }

func (t *task[U]) Await() (U, error) {
	<-t.done
	return t.result, t.err
}

func (t *task[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-t.done:
		return t.result, t.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

func (t *task[U]) IsComplete() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Go executes a function asynchronously and returns a Future for its result.
// The function receives the provided context and is responsible for honoring
// its cancellation.
func Go[U any](ctx context.Context, fn func(context.Context) (U, error)) Future[U] {
	t := &task[U]{done: make(chan struct{})}

	go func() {
		defer close(t.done)

		// Early exit prevents goroutine leak when context is pre-canceled
		select {
		case <-ctx.Done():
			t.err = ctx.Err()
			return
		default:
		}

		t.result, t.err = fn(ctx)
	}()

	return t
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and
// returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) Future[U] {
	return Go(ctx, func(ctx context.Context) (U, error) {
		return fn(ctx, param)
	})
}

// WaitAll waits for all futures to complete and returns a slice of their results
// and an error if any of the futures returned an error.
func WaitAll[U any](futures ...Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// WaitAny waits for any of the futures to complete and returns the index of the
// completed future, its result, and any error it might have returned.
// Note: This function spawns one goroutine per future. All goroutines will
// complete naturally when their respective futures finish.
func WaitAny[U any](futures ...Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	done := make(chan struct {
		index  int
		result U
		err    error
	})

	for i, future := range futures {
		go func(index int, f Future[U]) {
			result, err := f.Await()
			select {
			case done <- struct {
				index  int
				result U
				err    error
			}{index, result, err}:
			default:
				// Prevents race condition where multiple futures complete simultaneously
			}
		}(i, future)
	}

	res := <-done
	return res.index, res.result, res.err
}
