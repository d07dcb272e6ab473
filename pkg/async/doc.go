// Package async provides simple, generic helpers for running computations asynchronously and
// waiting for their completion.
//
// The package is centred around the generic Future interface that represents the eventual result
// of an asynchronous operation.  A Future is obtained by calling Go (or Async, when the
// computation takes an input value), which starts the supplied function in its own goroutine and
// immediately returns.  The caller can then wait for completion with Await, block with a timeout
// using AwaitWithTimeout, poll the state with IsComplete, or select on the channel returned by
// Done together with other events.
//
// Future is an interface rather than a concrete type so that a future can be retyped by a thin
// wrapper without touching its execution; see the never package in this module for the adapter
// that relies on this.
//
// In addition to operating on a single Future, the helpers WaitAll and WaitAny make it easy to
// coordinate multiple concurrent tasks – either collecting every result or returning the first one
// to finish.
//
// All helpers are context-aware: if the provided context is cancelled before the computation
// starts, the underlying goroutine aborts early and the Future is completed with the context
// error.  A running computation receives the context and is expected to honour its cancellation.
//
// # Usage
//
//	import (
//	    "context"
//	    "time"
//
//	    "github.com/dmitrymomot/absurd/pkg/async"
//	)
//
//	func main() {
//	    ctx := context.Background()
//	    future := async.Go(ctx, func(ctx context.Context) (string, error) {
//	        time.Sleep(100 * time.Millisecond)
//	        return "done", nil
//	    })
//
//	    // do other work …
//	    res, err := future.Await()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res)
//	}
//
// # Error Handling
//
// The package does not introduce custom error types; functions return the error produced by the
// user callback or, in the case of AwaitWithTimeout, ErrTimeout.
//
// # Performance Considerations
//
// Futures are lightweight wrappers around goroutines and channels.  The overhead is minimal but you
// should avoid spawning an excessive number of goroutines if the workload could be better handled
// by a worker pool or other means of limiting concurrency.
//
// See the individual function-level comments for additional details and behaviour guarantees.
package async
