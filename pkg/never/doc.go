// Package never adapts computations that can never successfully complete to
// APIs that expect a concrete result type.
//
// Task collections with typed results – such as sourcegraph/conc result
// pools – require every submitted task to share one result type. That is a
// problem for background tasks that by design run forever (heartbeats,
// watchdogs, run loops): they have no result to declare. This package
// provides an uninhabited result type, Never, and adapters that retype a
// never-succeeding computation to whatever result type the collection
// expects, without changing its runtime behaviour in any way.
//
// The adapters never manufacture a result value. A computation typed with
// Never either runs forever or terminates through its error channel, and the
// adapted computation does exactly the same: it forwards the error value
// unchanged and treats the success branch as unreachable. Go cannot prove
// unreachability the way a zero-variant type would, so the success branch is
// guarded by Absurd, which panics if a Never value is ever witnessed –
// indicating that the wrapped computation broke its contract.
//
// # Adapting a future
//
//	import (
//	    "github.com/dmitrymomot/absurd/pkg/async"
//	    "github.com/dmitrymomot/absurd/pkg/never"
//	)
//
//	inner := async.Go(ctx, func(ctx context.Context) (never.Never, error) {
//	    for {
//	        select {
//	        case <-ctx.Done():
//	            return never.Fail(ctx.Err())
//	        case <-time.After(time.Second):
//	            heartbeat()
//	        }
//	    }
//	})
//
//	// The adapted future satisfies whatever result type the caller needs.
//	var results async.Future[[]Report] = never.Adapt[[]Report](inner)
//
// # Adapting a run loop for a task pool
//
//	p := pool.NewWithResults[Report]().WithContext(ctx).WithFirstError()
//	p.Go(never.Loop[Report](server.Run)) // runs forever, exits only with an error
//	p.Go(produceReport)
//	reports, err := p.Wait()
//
// # Cancellation
//
// The adapters track no state of their own. Cancelling the context given to
// the wrapped computation is the one and only cancellation mechanism; the
// computation is expected to observe it and exit through its error channel,
// at which point the adapted computation completes with the same error.
package never
