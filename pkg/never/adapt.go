package never

import (
	"context"
	"time"

	"github.com/dmitrymomot/absurd/pkg/async"
)

// Adapt retypes a never-succeeding future to an arbitrary result type.
//
// The returned future is a pure pass-through: it shares the inner future's
// completion channel, suspends exactly where the inner future suspends, and
// forwards the inner error value unchanged. Because no Never success value
// can legitimately exist, the returned future never completes with a value
// of T either: it runs for as long as inner runs, or completes with inner's
// error. The target type is usually inferred from the collection the future
// is placed in.
func Adapt[T any](inner async.Future[Never]) async.Future[T] {
	return adapted[T]{inner: inner}
}

// adapted holds exclusive ownership of the wrapped future and forwards
// every Future method to it.
type adapted[T any] struct {
	inner async.Future[Never]
}

func (a adapted[T]) Done() <-chan struct{} { return a.inner.Done() }

func (a adapted[T]) Await() (T, error) {
	return retype[T](a.inner.Await())
}

func (a adapted[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	return retype[T](a.inner.AwaitWithTimeout(timeout))
}

func (a adapted[T]) IsComplete() bool { return a.inner.IsComplete() }

// retype forwards the error channel and routes the impossible success branch
// through Absurd.
func retype[T any](n Never, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return Absurd[T](n), nil
}

// Func adapts a function that never returns to the result-returning
// signature expected by task collections such as sourcegraph/conc result
// pools, which require every submitted task to share one result type.
//
// The adapted function delegates directly to fn and inherits its blocking
// behaviour; the (T, error) return exists only to satisfy the collection's
// signature and is unreachable.
func Func[T any](fn func(context.Context) Never) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		return Absurd[T](fn(ctx)), nil
	}
}

// Loop adapts a run loop that terminates only through its error channel
// (typically with ctx.Err after cancellation) to the result-returning
// signature expected by task collections. The error returned by run is
// forwarded unchanged. A nil return from run breaks the never-succeeding
// contract and panics.
func Loop[T any](run func(context.Context) error) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		if err := run(ctx); err != nil {
			var zero T
			return zero, err
		}
		panic("never: run loop declared as never-succeeding returned a nil error")
	}
}
