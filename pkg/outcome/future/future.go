package future

import (
	"context"
	"fmt"

	"github.com/outcome-kit/outcome/pkg/outcome"
)

// Async schedules produce on its own goroutine and returns a future: a
// 1-buffered channel resolved with exactly one Result and then closed. The
// calling goroutine is never blocked.
//
// Failure stays data across the concurrency boundary: a panic inside
// produce resolves the future to a generic failure describing it, and a
// context already cancelled when the producer would start resolves it to a
// generic failure describing the interruption. Nothing escapes the future
// as a panic.
func Async[T any](ctx context.Context, produce func(ctx context.Context) outcome.Result[T]) <-chan outcome.Result[T] {
	out := make(chan outcome.Result[T], 1)

	go func() {
		defer close(out)
		defer func() {
			if rec := recover(); rec != nil {
				out <- outcome.FailMsg[T](fmt.Sprintf("async producer panicked: %v", rec))
			}
		}()

		if err := ctx.Err(); err != nil {
			out <- interrupted[T](err)
			return
		}

		out <- produce(ctx)
	}()

	return out
}

// Await blocks until the future resolves or ctx is done, whichever comes
// first. Cancellation and a future closed without a value both surface as
// generic failures, never as panics or lost results.
func Await[T any](ctx context.Context, fut <-chan outcome.Result[T]) outcome.Result[T] {
	select {
	case res, ok := <-fut:
		if !ok {
			return outcome.FailMsg[T]("future resolved without a result")
		}
		return res
	case <-ctx.Done():
		return interrupted[T](ctx.Err())
	}
}

func interrupted[T any](err error) outcome.Result[T] {
	if outcome.IsCancellation(err) {
		return outcome.FailMsg[T](fmt.Sprintf("operation interrupted: %v", err))
	}
	return outcome.FromError[T](err)
}
