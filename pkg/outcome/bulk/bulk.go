package bulk

import (
	"context"

	"github.com/outcome-kit/outcome/pkg/outcome"
	"github.com/outcome-kit/outcome/pkg/outcome/future"
)

// Combine collapses an ordered sequence of Results into one. The scan runs
// in order and stops at the first failure, which is recast and returned as
// is; later results are never inspected and errors are not aggregated. If
// every element is a success, Combine returns a success wrapping all data
// values in their original order.
func Combine[T any](results []outcome.Result[T]) outcome.Result[[]T] {
	data := make([]T, 0, len(results))

	for _, r := range results {
		if !r.IsSuccess() {
			return outcome.FailFrom[T, []T](r)
		}
		data = append(data, r.Data())
	}

	return outcome.Success(data)
}

// All runs every supplier concurrently via future.Async, awaits them in
// argument order and combines the outcomes. Combine's first-failure-wins
// rule applies to the argument order, not to completion order.
func All[T any](ctx context.Context, suppliers ...func(ctx context.Context) outcome.Result[T]) outcome.Result[[]T] {
	futures := make([]<-chan outcome.Result[T], len(suppliers))
	for i, supply := range suppliers {
		futures[i] = future.Async(ctx, supply)
	}

	results := make([]outcome.Result[T], len(futures))
	for i, fut := range futures {
		results[i] = future.Await(ctx, fut)
	}

	return Combine(results)
}
