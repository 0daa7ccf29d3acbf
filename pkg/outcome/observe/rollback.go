package observe

import (
	"context"

	"github.com/outcome-kit/outcome/pkg/outcome"
)

// UnitOfWork is the opaque handle to an ambient transactional scope. The
// environment that opened the scope owns committing or rolling it back;
// this package only marks it. MarkRollbackOnly must be safe to call from
// the goroutine the wrapped operation runs on.
type UnitOfWork interface {
	MarkRollbackOnly()
}

type ctxKey string

const unitOfWorkKey ctxKey = "unit_of_work"

// WithUnitOfWork attaches the ambient unit-of-work handle to ctx so that
// wrapped operations further down the call can be observed against it.
func WithUnitOfWork(ctx context.Context, uow UnitOfWork) context.Context {
	return context.WithValue(ctx, unitOfWorkKey, uow)
}

// UnitOfWorkFrom resolves the ambient unit-of-work handle from ctx.
func UnitOfWorkFrom(ctx context.Context) (UnitOfWork, bool) {
	uow, ok := ctx.Value(unitOfWorkKey).(UnitOfWork)
	return uow, ok
}

// RollbackOnFailure wraps fn so that a failed Result marks the ambient
// unit-of-work (resolved from ctx) rollback-only before the value reaches
// the caller. A success leaves the unit-of-work untouched, and a missing
// handle is a no-op: opening the scope is the environment's job, never
// this observer's. The Result itself is returned unmodified either way.
func RollbackOnFailure[T any](fn Func[T]) Func[T] {
	return func(ctx context.Context, args ...any) outcome.Result[T] {
		res := fn(ctx, args...)
		if !res.IsSuccess() {
			if uow, ok := UnitOfWorkFrom(ctx); ok {
				uow.MarkRollbackOnly()
			}
		}
		return res
	}
}

// RollbackTo is RollbackOnFailure with an explicit handle instead of the
// context-resolved one. A nil uow is a no-op.
func RollbackTo[T any](uow UnitOfWork, fn Func[T]) Func[T] {
	return func(ctx context.Context, args ...any) outcome.Result[T] {
		res := fn(ctx, args...)
		if !res.IsSuccess() && uow != nil {
			uow.MarkRollbackOnly()
		}
		return res
	}
}
