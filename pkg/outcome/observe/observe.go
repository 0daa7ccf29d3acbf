package observe

import (
	"context"

	"github.com/outcome-kit/outcome/pkg/outcome"
)

// Func is the shape of a wrappable operation. An operation opts into
// rollback marking or event emission by being wrapped explicitly; there is
// no registry or proxying involved.
type Func[T any] func(ctx context.Context, args ...any) outcome.Result[T]

// Invocation captures one call of a wrapped operation: its name, the
// arguments it was invoked with and the Result it produced. It lives only
// for the duration of the wrap and is never persisted.
type Invocation[T any] struct {
	Operation string
	Args      []any
	Result    outcome.Result[T]
}

// Wrap decorates fn with both observers in their contractual order: the
// rollback observer inspects the Result first, then the event observer,
// then the unmodified Result reaches the original caller. Each observer
// runs exactly once per invocation, synchronously, after fn returns.
func Wrap[T any](em Emitter[T], trigger Trigger, eventName, operation string, fn Func[T]) Func[T] {
	return Publish(em, trigger, eventName, operation, RollbackOnFailure(fn))
}
