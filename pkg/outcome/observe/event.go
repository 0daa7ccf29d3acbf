package observe

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/outcome-kit/outcome/pkg/outcome"
)

// Trigger selects which outcomes cause the event observer to emit.
type Trigger int

const (
	// OnSuccess emits only when the wrapped operation succeeds.
	OnSuccess Trigger = iota
	// OnFailure emits only when the wrapped operation fails.
	OnFailure
	// Both emits unconditionally.
	Both
)

// Event is the notification emitted after a wrapped operation returns. It
// carries the full Result, not a copy of the data, plus the invocation
// that produced it, so subscribers can reconstruct the call.
type Event[T any] struct {
	ID         uuid.UUID
	Name       string
	OccurredAt time.Time
	Invocation[T]
}

// Emitter is the external sink events are handed to. Emission is
// synchronous and fire-and-forget: a failing subscriber is not retried.
type Emitter[T any] interface {
	Emit(ctx context.Context, e Event[T])
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc[T any] func(ctx context.Context, e Event[T])

func (f EmitterFunc[T]) Emit(ctx context.Context, e Event[T]) {
	f(ctx, e)
}

// Publish wraps fn so that, after it returns, exactly one Event is emitted
// to em when trigger matches the outcome and none otherwise. An empty
// eventName defaults to the operation name. The Result is returned to the
// caller unmodified regardless of what em does.
func Publish[T any](em Emitter[T], trigger Trigger, eventName, operation string, fn Func[T]) Func[T] {
	if eventName == "" {
		eventName = operation
	}

	return func(ctx context.Context, args ...any) outcome.Result[T] {
		res := fn(ctx, args...)

		if matches(trigger, res.IsSuccess()) && em != nil {
			em.Emit(ctx, Event[T]{
				ID:         uuid.New(),
				Name:       eventName,
				OccurredAt: time.Now().UTC(),
				Invocation: Invocation[T]{
					Operation: operation,
					Args:      args,
					Result:    res,
				},
			})
		}

		return res
	}
}

func matches(trigger Trigger, success bool) bool {
	switch trigger {
	case OnSuccess:
		return success
	case OnFailure:
		return !success
	default:
		return true
	}
}
