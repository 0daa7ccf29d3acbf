package outcome

// Map applies fn to the data of a successful Result and wraps the outcome
// in a new success carrying the original message. A failure passes through
// untouched; fn is never invoked for it.
func Map[In, Out any](r Result[In], fn func(In) Out) Result[Out] {
	if !r.isSuccess {
		return FailFrom[In, Out](r)
	}
	return SuccessMsg(fn(r.data), r.message)
}

// FlatMap invokes fn on the data of a successful Result and returns fn's
// Result verbatim. A failure short-circuits: fn is never invoked and the
// original error passes through.
func FlatMap[In, Out any](r Result[In], fn func(In) Result[Out]) Result[Out] {
	if !r.isSuccess {
		return FailFrom[In, Out](r)
	}
	return fn(r.data)
}

// Try adapts a (value, error) call into the Result world: the error, if
// any, becomes a failure via FromError. A failed input short-circuits.
func Try[In, Out any](r Result[In], fn func(In) (Out, error)) Result[Out] {
	if !r.isSuccess {
		return FailFrom[In, Out](r)
	}
	out, err := fn(r.data)
	if err != nil {
		return FromError[Out](err)
	}
	return SuccessMsg(out, r.message)
}

// Validate checks the data of a successful Result against pred. A true
// predicate returns the Result unchanged; a false one returns a validation
// failure carrying message. On a failed input the predicate is never
// evaluated, so chained predicates may assume every earlier one passed.
func (r Result[T]) Validate(pred func(T) bool, message string) Result[T] {
	if !r.isSuccess {
		return r
	}
	if pred(r.data) {
		return r
	}
	return ValidationFailure[T](message)
}

// Filter is Validate under the name callers coming from the filter idiom
// expect.
func (r Result[T]) Filter(pred func(T) bool, message string) Result[T] {
	return r.Validate(pred, message)
}

// OnSuccess runs fn for its side effect when the Result is a success and
// returns the Result unchanged. Panics inside fn are not recovered here.
func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	if r.isSuccess {
		fn(r.data)
	}
	return r
}

// OnFailure runs fn for its side effect when the Result is a failure and
// returns the Result unchanged. Panics inside fn are not recovered here.
func (r Result[T]) OnFailure(fn func(Error)) Result[T] {
	if !r.isSuccess {
		fn(*r.err)
	}
	return r
}

// OrElse returns the Result itself when successful, otherwise alt verbatim.
func (r Result[T]) OrElse(alt Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return alt
}

// OrElseGet returns the success data, or the value produced by supply for
// a failure. supply is only invoked on the failure path.
func (r Result[T]) OrElseGet(supply func() T) T {
	if r.isSuccess {
		return r.data
	}
	return supply()
}
