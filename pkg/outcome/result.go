package outcome

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Result is the tagged success/failure value at the center of this library.
// A success carries data and a message, a failure carries an Error; exactly
// one side is ever populated. Instances are immutable: every combinator
// returns a new Result and values are freely shareable across goroutines.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	data      T
	message   string
	err       *Error
	isSuccess bool
}

// Success wraps data in a successful Result with the built-in default
// message. Use SuccessWith to inject a Messages implementation instead.
func Success[T any](data T) Result[T] {
	return SuccessMsg(data, DefaultMessages{}.SuccessMessage())
}

// SuccessMsg wraps data in a successful Result with an explicit message.
func SuccessMsg[T any](data T, message string) Result[T] {
	return Result[T]{
		data:      data,
		message:   message,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// SuccessWith wraps data using the default success message of m.
// A nil m falls back to DefaultMessages.
func SuccessWith[T any](m Messages, data T) Result[T] {
	if m == nil {
		m = DefaultMessages{}
	}
	return SuccessMsg(data, m.SuccessMessage())
}

// Fail builds a failed Result carrying e.
func Fail[T any](e Error) Result[T] {
	return Result[T]{
		err:       &e,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailMsg builds a generic failure from a plain message.
func FailMsg[T any](message string) Result[T] {
	return Fail[T](NewError(CategoryGeneric, message))
}

// FailDetail builds a generic failure whose message is produced by m from
// the given detail. A nil m falls back to DefaultMessages.
func FailDetail[T any](m Messages, detail string) Result[T] {
	if m == nil {
		m = DefaultMessages{}
	}
	return FailMsg[T](m.ErrorMessage(detail))
}

// FromError converts a plain error into a failed Result. A typed Error in
// err's chain keeps its category; anything else becomes a generic failure.
func FromError[T any](err error) Result[T] {
	var e Error
	if errors.As(err, &e) {
		return Fail[T](e)
	}
	return FailMsg[T](err.Error())
}

func NotFound[T any](message string) Result[T] {
	return Fail[T](NewError(CategoryNotFound, message))
}

func ValidationFailure[T any](message string) Result[T] {
	return Fail[T](NewError(CategoryValidation, message))
}

func Unauthorized[T any](message string) Result[T] {
	return Fail[T](NewError(CategoryUnauthorized, message))
}

func Forbidden[T any](message string) Result[T] {
	return Fail[T](NewError(CategoryForbidden, message))
}

func Conflict[T any](message string) Result[T] {
	return Fail[T](NewError(CategoryConflict, message))
}

// FailFrom recasts a failed Result to another payload type, preserving the
// original error, id and creation time. Calling it on a success yields a
// generic failure; recasting is only meaningful for failures.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		return FailMsg[Out]("cannot recast a successful result")
	}
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsSuccess reports whether the Result is a success.
func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

// Data returns the success payload. On a failure it returns the zero value
// of T; Err is the discriminator, never the payload.
func (r Result[T]) Data() T {
	return r.data
}

// Err returns the failure's Error, or nil for a success.
func (r Result[T]) Err() *Error {
	return r.err
}

// Message returns the success message, or the error message for a failure.
func (r Result[T]) Message() string {
	if r.err != nil {
		return r.err.Message()
	}
	return r.message
}

// ID identifies this Result instance. Recasts via FailFrom keep the id of
// the failure they originate from.
func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// CreatedAt is the UTC creation time of the Result.
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}
