package outcome

import "time"

// Reader is the read-only view of a Result consumed by boundary code such
// as the respond package. Result[T] satisfies it.
type Reader[T any] interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Data returns the successful payload (zero value on failure)
	Data() T
	// Message returns the success or error message
	Message() string
	// Err returns the failure's Error, nil on success
	Err() *Error
}

// Stamped extends Reader with creation metadata.
type Stamped[T any] interface {
	Reader[T]
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}
