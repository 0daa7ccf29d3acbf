package outcome

// Category names a failure class. The set is closed: every Failure carries
// exactly one of the categories below, and the transport layer maps each
// category to a fixed status code.
type Category string

const (
	// CategoryNotFound indicates a requested entity does not exist.
	CategoryNotFound Category = "not_found"

	// CategoryValidation indicates the input failed a validation rule.
	CategoryValidation Category = "validation"

	// CategoryUnauthorized indicates missing or invalid credentials.
	CategoryUnauthorized Category = "unauthorized"

	// CategoryForbidden indicates the caller lacks permission.
	CategoryForbidden Category = "forbidden"

	// CategoryConflict indicates the entity already exists or its state
	// conflicts with the operation.
	CategoryConflict Category = "conflict"

	// CategoryGeneric is the catch-all for failures outside the classes
	// above, including converted panics and legacy errors.
	CategoryGeneric Category = "generic"
)

// Error is an immutable failure value: a category plus a human-readable
// message. It is created once at the failure site and never mutated.
type Error struct {
	category Category
	message  string
}

// NewError builds an Error with the given category and message. The message
// is required; an empty string is allowed.
func NewError(category Category, message string) Error {
	return Error{category: category, message: message}
}

func (e Error) Category() Category {
	return e.category
}

func (e Error) Message() string {
	return e.message
}

// Error implements the error interface so an Error composes with
// errors.Is/As at boundaries that still speak plain errors.
func (e Error) Error() string {
	return e.message
}
