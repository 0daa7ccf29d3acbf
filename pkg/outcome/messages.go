package outcome

// Messages supplies the default texts used when a Result is built without
// an explicit message. Implementations are injected where Results are
// produced; there is no global registry.
type Messages interface {
	// SuccessMessage returns the message attached to successes built
	// without an explicit one.
	SuccessMessage() string
	// ErrorMessage renders a generic failure message from a detail string.
	ErrorMessage(detail string) string
}

// DefaultMessages is the built-in fallback used when no Messages
// implementation is supplied.
type DefaultMessages struct{}

func (DefaultMessages) SuccessMessage() string {
	return "Operation completed successfully."
}

func (DefaultMessages) ErrorMessage(detail string) string {
	return "An error occurred: " + detail
}
