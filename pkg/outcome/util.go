package outcome

import (
	"context"
	"errors"
)

// IsCancellation reports whether err stems from a cancelled or timed-out
// context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
