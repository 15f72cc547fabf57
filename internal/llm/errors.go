package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// GenerateError represents a failed generation call. It is always recoverable
// by the caller via its fallback-to-original-content policy.
type GenerateError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *GenerateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s generation failed: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s generation failed: %s", e.Provider, e.Message)
}

func (e *GenerateError) Unwrap() error {
	return e.Cause
}

// IsTimeout reports whether err was caused by a generation timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
