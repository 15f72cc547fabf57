package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyJobDescription is returned when a pipeline is invoked without
// job description text or URL.
var ErrEmptyJobDescription = errors.New("job description is required")

// Error wraps a fatal failure of a pipeline stage. Recoverable model
// failures never surface here; they degrade to fallbacks inside the
// adaptation layer.
type Error struct {
	Stage string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pipeline stage %q failed: %v", e.Stage, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func stageError(stage string, cause error) *Error {
	return &Error{Stage: stage, Cause: cause}
}
