package filter

import (
	"errors"
	"fmt"
)

// ErrPresetNotFound is returned when a named preset was never registered
var ErrPresetNotFound = errors.New("filter preset not found")

type (
	// CompilationError reports an expression that expr rejected
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError reports an expression that failed while running
	// against a specific edition
	EvaluationError struct {
		Expression string
		Identifier string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot compile filter %q: %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot compile filter %q: %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("filter %q failed on edition %s: %v", e.Expression, e.Identifier, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
