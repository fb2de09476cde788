package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidInput wraps every request validation failure.
var ErrInvalidInput = errors.New("invalid input")

// AnalysisError reports an internal failure in one analysis stage. No partial
// report is produced when it is returned.
type AnalysisError struct {
	Stage string
	Cause error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed at %s: %v", e.Stage, e.Cause)
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}
