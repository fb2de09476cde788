package corrector

import (
	"errors"
	"fmt"
)

// ErrUnavailable matches any *UnavailableError via errors.Is.
var ErrUnavailable = errors.New("corrector unavailable")

// UnavailableError indicates the corrector did not return a usable response.
type UnavailableError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Cause      error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrector unavailable (%s): %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("corrector unavailable (%s): %s", e.Endpoint, e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, ErrUnavailable) succeed for every UnavailableError.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}
