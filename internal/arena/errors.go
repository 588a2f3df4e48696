package arena

import (
	"errors"
	"fmt"
)

// ErrNoOptimizedCode is returned when the optimize endpoint answers 200 but
// the optimized_code field is empty or missing. Callers treat it like any
// other optimize failure.
var ErrNoOptimizedCode = errors.New("arena: response contained no optimized code")

// ServiceError is a failure the service reported in-band via the "error"
// field of an otherwise successful response, e.g. a syntax error in the
// submitted code. The message is meant to be shown to the user verbatim.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// IsServiceError reports whether err (or anything it wraps) is a failure
// the service itself reported, as opposed to a transport problem.
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

// StatusError is a non-2xx HTTP response from the service.
type StatusError struct {
	Code    int
	Snippet string
}

func (e *StatusError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("arena: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("arena: unexpected status %d: %s", e.Code, e.Snippet)
}
