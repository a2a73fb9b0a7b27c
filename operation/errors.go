package operation

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrUnknownOperation indicates an operation name could not be resolved.
	ErrUnknownOperation = errors.New("unknown operation")
)

// UnknownOperationError reports an operation name that does not match any
// supported operation. This is the only error the registry can produce;
// the transforms themselves are total and never fail.
type UnknownOperationError struct {
	// Provided is the unresolvable name exactly as the caller supplied it
	Provided string
}

// Error returns a human-readable error message.
func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("invalid operation: %q", e.Provided)
}

// Unwrap returns nil as UnknownOperationError has no underlying cause.
func (e *UnknownOperationError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnknownOperationError) Is(target error) bool {
	return target == ErrUnknownOperation
}
