package secrets

import (
	"errors"
	"fmt"
)

// Common parameter store error types
var (
	ErrParameterNotFound = errors.New("parameter not found")
	ErrStoreUnavailable  = errors.New("parameter store unavailable")
	ErrNoSecretNames     = errors.New("no secret names requested")
)

// Error represents a failed secret lookup with additional context
type Error struct {
	Op   string // Operation that failed (e.g., "GetParameters")
	Name string // Parameter name involved, if any
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("secrets %s failed for '%s': %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("secrets %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error
func NewError(op, name string, err error) *Error {
	return &Error{
		Op:   op,
		Name: name,
		Err:  err,
	}
}

// IsNotFound returns true if the error indicates a missing parameter
func IsNotFound(err error) bool {
	return errors.Is(err, ErrParameterNotFound)
}

// IsUnavailable returns true if the parameter store could not be reached
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
