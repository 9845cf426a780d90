// Package ncerr provides the shared error kinds used across the NCGen
// pipeline.
package ncerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a caller-supplied parameter
	// violates an API precondition (e.g. a non-positive bit size).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIoFailure is returned when reading an input image or writing a
	// toolpath file fails.
	ErrIoFailure = errors.New("io failure")
)

// WithContext wraps a sentinel error with a caller-supplied message,
// preserving errors.Is compatibility with the sentinel.
func WithContext(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
