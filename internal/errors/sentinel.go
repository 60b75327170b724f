package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrUsage indicates the command was invoked with missing arguments.
	ErrUsage = errors.New("usage error")

	// ErrValidation indicates an input or config value failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a directory or file was not found.
	ErrNotFound = errors.New("not found")
)
