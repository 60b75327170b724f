package errors

// Exit codes returned by the genmodule binary.
const (
	// ExitSuccess indicates all artifacts were written.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error, including missing arguments.
	ExitGeneralError = 1

	// ExitValidationError indicates a config value could not be used.
	ExitValidationError = 2

	// ExitPermissionDenied indicates the output location is not writable.
	ExitPermissionDenied = 4

	// ExitNotFound indicates the output directory could not be resolved.
	ExitNotFound = 5
)

// ExitError wraps an error with the process exit code.
type ExitError struct {
	// Err is the underlying error.
	Err error

	// Code is the exit code passed to os.Exit.
	Code int

	// Printed is set when the command already reported the error to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
