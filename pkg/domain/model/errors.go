package model

import (
	"errors"
	"fmt"
)

// ExitCode is the process exit code reported to the OS for a class of
// fatal failures. HTTP failures are not enumerated here: they use the
// response status code itself.
type ExitCode int

const (
	// ExitSuccess indicates the run completed normally.
	ExitSuccess ExitCode = 0

	// ExitDefinitionNotFound indicates the named release definition was
	// absent from the list endpoint response.
	ExitDefinitionNotFound ExitCode = 1

	// ExitTooFewEnvironments indicates the release definition has fewer
	// than two environments, so there is nothing to compare.
	ExitTooFewEnvironments ExitCode = 2

	// ExitCompareToolNotFound indicates no comparison executable was
	// supplied and none was found at the well-known locations.
	ExitCompareToolNotFound ExitCode = 3
)

// ExitCodeError is a fatal error that mandates a specific process exit
// code. All failures in this tool are fatal; this type carries the code
// from the failure site up to main.
type ExitCodeError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface
func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/errors.As
func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitCodeError with the given exit code and message
func NewExitError(code ExitCode, message string) *ExitCodeError {
	return &ExitCodeError{Code: code, Message: message}
}

// WrapExitError creates a new ExitCodeError that wraps an existing error
func WrapExitError(code ExitCode, message string, err error) *ExitCodeError {
	return &ExitCodeError{Code: code, Message: message, Err: err}
}

// NewHTTPStatusError creates an ExitCodeError for a failed API call. The
// HTTP status code doubles as the process exit code.
func NewHTTPStatusError(status int, message string) *ExitCodeError {
	return &ExitCodeError{Code: ExitCode(status), Message: message}
}

// ExitCodeFrom extracts the mandated exit code from an error chain.
// Returns false when the error does not carry one.
func ExitCodeFrom(err error) (int, bool) {
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return int(exitErr.Code), true
	}
	return 0, false
}
