package model

import "fmt"

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates the caller supplied input the generator
	// rejects outright: an empty word list, non-positive grid dimensions,
	// or a word containing non-alphabetic characters. Invalid input is
	// fatal for the call and is never silently coerced.
	ExitInvalidInput ExitCode = 2

	// ExitWordListNotFound indicates a word list file passed via --words
	// does not exist.
	ExitWordListNotFound ExitCode = 3

	// ExitUnknownTheme indicates a --theme value that matches no built-in
	// word bank for the requested puzzle kind.
	ExitUnknownTheme ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// InvalidInputf creates a CLIError with ExitInvalidInput and a formatted
// message. Validation sites use this shorthand heavily.
func InvalidInputf(format string, args ...interface{}) *CLIError {
	return &CLIError{Code: ExitInvalidInput, Message: fmt.Sprintf(format, args...)}
}
