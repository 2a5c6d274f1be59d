package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for the checktree CLI.
const (
	// ExitSuccess indicates every evaluated value passed.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid flag, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, terminal, etc.).
	ExitSystem = 2

	// ExitCheckFailed indicates at least one value failed its check tree.
	ExitCheckFailed = 3
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownTree indicates no check tree is registered under a name.
	ErrUnknownTree = errors.New("unknown check tree")

	// ErrInvalidFormat indicates an unsupported report format.
	ErrInvalidFormat = errors.New("invalid report format")

	// ErrCheckFailed indicates a value did not pass its check tree.
	ErrCheckFailed = errors.New("check failed")
)

// Re-exported helpers so callers import a single errors package.
var (
	New   = errors.New
	Newf  = errors.Newf
	Wrap  = errors.Wrap
	Wrapf = errors.Wrapf
	Is    = errors.Is
	As    = errors.As
)

// ExitError wraps an error with an exit code and optional suggestion for the CLI.
// It implements the error interface and supports errors.Is and errors.As through Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	e := NewExitError(err, ExitUser)
	e.Suggestion = suggestion
	return e
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	e := NewExitError(err, ExitSystem)
	e.Suggestion = suggestion
	return e
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Check the config file or run: checktree check --help")
}

// NewCheckFailedError reports that count values failed evaluation. The
// report itself has already been written, so no suggestion is attached.
func NewCheckFailedError(count int) *ExitError {
	return NewExitError(errors.Wrapf(ErrCheckFailed, "%d value(s) failed", count), ExitCheckFailed)
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from err. A nil error yields ExitSuccess
// and errors without an ExitError in their chain yield ExitSystem.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}
