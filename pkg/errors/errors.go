package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Invocation errors
	ErrUnknownOption       ErrorCode = "UNKNOWN_OPTION"
	ErrNoCommand           ErrorCode = "NO_COMMAND"
	ErrUnsupportedCommand  ErrorCode = "UNSUPPORTED_COMMAND"
	ErrMissingArgument     ErrorCode = "MISSING_ARGUMENT"
	ErrTooManyArguments    ErrorCode = "TOO_MANY_ARGUMENTS"
	ErrConflictingOptions  ErrorCode = "CONFLICTING_OPTIONS"
	ErrUnsupportedFlag     ErrorCode = "UNSUPPORTED_FLAG"
	ErrPathResolve         ErrorCode = "PATH_RESOLVE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Execution errors
	ErrAppendOpen    ErrorCode = "APPEND_OPEN"
	ErrAppendWrite   ErrorCode = "APPEND_WRITE"
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"
	ErrCommandKilled ErrorCode = "COMMAND_KILLED"
	ErrCommandStart  ErrorCode = "COMMAND_START"
)

// Process exit statuses produced by behavior execution
const (
	ExitUsage        = 1
	ExitAppendOpen   = 128
	ExitAppendWrite  = 129
	ExitKilled       = 130
	ExitCommandStart = 127
)

// PermlyError represents a structured error with code and details
type PermlyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
	// Exit is the process status this error maps to; zero means ExitUsage.
	Exit int
}

// Error implements the error interface
func (e *PermlyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PermlyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PermlyError) Is(target error) bool {
	var targetErr *PermlyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PermlyError with the given code and message
func New(code ErrorCode, message string) *PermlyError {
	return &PermlyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PermlyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PermlyError {
	return &PermlyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PermlyError
func Wrap(err error, code ErrorCode, message string) *PermlyError {
	if err == nil {
		return nil
	}
	return &PermlyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PermlyError {
	if err == nil {
		return nil
	}
	return &PermlyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PermlyError) WithDetail(key string, value interface{}) *PermlyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithExitCode sets the process status the error maps to
func (e *PermlyError) WithExitCode(code int) *PermlyError {
	e.Exit = code
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var permlyErr *PermlyError
	if errors.As(err, &permlyErr) {
		return permlyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PermlyError
func GetErrorCode(err error) ErrorCode {
	var permlyErr *PermlyError
	if errors.As(err, &permlyErr) {
		return permlyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PermlyError
func GetErrorDetails(err error) map[string]interface{} {
	var permlyErr *PermlyError
	if errors.As(err, &permlyErr) {
		return permlyErr.Details
	}
	return nil
}

// Message returns the user-facing message of an error without the code prefix.
// Errors that are not PermlyErrors are returned as is.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var permlyErr *PermlyError
	if errors.As(err, &permlyErr) {
		return permlyErr.Message
	}
	return err.Error()
}

// ExitCode maps an error to a process exit status. nil maps to 0, errors
// without an explicit status map to ExitUsage.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var permlyErr *PermlyError
	if errors.As(err, &permlyErr) && permlyErr.Exit != 0 {
		return permlyErr.Exit
	}
	return ExitUsage
}
