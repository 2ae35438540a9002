package domain

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

var (
	// ErrCreatorNotFound is returned when no creator is registered under a name.
	ErrCreatorNotFound = errors.New("creator not found")

	// ErrInvalidConfig is returned when the loaded configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Error defines a standard error shape for the CLI
type Error struct {
	// Process exit code (e.g., 1, 2)
	Code int
	// Safe message for the user
	Message string
	// Original error for internal logging
	Log error
}

// Error implements standard error interface
func (e *Error) Error() string {
	if e.Log == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Log)
}

func (e *Error) Unwrap() error {
	return e.Log
}

// AppError creates a generic application error
func AppError(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Log:     err,
	}
}

// NotFoundError creates an error for an unknown creator name
func NotFoundError(msg string, err error) *Error {
	return &Error{Code: ExitUsage, Message: msg, Log: err}
}

// ConfigError creates an error for a configuration that cannot be loaded or validated
func ConfigError(msg string, err error) *Error {
	return &Error{Code: ExitUsage, Message: msg, Log: err}
}

// InternalError creates a standard error for any internal failure
func InternalError(msg string, err error) *Error {
	return &Error{Code: ExitFailure, Message: msg, Log: err}
}

// WrapError allows wrapping a standard error in an Error
func WrapError(err error, code int, msg string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Message: msg,
		Log:     err,
	}
}

// ExitCode maps an error chain to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ExitFailure
}
