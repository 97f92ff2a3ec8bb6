package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the classification of errors for exit handling
type ErrorType int

const (
	// ErrorTypeInput - user input ended or was interrupted; exit cleanly
	ErrorTypeInput ErrorType = iota
	// ErrorTypeLogging - session log write failed; warn and continue
	ErrorTypeLogging
	// ErrorTypeFatal - unrecoverable failure; exit non-zero
	ErrorTypeFatal
)

// InputError represents an interrupted or closed input stream.
// The check flow treats it as a user-driven stop, never a crash.
type InputError struct {
	Err     error
	Message string // User-friendly message
}

func (e *InputError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("input error: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// LoggingError represents a session-log write failure the flow survives.
// Callers warn the user and keep the check loop running.
type LoggingError struct {
	Err     error
	Path    string // Log file path the write was aimed at
	Message string // User-friendly message
}

func (e *LoggingError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("logging error: %v", e.Err)
}

func (e *LoggingError) Unwrap() error {
	return e.Err
}

// FatalError represents an unrecoverable startup or runtime failure.
type FatalError struct {
	Err     error
	Message string // User-friendly message
}

func (e *FatalError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("fatal error: %v", e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsInput checks if an error came from a closed or interrupted input stream
func IsInput(err error) bool {
	if err == nil {
		return false
	}
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

// IsLogging checks if an error is a survivable session-log failure
func IsLogging(err error) bool {
	if err == nil {
		return false
	}
	var loggingErr *LoggingError
	return errors.As(err, &loggingErr)
}

// IsFatal checks if an error should abort the process with a non-zero exit
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}

// GetErrorType classifies an error
func GetErrorType(err error) ErrorType {
	if IsInput(err) {
		return ErrorTypeInput
	}
	if IsLogging(err) {
		return ErrorTypeLogging
	}
	// Default to fatal so unknown failures are never silently swallowed
	return ErrorTypeFatal
}

// Helper constructors

// NewInputError creates a new input error with a user-friendly message
func NewInputError(err error, message string) *InputError {
	return &InputError{
		Err:     err,
		Message: message,
	}
}

// NewLoggingError creates a new logging error carrying the log file path
func NewLoggingError(err error, path, message string) *LoggingError {
	return &LoggingError{
		Err:     err,
		Path:    path,
		Message: message,
	}
}

// NewFatalError creates a new fatal error with a user-friendly message
func NewFatalError(err error, message string) *FatalError {
	return &FatalError{
		Err:     err,
		Message: message,
	}
}
