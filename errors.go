package scunit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for contract violations such as an
	// out-of-range result value or a line number below one. The operation
	// reports the violation without mutating any caller-visible state.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOpeningFile is returned when a source file cannot be opened for
	// context extraction.
	ErrOpeningFile = errors.New("opening file failed")

	// ErrReadingFile is returned when reading from an opened source file
	// fails.
	ErrReadingFile = errors.New("reading file failed")

	// ErrClosingFile is returned when closing a source file fails and no
	// earlier error occurred.
	ErrClosingFile = errors.New("closing file failed")
)

// RuntimeError marks a failure of the framework itself rather than of the
// code under test: rejected configuration, a timer that could not read its
// clock, or a report stream that stopped accepting writes. It maps to the
// runtime-error exit code.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %v", e.Err)
}

// Unwrap exposes the underlying failure so callers can match the sentinel
// errors (ErrInvalidArgument, timer.ErrFailed, printer.ErrWritingStream)
// with errors.Is.
func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// NewRuntimeError wraps err as an infrastructure failure.
func NewRuntimeError(err error) *RuntimeError {
	return &RuntimeError{Err: err}
}

// IsRuntimeError reports whether err is or wraps a RuntimeError.
func IsRuntimeError(err error) bool {
	var runtimeErr *RuntimeError
	return err != nil && errors.As(err, &runtimeErr)
}

// TestFailureError marks a run in which at least one test failed while the
// framework itself ran to completion. It maps to the test-failure exit code.
type TestFailureError struct {
	Message string
}

func (e *TestFailureError) Error() string {
	return fmt.Sprintf("test failure: %s", e.Message)
}

// NewTestFailureError creates a TestFailureError carrying the failure
// summary shown to the user.
func NewTestFailureError(message string) *TestFailureError {
	return &TestFailureError{Message: message}
}

// IsTestFailureError reports whether err is or wraps a TestFailureError.
func IsTestFailureError(err error) bool {
	var testErr *TestFailureError
	return err != nil && errors.As(err, &testErr)
}
