// Package errors defines the error taxonomy used across the merger-tree
// builder.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for the merger-tree builder.
const (
	CodeUnknown         = "UNKNOWN_ERROR"
	CodeInvalidData     = "INVALID_DATA"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeSubhaloNotFound = "SUBHALO_NOT_FOUND"
	CodeConfigError     = "CONFIG_ERROR"
)

// AppError represents a build error with a code, message, and optional
// wrapped cause.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target by code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new AppError with a formatted message.
func Newf(code string, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// SubhaloNotFoundError is a CodeSubhaloNotFound error that additionally
// carries the descendant subhalo id the linker could not resolve, so
// callers can inspect which reference was dangling.
type SubhaloNotFoundError struct {
	*AppError
	DescendantID int64
}

// NewSubhaloNotFoundError builds a SubhaloNotFoundError for the given
// unresolved descendant id.
func NewSubhaloNotFoundError(descendantID int64) *SubhaloNotFoundError {
	return &SubhaloNotFoundError{
		AppError:     Newf(CodeSubhaloNotFound, "descendant subhalo %d not found", descendantID),
		DescendantID: descendantID,
	}
}

// Unwrap returns the embedded *AppError, not the promoted AppError.Unwrap()
// result, so errors.As(err, &appErr) matches a *SubhaloNotFoundError against
// *AppError and recovers its code via GetErrorCode/GetErrorMessage.
func (e *SubhaloNotFoundError) Unwrap() error {
	return e.AppError
}

// Common error instances, used as errors.Is targets.
var (
	ErrInvalidData     = New(CodeInvalidData, "invalid data")
	ErrInvalidArgument = New(CodeInvalidArgument, "invalid argument")
	ErrSubhaloNotFound = New(CodeSubhaloNotFound, "subhalo not found")
	ErrConfigError     = New(CodeConfigError, "configuration error")
)

// IsInvalidData checks if the error is a structural/linking violation.
func IsInvalidData(err error) bool {
	return errors.Is(err, ErrInvalidData)
}

// IsInvalidArgument checks if the error is a post-condition violation.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsSubhaloNotFound checks if the error is an unresolved descendant
// reference.
func IsSubhaloNotFound(err error) bool {
	return errors.Is(err, ErrSubhaloNotFound)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetErrorMessage extracts the error message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
