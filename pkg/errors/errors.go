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
	ErrCancelled    ErrorCode = "CANCELLED"

	// Configuration errors, all fatal and raised before any traversal
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Scan errors
	ErrDirNotFound  ErrorCode = "DIR_NOT_FOUND"
	ErrNotDirectory ErrorCode = "NOT_DIRECTORY"
	ErrDirAccess    ErrorCode = "DIR_ACCESS"
	ErrScan         ErrorCode = "SCAN"

	// Per-file errors, recovered by the grouping phase
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrCompress  ErrorCode = "COMPRESS"
	ErrFileWrite ErrorCode = "FILE_WRITE"

	// ErrPartial reports a run that completed with skipped files
	ErrPartial ErrorCode = "PARTIAL"
)

// MinifyError represents a structured error with code and details
type MinifyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MinifyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MinifyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MinifyError) Is(target error) bool {
	var targetErr *MinifyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MinifyError with the given code and message
func New(code ErrorCode, message string) *MinifyError {
	return &MinifyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MinifyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MinifyError {
	return &MinifyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MinifyError
func Wrap(err error, code ErrorCode, message string) *MinifyError {
	if err == nil {
		return nil
	}
	return &MinifyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MinifyError {
	if err == nil {
		return nil
	}
	return &MinifyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MinifyError) WithDetail(key string, value interface{}) *MinifyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *MinifyError) WithDetails(details map[string]interface{}) *MinifyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var minifyErr *MinifyError
	if errors.As(err, &minifyErr) {
		return minifyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MinifyError
func GetErrorCode(err error) ErrorCode {
	var minifyErr *MinifyError
	if errors.As(err, &minifyErr) {
		return minifyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MinifyError
func GetErrorDetails(err error) map[string]interface{} {
	var minifyErr *MinifyError
	if errors.As(err, &minifyErr) {
		return minifyErr.Details
	}
	return nil
}

// IsConfigError reports whether err belongs to the configuration category.
// Configuration errors abort a run before the directory walk starts.
func IsConfigError(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrConfigInvalid:
		return true
	}
	return false
}

// IsScanError reports whether err was raised while validating or walking the root directory.
func IsScanError(err error) bool {
	switch GetErrorCode(err) {
	case ErrDirNotFound, ErrNotDirectory, ErrDirAccess, ErrScan:
		return true
	}
	return false
}
