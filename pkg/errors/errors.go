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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Styling errors
	ErrColorCodeInvalid    ErrorCode = "COLOR_CODE_INVALID"
	ErrTemplateInvalid     ErrorCode = "TEMPLATE_INVALID"
	ErrKeywordGroupInvalid ErrorCode = "KEYWORD_GROUP_INVALID"
	ErrBlockTypeUnknown    ErrorCode = "BLOCK_TYPE_UNKNOWN"

	// Output errors
	ErrSinkWrite ErrorCode = "SINK_WRITE"
)

// LogstyleError represents a structured error with code and details
type LogstyleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LogstyleError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LogstyleError) Unwrap() error {
	return e.Wrapped
}

// Is matches any LogstyleError carrying the same code
func (e *LogstyleError) Is(target error) bool {
	var targetErr *LogstyleError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LogstyleError with the given code and message
func New(code ErrorCode, message string) *LogstyleError {
	return &LogstyleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LogstyleError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LogstyleError {
	return &LogstyleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LogstyleError
func Wrap(err error, code ErrorCode, message string) *LogstyleError {
	if err == nil {
		return nil
	}
	return &LogstyleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LogstyleError {
	if err == nil {
		return nil
	}
	return &LogstyleError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LogstyleError) WithDetail(key string, value interface{}) *LogstyleError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lsErr *LogstyleError
	if errors.As(err, &lsErr) {
		return lsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LogstyleError
func GetErrorCode(err error) ErrorCode {
	var lsErr *LogstyleError
	if errors.As(err, &lsErr) {
		return lsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LogstyleError
func GetErrorDetails(err error) map[string]interface{} {
	var lsErr *LogstyleError
	if errors.As(err, &lsErr) {
		return lsErr.Details
	}
	return nil
}
