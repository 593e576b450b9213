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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Styling errors
	ErrInvalidOverride  ErrorCode = "INVALID_OVERRIDE"
	ErrUnknownColorCode ErrorCode = "UNKNOWN_COLOR_CODE"
)

// Sentinels for errors.Is comparisons. Matching is done on the code only,
// so any StylizeError carrying the same code is considered equal.
var (
	ErrInvalidOverrideError  = &StylizeError{Code: ErrInvalidOverride}
	ErrUnknownColorCodeError = &StylizeError{Code: ErrUnknownColorCode}
)

// StylizeError represents a structured error with code and details
type StylizeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StylizeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StylizeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StylizeError) Is(target error) bool {
	var targetErr *StylizeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StylizeError with the given code and message
func New(code ErrorCode, message string) *StylizeError {
	return &StylizeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StylizeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StylizeError {
	return &StylizeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StylizeError
func Wrap(err error, code ErrorCode, message string) *StylizeError {
	if err == nil {
		return nil
	}
	return &StylizeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StylizeError {
	if err == nil {
		return nil
	}
	return &StylizeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StylizeError) WithDetail(key string, value interface{}) *StylizeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stylizeErr *StylizeError
	if errors.As(err, &stylizeErr) {
		return stylizeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StylizeError
func GetErrorCode(err error) ErrorCode {
	var stylizeErr *StylizeError
	if errors.As(err, &stylizeErr) {
		return stylizeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StylizeError
func GetErrorDetails(err error) map[string]interface{} {
	var stylizeErr *StylizeError
	if errors.As(err, &stylizeErr) {
		return stylizeErr.Details
	}
	return nil
}
