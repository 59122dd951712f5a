package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category. Codes are stable and safe to
// match on in tests and scripts.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Stylesheets and output
	ErrStylesheetRead ErrorCode = "STYLESHEET_READ"
	ErrOutputFormat   ErrorCode = "OUTPUT_FORMAT"
	ErrFileWrite      ErrorCode = "FILE_WRITE"
)

// ConsoleCSSError is an error carrying a code, optional details and the
// underlying cause.
type ConsoleCSSError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Wrapped error
}

func (e *ConsoleCSSError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ConsoleCSSError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a ConsoleCSSError with the same code.
func (e *ConsoleCSSError) Is(target error) bool {
	var other *ConsoleCSSError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// New returns an error with the given code and message.
func New(code ErrorCode, message string) *ConsoleCSSError {
	return &ConsoleCSSError{Code: code, Message: message, Details: make(map[string]any)}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *ConsoleCSSError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap annotates err with a code and message. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *ConsoleCSSError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *ConsoleCSSError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail attaches a key/value detail and returns the error.
func (e *ConsoleCSSError) WithDetail(key string, value any) *ConsoleCSSError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether err, or any error it wraps, has code.
func IsErrorCode(err error, code ErrorCode) bool {
	var e *ConsoleCSSError
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetErrorCode returns the code of err, or ErrUnknown when err carries none.
func GetErrorCode(err error) ErrorCode {
	var e *ConsoleCSSError
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err, or nil.
func GetErrorDetails(err error) map[string]any {
	var e *ConsoleCSSError
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}
