package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category independently of its message.
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Discovery errors
	ErrAmbiguous  ErrorCode = "AMBIGUOUS"
	ErrDeclined   ErrorCode = "DECLINED"
	ErrIntrospect ErrorCode = "INTROSPECT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Bundle errors
	ErrManifest    ErrorCode = "MANIFEST"
	ErrStepPanic   ErrorCode = "STEP_PANIC"
	ErrStepsFailed ErrorCode = "STEPS_FAILED"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
)

// PackagerError is an error carrying a stable code and optional details.
type PackagerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *PackagerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PackagerError) Unwrap() error {
	return e.Wrapped
}

// Is matches any PackagerError with the same code.
func (e *PackagerError) Is(target error) bool {
	var targetErr *PackagerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PackagerError with the given code and message
func New(code ErrorCode, message string) *PackagerError {
	return &PackagerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PackagerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PackagerError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *PackagerError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a formatted message. It returns nil when err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PackagerError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *PackagerError) WithDetail(key string, value interface{}) *PackagerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pkgErr *PackagerError
	if errors.As(err, &pkgErr) {
		return pkgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PackagerError
func GetErrorCode(err error) ErrorCode {
	var pkgErr *PackagerError
	if errors.As(err, &pkgErr) {
		return pkgErr.Code
	}
	return ErrUnknown
}
