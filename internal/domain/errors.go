package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"slcsp/pkg/errcodes"
)

// AppError is a domain error carrying a machine readable code.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewError creates a new domain error.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// NewInputNotFoundError reports a required input file that cannot be opened.
func NewInputNotFoundError(path string, err error) *AppError {
	return WrapError(err, errcodes.InputNotFound, fmt.Sprintf("input %q not found", path))
}

// NewMalformedInputError reports an offending row of an input source.
// Line is the 1-based line of the source file, 0 when the problem is the header.
func NewMalformedInputError(source string, line int, detail string) *AppError {
	if line == 0 {
		return NewError(errcodes.MalformedInput, fmt.Sprintf("%s: header: %s", source, detail))
	}
	return NewError(errcodes.MalformedInput, fmt.Sprintf("%s: line %d: %s", source, line, detail))
}

// IsAppError reports whether err is a domain error.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode extracts the error code if err is an AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code failure.ErrorCode) bool {
	got, ok := GetCode(err)
	return ok && got == code
}
