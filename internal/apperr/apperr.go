// Package apperr defines the user-visible error taxonomy shared by every
// service. Errors carry a stable Code that the GraphQL layer exposes under
// extensions.code; errors.Is matches on Code alone.
package apperr

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeInsufficientStock  Code = "INSUFFICIENT_STOCK"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeInternal           Code = "INTERNAL"
)

type Error struct {
	Code    Code
	Message string
	Meta    map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Kind sentinels, usable with errors.Is.
var (
	ErrNotFound           = &Error{Code: CodeNotFound, Message: "not found"}
	ErrAlreadyExists      = &Error{Code: CodeAlreadyExists, Message: "already exists"}
	ErrPermissionDenied   = &Error{Code: CodePermissionDenied, Message: "permission denied"}
	ErrInsufficientStock  = &Error{Code: CodeInsufficientStock, Message: "insufficient stock"}
	ErrInvalidCredentials = &Error{Code: CodeInvalidCredentials, Message: "invalid email or password"}
	ErrUnauthenticated    = &Error{Code: CodeUnauthenticated, Message: "unauthenticated"}
	ErrInvalidInput       = &Error{Code: CodeInvalidInput, Message: "invalid input"}
	ErrInternal           = &Error{Code: CodeInternal, Message: "internal server error"}
)

func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func NotFound(msg string) *Error { return New(CodeNotFound, msg) }

func AlreadyExists(msg string) *Error { return New(CodeAlreadyExists, msg) }

func PermissionDenied(msg string) *Error { return New(CodePermissionDenied, msg) }

func InvalidInput(msg string) *Error { return New(CodeInvalidInput, msg) }

// InsufficientStock names the product whose stock cannot cover the request.
func InsufficientStock(productName string) *Error {
	return &Error{
		Code:    CodeInsufficientStock,
		Message: fmt.Sprintf("the item: %s exceeds the available quantity", productName),
		Meta:    map[string]any{"product": productName},
	}
}

// Internal wraps an unexpected failure. The message shown to callers stays
// generic; the cause is kept for logging.
func Internal(op string, err error) *Error {
	return &Error{Code: CodeInternal, Message: op, Err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
