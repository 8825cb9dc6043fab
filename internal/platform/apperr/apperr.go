// Package apperr defines the application error kinds shared by all domain
// services and the mapping from those kinds to HTTP responses. Services
// return *Error values; handlers convert them with HTTP so every failure
// response carries a {"message": ...} body with the right status code.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindAuthentication
	KindNotFound
	KindStorage
)

// Error is an application error with a caller-facing message. For storage
// errors the wrapped cause is logged server-side but never sent to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause to an application error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error     { return New(KindValidation, message) }
func Conflict(message string) *Error       { return New(KindConflict, message) }
func Authentication(message string) *Error { return New(KindAuthentication, message) }
func NotFound(message string) *Error       { return New(KindNotFound, message) }

// Storage wraps an underlying persistence failure with a generic message.
func Storage(err error) *Error {
	return Wrap(KindStorage, "server error", err)
}

// KindOf extracts the kind of an application error. The second return value
// is false for errors that did not originate from this package.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is an application error of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Status maps an error kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindConflict, KindAuthentication:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
