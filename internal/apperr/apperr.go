// Package apperr defines the error type used for the sentinel errors declared
// across plus packages
package apperr

import "fmt"

// Error is an application error. Package-level values act as sentinels:
// errors derived from them through Fmt or Wrap still match the original with
// errors.Is.
type Error struct {
	Cause   error
	base    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t
}

// Fmt formats the message of the error with the provided arguments.
func (e *Error) Fmt(a ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, a...),
		Cause:   e.Cause,
		base:    e.root(),
	}
}

// Wrap attaches the underlying cause to a copy of the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		base:    e.root(),
	}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
