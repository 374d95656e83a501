// Package apperr defines the error taxonomy returned by the travel core.
//
// Every failure carries a Kind and a human-readable message. Storage
// failures are wrapped as KindUnexpected with a generic message; the
// underlying cause is kept for logging through Unwrap.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindConflict
	KindForbidden
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unexpected"
	}
}

// Error is a classified application error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Sentinels for matching with errors.Is.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrUnexpected   = &Error{Kind: KindUnexpected}
)

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind when target is a bare sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Msg != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain,
// or KindUnexpected when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// NotFound reports a missing entity.
func NotFound(entity string, id any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s not found: %v", entity, id)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Msg: fmt.Sprintf(format, args...)}
}

func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies cause under kind, using cause's text as the message.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Msg: cause.Error(), Err: cause}
}

// Unexpected wraps a storage or transport failure. The cause is not part
// of the message.
func Unexpected(op string, cause error) *Error {
	return &Error{Kind: KindUnexpected, Msg: op + " failed", Err: cause}
}
