// Package apperr defines the domain error taxonomy. Every operation boundary
// converts failures into one of these kinds; controllers map kinds to HTTP
// statuses.
package apperr

import "errors"

type Kind string

const (
	KindNotFound          Kind = "NotFound"
	KindInvalidInput      Kind = "InvalidInput"
	KindInvalidTransition Kind = "InvalidTransition"
	KindConflict          Kind = "Conflict"
	KindInvalidOperation  Kind = "InvalidOperation"
	KindUpstream          Kind = "UpstreamFailure"
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional cause (upstream failures)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error          { return &Error{Kind: KindNotFound, Msg: msg} }
func InvalidInput(msg string) error      { return &Error{Kind: KindInvalidInput, Msg: msg} }
func InvalidTransition(msg string) error { return &Error{Kind: KindInvalidTransition, Msg: msg} }
func Conflict(msg string) error          { return &Error{Kind: KindConflict, Msg: msg} }
func InvalidOperation(msg string) error  { return &Error{Kind: KindInvalidOperation, Msg: msg} }

func Upstream(msg string, cause error) error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: cause}
}

// KindOf returns the kind of a domain error, or "" for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }
