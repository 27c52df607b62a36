// Package serrors defines the semantic error kinds the appraisal pipeline is
// built around. Every failure that crosses a package boundary carries one of
// these kinds so callers can branch with errors.Is instead of string matching.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

// kind is an unexported sentinel implementation of Kind.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) with the provided
// name. Kinds are comparable and work with errors.Is/As through Error.
func NewKind(name string) Kind { return kind{s: name} }

// The error taxonomy of the appraisal pipeline. Adapter failures (config,
// timeout, upstream) are always recovered locally with a fallback estimate;
// only validation and rate-limit exhaustion ever reach an end caller.
var (
	// ErrValidation indicates malformed caller input (bad domain, bad
	// options). Surfaced to the caller; the request never reaches scoring.
	ErrValidation = NewKind("VALIDATION")
	// ErrConfig indicates a missing or placeholder credential for an external
	// integration. The adapter short-circuits to its fallback without a
	// network call.
	ErrConfig = NewKind("CONFIG")
	// ErrTimeout indicates an external call exceeded its deadline.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUpstream indicates an external service answered with a non-2xx
	// status or an unparseable payload.
	ErrUpstream = NewKind("UPSTREAM")
	// ErrPersistence indicates the durable store or cache was unavailable.
	// Evaluation results are still returned from freshly computed data.
	ErrPersistence = NewKind("PERSISTENCE")
	// ErrRateLimited indicates the caller exhausted its request ceiling.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind sentinel, an optional wrapped
// cause and an optional message. It supports errors.Is/As and unwrapping
// against both the kind and the cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and a formatted
// message. Use Wrap to also record a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind, wrapping cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap exposes the wrapped cause to errors.Unwrap/Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel first, then the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches target against the kind sentinel first, then the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic kind attached to this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// KindOf walks err's chain and returns the first semantic kind found, or nil
// when the chain carries none. Handlers use it to map errors to responses.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind()
	}

	return nil
}
