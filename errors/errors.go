package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseCreate Phase = "create" // browser creation
	PhaseUpdate Phase = "update" // configuration update
	PhaseStore  Phase = "store"  // settings persistence
	PhaseHost   Phase = "host"   // host composition and teardown
)

// Kind categorizes the error
type Kind string

const (
	KindRejected    Kind = "rejected"     // task queue refused submission
	KindNotReady    Kind = "not_ready"    // engine or handle not available
	KindInvalidData Kind = "invalid_data" // malformed settings or payload
	KindCapability  Kind = "capability"   // engine build lacks a feature
	KindIO          Kind = "io"           // storage I/O failure
)

// Error is the structured error type used throughout the library
type Error struct {
	Phase  Phase
	Kind   Kind
	Detail string
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// New creates an error with a formatted detail message
func New(phase Phase, kind Kind, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Phase: phase, Kind: kind, Detail: detail}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{Phase: phase, Kind: kind, Detail: detail, Cause: cause}
}

// NotReady creates a not-ready error for a missing engine or handle
func NotReady(phase Phase, what string) *Error {
	return &Error{Phase: phase, Kind: KindNotReady, Detail: fmt.Sprintf("%s not available", what)}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{Phase: phase, Kind: KindInvalidData, Detail: detail}
}

// Store creates a storage I/O error
func Store(detail string, cause error) *Error {
	return &Error{Phase: PhaseStore, Kind: KindIO, Detail: detail, Cause: cause}
}
