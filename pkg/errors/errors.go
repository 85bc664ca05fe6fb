// Package errors provides structured error handling for the hooks library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindUnavailable indicates a missing platform capability.
	KindUnavailable
	// KindOperation indicates a wrapped operation failed.
	KindOperation
	// KindPlatform indicates a platform channel or bridge error.
	KindPlatform
	// KindParsing indicates a channel result parsing failure.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "capability-unavailable"
	case KindOperation:
		return "operation-failed"
	case KindPlatform:
		return "platform"
	case KindParsing:
		return "parsing"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// OpError represents a structured error raised by a hook or platform call.
type OpError struct {
	// Op is the operation that failed (e.g., "clipboard.Copy").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *OpError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("[%s]: %v", e.Kind, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// valueError wraps an arbitrary non-error failure value, preserving its
// string form as the message.
type valueError struct {
	value any
}

func (e *valueError) Error() string {
	return fmt.Sprint(e.value)
}

// Normalize wraps an arbitrary failure value into a uniform *OpError of the
// given kind. Error values are wrapped as-is; any other value (for example a
// recovered panic payload) is converted to an error whose message is the
// value's string form. Returns nil when v is nil.
func Normalize(op string, kind ErrorKind, v any) *OpError {
	if v == nil {
		return nil
	}
	err, ok := v.(error)
	if !ok {
		err = &valueError{value: v}
	}
	return &OpError{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Timestamp: time.Now(),
	}
}
