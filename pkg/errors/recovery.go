// Package errors provides comprehensive error handling utilities for gbtree.
//
// This file converts panics into structured errors. A malformed model
// document must never panic through the public decode API; the decode entry
// points guard themselves with Recover so that out-of-range indices or
// unexpected document shapes surface as ordinary errors.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError wraps a recovered panic value together with the stack trace
// captured at recovery time and the name of the guarded operation.
type PanicError struct {
	// PanicValue is the original value passed to panic()
	PanicValue interface{}

	// StackTrace contains the stack trace at the time of panic
	StackTrace string

	// Operation identifies where the panic was recovered
	Operation string
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap returns nil as PanicError doesn't wrap another error by default.
func (e *PanicError) Unwrap() error {
	return nil
}

// String provides detailed information including stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError builds a PanicError for the given operation, capturing the
// current stack.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts an in-flight panic into an error. Call it with defer and
// a pointer to the function's named error result:
//
//	func Decode(doc interface{}) (m *Model, err error) {
//	    defer Recover(&err, "Decode")
//	    // ... decoding ...
//	    return m, nil
//	}
//
// When the function already holds an error, the panic message wraps it so
// neither failure is lost; errors.Is still reaches the original error.
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}

	if *err != nil {
		*err = fmt.Errorf("panic in %s: %v (original error: %w)", operation, r, *err)
		return
	}
	*err = NewPanicError(operation, r)
}

// SafeExecute runs fn and converts any panic into a PanicError. Errors
// returned by fn pass through unchanged.
//
//	err := SafeExecute("model load", func() error {
//	    return loadModel(path)
//	})
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
