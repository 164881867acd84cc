// ============================================================================
// bundlerelay - Block Engine Relay Client SDK
// ============================================================================
//
// Package:     sdkerror
// Description: Structured error type with codes and cause wrapping
// Author:      Mike Stoffels with Claude
// Created:     2026-06-14
// License:     MIT
// ============================================================================

package sdkerror

import (
	"errors"
	"fmt"
)

// Error is a structured error carrying a taxonomy code and an optional cause.
// It integrates with errors.Is/As/Unwrap.
type Error struct {
	code    Code
	message string
	cause   error
}

// New creates an Error with the given code and message
func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Newf creates an Error with the given code and a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error with the given code wrapping a cause
func Wrap(err error, code Code, message string) *Error {
	return &Error{code: code, message: message, cause: err}
}

// Wrapf creates an Error with the given code, formatted message, and cause
func Wrapf(err error, code Code, format string, args ...interface{}) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...), cause: err}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Code returns the error's taxonomy code
func (e *Error) Code() Code {
	return e.code
}

// Is reports whether target is an *Error with the same code. This lets
// callers match by category: errors.Is(err, sdkerror.New(CodeCall, ""))
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.code == t.code
}

// CodeOf extracts the taxonomy code from an error chain. Errors produced
// outside the SDK report CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeUnknown
}

// HasCode reports whether any error in the chain carries the given code
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
