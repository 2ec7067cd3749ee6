// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for Roundhouse.

It provides a rich error type shared by every constructor and service in the
catalog model, so callers can tell validation failures, parse failures and
lookup failures apart without string matching.

Architecture:

  - AppError: A struct containing a machine-readable code and a descriptive message.
  - Details: Per-field failures collected by the validate package.
  - Classification: [HasCode] inspects the whole error chain.

Every failure produced by the domain packages is an [*AppError]. None of them panic.
*/
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// # Error Codes

const (
	// CodeValidation marks a construction invariant violation.
	CodeValidation = "VALIDATION_ERROR"
	// CodeBlank marks blank text where a value is required.
	CodeBlank = "BLANK_VALUE"
	// CodeInvalidValue marks text that does not name a known value.
	CodeInvalidValue = "INVALID_VALUE"
	// CodeNotFound marks a lookup miss.
	CodeNotFound = "NOT_FOUND"
	// CodeConflict marks a duplicate business key.
	CodeConflict = "CONFLICT"
)

// AppError is the canonical error type for the catalog model.
//
// It carries a machine-readable code, a descriptive message, and an optional
// slice of field-level validation errors.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "VALIDATION_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description of the failure.
	Message string `json:"error"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR values.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the name of the field that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
//
// Field details are appended for VALIDATION_ERROR only; single-field errors
// already name their field in the message.
func (e *AppError) Error() string {
	if e.Code != CodeValidation || len(e.Details) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// HasField reports whether a detail was recorded for field.
func (e *AppError) HasField(field string) bool {
	for _, d := range e.Details {
		if d.Field == field {
			return true
		}
	}
	return false
}

// # Constructors

// ValidationError creates a VALIDATION_ERROR with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// Blank creates a BLANK_VALUE error for a required text field.
//
// Example:
//
//	apperr.Blank("control") // "control value cannot be blank"
func Blank(field string) *AppError {
	return &AppError{
		Code:    CodeBlank,
		Message: field + " value cannot be blank",
		Details: []FieldError{{Field: field, Message: "This field is required"}},
	}
}

// InvalidValue creates an INVALID_VALUE error naming the allowed values.
func InvalidValue(field, value string, allowed ...string) *AppError {
	msg := fmt.Sprintf("invalid value %q for %s", value, field)
	if len(allowed) > 0 {
		msg += " [allowed values are " + strings.Join(allowed, ", ") + "]"
	}
	return &AppError{
		Code:    CodeInvalidValue,
		Message: msg,
		Details: []FieldError{{Field: field, Message: "Unrecognized value"}},
	}
}

// NotFound creates a NOT_FOUND error for a named resource.
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

// Conflict creates a CONFLICT error for duplicate business keys.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: msg,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err's chain contains an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
