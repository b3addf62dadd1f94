// Package domain holds the multiple-choice record, its answer rules and the
// errors stores and the service report. Store adapters translate driver
// errors into these; their messages are written for clients.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrConflict indicates a create collided with an existing record.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates an input value broke a rule.
	ErrValidation = errors.New("validation failed")

	// ErrUnavailable indicates the record store could not be reached.
	ErrUnavailable = errors.New("unavailable")
)

// ConflictError reports a multiple choice that already exists.
type ConflictError struct {
	// ID is the colliding record id, when the store knows it.
	ID string

	// Constraint names the violated database constraint, if any.
	Constraint string
}

func (e *ConflictError) Error() string {
	var b strings.Builder

	b.WriteString("multiple choice")

	if e.ID != "" {
		fmt.Fprintf(&b, " %q", e.ID)
	}

	b.WriteString(" already exists")

	if e.Constraint != "" {
		fmt.Fprintf(&b, " (%s)", e.Constraint)
	}

	return b.String()
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError creates a ConflictError. Either argument may be empty.
func NewConflictError(id, constraint string) error {
	return &ConflictError{ID: id, Constraint: constraint}
}

// ValidationError names the input field a rule rejected. Field uses the
// GraphQL spelling, e.g. correctAnswer.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a ValidationError that keeps the
// rejected value for logs.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError reports a store that could not be reached. Store and
// Reason make up the message; Cause keeps the driver error for errors.As.
type UnavailableError struct {
	Store  string
	Reason string
	Cause  error
}

func (e *UnavailableError) Error() string {
	if e.Reason == "" {
		return e.Store + " unavailable"
	}

	return fmt.Sprintf("%s unavailable: %s", e.Store, e.Reason)
}

// Is matches ErrUnavailable while Unwrap exposes the cause.
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

func (e *UnavailableError) Unwrap() error { return e.Cause }

// NewUnavailableError creates an UnavailableError without a cause.
func NewUnavailableError(store, reason string) error {
	return &UnavailableError{Store: store, Reason: reason}
}

// IsConflict reports whether err is a conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnavailable reports whether err means the store could not be reached.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
