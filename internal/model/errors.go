package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// ValidationError reports malformed or out of range input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// Error pairs a human readable message with one of the sentinel kinds above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func NewError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// NotFoundError produces "Equipment not found" style messages.
func NotFoundError(entity string) error {
	return NewError(ErrNotFound, fmt.Sprintf("%s not found", entity))
}

func ConflictError(reason string) error {
	return NewError(ErrConflict, reason)
}
