package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the roots of the application error taxonomy.
// Concrete error types wrap exactly one of these, so callers can classify
// failures with errors.Is without depending on the concrete type.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsRequired        = errors.New("value is required")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrUsernameExhausted      = errors.New("username space is exhausted")
)

// sanitize flattens multi-line input so error messages stay single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ObjectNotFoundError indicates that an entity id did not resolve to a row.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value was missing or blank.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateTransitionError indicates that a status guard rejected the
// requested transition. From holds the current state, To the requested one.
type InvalidStateTransitionError struct {
	ParamName string
	From      string
	To        string
	Cause     error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError describing
// the rejected transition.
func NewInvalidStateTransitionError(paramName, from, to string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{ParamName: paramName, From: from, To: to}
}

// NewInvalidStateTransitionErrorWithCause creates an InvalidStateTransitionError
// wrapping an underlying cause.
func NewInvalidStateTransitionErrorWithCause(paramName, from, to string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{ParamName: paramName, From: from, To: to, Cause: cause}
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s cannot go from %s to %s (cause: %s)",
			ErrInvalidStateTransition, e.ParamName, e.From, e.To, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s cannot go from %s to %s", ErrInvalidStateTransition, e.ParamName, e.From, e.To)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// UsernameExhaustedError indicates that every candidate suffix for a username
// stem was already taken.
type UsernameExhaustedError struct {
	Stem  string
	Cause error
}

// NewUsernameExhaustedError creates a UsernameExhaustedError for the given stem.
func NewUsernameExhaustedError(stem string) *UsernameExhaustedError {
	return &UsernameExhaustedError{Stem: stem}
}

// NewUsernameExhaustedErrorWithCause creates a UsernameExhaustedError wrapping
// an underlying cause.
func NewUsernameExhaustedErrorWithCause(stem string, cause error) *UsernameExhaustedError {
	return &UsernameExhaustedError{Stem: stem, Cause: cause}
}

func (e *UsernameExhaustedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUsernameExhausted, sanitize(e.Stem), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrUsernameExhausted, sanitize(e.Stem))
}

func (e *UsernameExhaustedError) Unwrap() error {
	return ErrUsernameExhausted
}
