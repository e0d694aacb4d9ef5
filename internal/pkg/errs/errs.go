package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired    = errors.New("value is required")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValidationFailed   = errors.New("validation failed")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageConflict    = errors.New("storage conflict")
)

// Violation type tags carried on the wire. The set is closed: the HTTP
// adapter serializes these verbatim and never invents new ones.
const (
	ViolationTooShort       = "TooShort"
	ViolationNotANumber     = "NotANumber"
	ViolationNotPositive    = "NotPositive"
	ViolationMalformedInput = "MalformedInput"
)

// sanitize strips newlines from values interpolated into error messages
// so that a single error always renders as a single log line.
func sanitize(value string) string {
	return strings.ReplaceAll(value, "\n", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// Violation is a single field-level validation failure. Loc is the ordered
// path to the offending field (e.g. ["body", "orderAmount"]), Message is the
// human-readable text and Type is one of the Violation* tags above.
type Violation struct {
	Loc     []string
	Message string
	Type    string
}

// ValidationError carries the full, ordered list of violations accumulated
// for a request. It is never constructed with an empty list.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError creates a ValidationError from an ordered violation list.
func NewValidationError(violations []Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// NewMalformedInputError creates a ValidationError for a request body or
// parameter set that could not be parsed at all.
func NewMalformedInputError(loc []string, message string) *ValidationError {
	return &ValidationError{Violations: []Violation{{
		Loc:     loc,
		Message: message,
		Type:    ViolationMalformedInput,
	}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s at %s", v.Type, strings.Join(v.Loc, ".")))
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, sanitize(strings.Join(parts, "; ")))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// StorageUnavailableError indicates the store could not be reached or the
// call exceeded its deadline. No partial write happened; callers may retry.
type StorageUnavailableError struct {
	Op    string
	Cause error
}

// NewStorageUnavailableError creates a StorageUnavailableError for the given operation.
func NewStorageUnavailableError(op string, cause error) *StorageUnavailableError {
	return &StorageUnavailableError{Op: op, Cause: cause}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStorageUnavailable, sanitize(e.Op), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorageUnavailable, sanitize(e.Op))
}

func (e *StorageUnavailableError) Unwrap() error {
	return ErrStorageUnavailable
}

// StorageConflictError indicates a uniqueness violation at the store layer.
// Given the collision-resistant ID scheme this should be unreachable; when it
// does occur it is an internal error, not a validation failure.
type StorageConflictError struct {
	ParamName string
	ID        string
	Cause     error
}

// NewStorageConflictError creates a StorageConflictError for the given key.
func NewStorageConflictError(paramName, id string, cause error) *StorageConflictError {
	return &StorageConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *StorageConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrStorageConflict, sanitize(e.ParamName), sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStorageConflict, sanitize(e.ID))
}

func (e *StorageConflictError) Unwrap() error {
	return ErrStorageConflict
}
