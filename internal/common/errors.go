// Package common defines shared constants and sentinel errors used across
// service, repository and transport layers. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound   = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors. ValidationError values match ErrValidation.
	ErrValidation = errors.New("validation error")

	// Press kit errors.
	ErrSlugConflict = errors.New("slug conflict")

	// Account token lifecycle errors.
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenExpired      = errors.New("token expired")
	ErrorAlreadyVerified = errors.New("account already verified")

	// Auth errors (invalid or malformed access token).
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError reports malformed caller input for a single field.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError is a shorthand for &ValidationError{Field: field, Reason: reason}.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Reason)
	}
	return fmt.Sprintf("validation error: %s %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateKeyError reports a unique constraint violation detected by the
// storage layer. Field names the logical column ("email", "slug").
type DuplicateKeyError struct {
	Field string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key on %s", e.Field)
}

// Is lets errors.Is(err, ErrDuplicateKey) match any DuplicateKeyError.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// IsDuplicateOn reports whether err is a DuplicateKeyError for field.
func IsDuplicateOn(err error, field string) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup) && dup.Field == field
}
