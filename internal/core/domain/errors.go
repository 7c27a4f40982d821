package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// NotFound reports that no record of kind is addressed by id.
func NotFound(kind Kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// Conflict reports a duplicate value on a unique field.
func Conflict(kind Kind, field, value string) error {
	return fmt.Errorf("%s with %s %q already exists: %w", kind, field, value, ErrConflict)
}

// Invalid reports a field that failed validation.
func Invalid(field, reason string) error {
	return fmt.Errorf("%s %s: %w", field, reason, ErrValidation)
}
