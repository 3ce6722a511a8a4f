// Package apperrors defines the error taxonomy surfaced at the API boundary:
// validation failures map to 400, missing entities to 404, everything else is
// treated as a persistence failure and maps to 500.
package apperrors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NewNotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
