// Package forms holds the editable state of the client screens and the
// local validation applied before anything is sent to the backend.
package forms

import (
	"errors"
	"strings"
)

var (
	ErrIncompleteForm = errors.New("form is incomplete")
	ErrPastDate       = errors.New("date is in the past")
	ErrUnknownOption  = errors.New("option is not available")
	ErrReadOnlyField  = errors.New("field is read-only")
	ErrUnknownField   = errors.New("unknown field")
)

// MissingFieldsError lists the required fields that are empty.
// It matches ErrIncompleteForm.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrIncompleteForm.Error() + ": missing " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrIncompleteForm
}
