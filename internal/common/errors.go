// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Data errors.
	ErrMalformedRecord = errors.New("malformed record")
	ErrNoRecords       = errors.New("no records loaded")
	ErrMissingColumn   = errors.New("missing required column")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// DataShapeError describes a record that lacks a field the dashboard needs.
// Such records are excluded from every aggregate; they never abort a load.
type DataShapeError struct {
	Field  string
	Reason string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrMalformedRecord, e.Field, e.Reason)
}

func (e *DataShapeError) Unwrap() error {
	return ErrMalformedRecord
}

// NewDataShapeError creates a DataShapeError for the given field.
func NewDataShapeError(field, reason string) error {
	return &DataShapeError{Field: field, Reason: reason}
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
