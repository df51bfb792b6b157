package models

import (
	"errors"
	"fmt"
)

// Action names what the user was trying to do. It is used to build the
// generic message shown when a call to the analysis service fails.
type Action string

const (
	ActionAnalyze  Action = "analyze resume"
	ActionUpload   Action = "upload resume"
	ActionLinkedIn Action = "optimize LinkedIn profile"
)

func (a Action) FailureMessage() string {
	return fmt.Sprintf("Failed to %s", a)
}

// ValidationError is a user-correctable input problem found before any
// network call was made.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// TransportError is a failure after a call to the analysis service was
// attempted. Error() only ever returns the generic action message; the
// underlying cause is kept for logs.
type TransportError struct {
	Action     Action
	StatusCode int
	Cause      error
}

func (e *TransportError) Error() string {
	return e.Action.FailureMessage()
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// Detail describes the cause for logging.
func (e *TransportError) Detail() string {
	switch {
	case e.StatusCode != 0 && e.Cause != nil:
		return fmt.Sprintf("status %d: %v", e.StatusCode, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("status %d", e.StatusCode)
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return "unknown transport failure"
	}
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}
