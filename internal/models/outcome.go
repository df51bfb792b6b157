package models

import "errors"

type OutcomeKind string

const (
	OutcomeSuccess           OutcomeKind = "success"
	OutcomeTransportFailure  OutcomeKind = "transport_failure"
	OutcomeValidationFailure OutcomeKind = "validation_failure"
)

// Outcome is the result of one submit attempt: a value on success, or a
// message describing why the attempt failed.
type Outcome[T any] struct {
	Kind    OutcomeKind `json:"kind"`
	Value   *T          `json:"value,omitempty"`
	Message string      `json:"message,omitempty"`
	Err     error       `json:"-"`
}

type RequestOutcome = Outcome[AnalysisResult]

func Succeeded[T any](value T) Outcome[T] {
	return Outcome[T]{Kind: OutcomeSuccess, Value: &value}
}

// Failed classifies err. Anything that is not a ValidationError is treated
// as a transport failure, since it happened while trying to reach the
// service.
func Failed[T any](err error) Outcome[T] {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return Outcome[T]{Kind: OutcomeValidationFailure, Message: vErr.Reason, Err: err}
	}

	return Outcome[T]{Kind: OutcomeTransportFailure, Message: err.Error(), Err: err}
}

func (o Outcome[T]) OK() bool {
	return o.Kind == OutcomeSuccess
}
