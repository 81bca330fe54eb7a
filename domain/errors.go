package domain

import (
	"errors"
	"fmt"
)

// ErrorKind names the pipeline stage an error originated from.
type ErrorKind string

const (
	ValidationError    ErrorKind = "validation"
	ConfigurationError ErrorKind = "configuration"
	ExtractionError    ErrorKind = "extraction"
	GenerationError    ErrorKind = "generation"
	SynthesisError     ErrorKind = "synthesis"
	PersistenceError   ErrorKind = "persistence"
)

// ErrRecordNotFound is returned by the result repository when no row exists
// for the requested id.
var ErrRecordNotFound = errors.New("article record not found")

// StageError wraps an external call's failure with the stage it belongs to.
type StageError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *StageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func NewStageError(kind ErrorKind, message string, err error) *StageError {
	return &StageError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// KindOf reports the stage kind of err, or an empty kind when err is not a
// StageError.
func KindOf(err error) ErrorKind {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Kind
	}
	return ""
}
