package models

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest = errors.New("bad request")
	// ErrEmptyInput marks degenerate input. Flows report it as a warning, not an error.
	ErrEmptyInput = errors.New("empty input")
	ErrAnalysis   = errors.New("analysis failed")
)

type EmptyInputError struct {
	Reason string
}

func (e *EmptyInputError) Error() string {
	return e.Reason
}

func (e *EmptyInputError) Unwrap() error {
	return ErrEmptyInput
}

func NewEmptyInputError(reason string) error {
	return &EmptyInputError{Reason: reason}
}

// AnalysisError is a segment-local failure of the linguistic pipeline.
type AnalysisError struct {
	Segment string
	Err     error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("error processing text segment %q: %v", e.Segment, e.Err)
}

func (e *AnalysisError) Unwrap() []error {
	return []error{ErrAnalysis, e.Err}
}

func NewAnalysisError(segment string, err error) error {
	return &AnalysisError{Segment: segment, Err: err}
}

// BadRequestError carries a message safe to show to the caller.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

func (e *BadRequestError) Unwrap() error {
	return ErrBadRequest
}

func NewBadRequestError(format string, args ...any) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}
