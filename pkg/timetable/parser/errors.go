package parser

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates the input was blank or whitespace only.
var ErrEmptyInput = errors.New("input is empty")

// ErrMalformedJSON indicates the input could not be parsed as JSON.
var ErrMalformedJSON = errors.New("malformed JSON, check that the whole document was copied")

// MalformedInputError represents valid JSON that lacks the required top-level shape.
type MalformedInputError struct {
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("unexpected JSON structure: %s", e.Reason)
}

// NewMalformedInputError creates a new MalformedInputError.
func NewMalformedInputError(field, reason string) *MalformedInputError {
	return &MalformedInputError{
		Field:  field,
		Reason: reason,
	}
}

// jsonError keeps the decoder diagnostic as the cause while presenting the generic message.
type jsonError struct {
	cause error
}

func (e *jsonError) Error() string {
	return ErrMalformedJSON.Error()
}

func (e *jsonError) Is(target error) bool {
	return target == ErrMalformedJSON
}

func (e *jsonError) Unwrap() error {
	return e.cause
}
