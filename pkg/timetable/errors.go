package timetable

import (
	"errors"
	"fmt"

	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

// ErrEmptyInput indicates the input was blank or whitespace only.
var ErrEmptyInput = parser.ErrEmptyInput

// ErrMalformedJSON indicates the input could not be parsed as JSON.
var ErrMalformedJSON = parser.ErrMalformedJSON

// ErrNoWeeks indicates the input held no meeting with a valid week, so there is
// nothing to lay out.
var ErrNoWeeks = errors.New("no valid weeks in input")

// ErrUnknownFormat indicates Options.Format is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// MalformedInputError represents valid JSON without the top-level "data" array.
type MalformedInputError = parser.MalformedInputError

// StageError represents a failure after the input was accepted.
type StageError struct {
	Stage string // "export"
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Err:   err,
	}
}
