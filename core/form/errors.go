package form

import (
	"errors"
	"fmt"
	"maps"
)

var (
	ErrValidationFailed = errors.New("form: validation failed")
	ErrSubmitFailed     = errors.New("form: submit failed")
	ErrSubmitInProgress = errors.New("form: submit already in progress")
	ErrSubmitPanic      = errors.New("form: submit handler panicked")
	ErrInvalidSchema    = errors.New("form: invalid schema")
)

// SubmitError is returned by HandleSubmit when the values do not pass validation.
// It matches ErrValidationFailed with errors.Is.
type SubmitError struct {
	FirstInvalid string
	Errors       map[string]string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("%s: %d invalid field(s), first %q", ErrValidationFailed, len(e.Errors), e.FirstInvalid)
}

func (e *SubmitError) Unwrap() error {
	return ErrValidationFailed
}

func newSubmitError(first string, errs map[string]string) *SubmitError {
	return &SubmitError{FirstInvalid: first, Errors: maps.Clone(errs)}
}
