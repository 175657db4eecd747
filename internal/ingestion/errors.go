package ingestion

import (
	"errors"
	"fmt"
)

// ErrTooShort is wrapped by ValidationError when cleaned text is under MinLength.
var ErrTooShort = errors.New("job description too short after cleaning")

// ValidationError is returned when text fails the minimum-length gate.
type ValidationError struct {
	Field  string
	Length int
	Min    int
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %v (%d < %d characters)", e.Field, ErrTooShort, e.Length, e.Min)
	}
	return fmt.Sprintf("validation error: %v (%d < %d characters)", ErrTooShort, e.Length, e.Min)
}

func (e *ValidationError) Unwrap() error {
	return ErrTooShort
}
