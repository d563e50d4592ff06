package amortization

import (
	"errors"
	"fmt"
)

// ErrInvalidInput classifies every validation failure raised by this package.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports the offending field, its value and why it was
// rejected. It matches ErrInvalidInput via errors.Is.
type InvalidInputError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Is lets callers test errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field string, value interface{}, reason string) error {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

// IsInvalidInput reports whether err (or anything it wraps) is a validation error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
