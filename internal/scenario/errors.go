package scenario

import (
	"errors"
	"fmt"
)

// Error kinds returned by Resolve. Use errors.Is to test for them.
var (
	ErrMissingRequiredInput = errors.New("missing required input")
	ErrInvalidInputFormat   = errors.New("invalid input format")
	ErrInvalidScenario      = errors.New("invalid scenario")
)

// InputError describes a resolution failure for a single field.
type InputError struct {
	Kind   error
	Field  Field
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrMissingRequiredInput):
		return fmt.Sprintf("%s: no %s specified", e.Kind, e.Field)
	case e.Value != "":
		return fmt.Sprintf("%s: %s %q %s", e.Kind, e.Field, e.Value, e.Reason)
	default:
		return fmt.Sprintf("%s: %s %s", e.Kind, e.Field, e.Reason)
	}
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

func missingInput(field Field) error {
	return &InputError{Kind: ErrMissingRequiredInput, Field: field}
}

func invalidFormat(field Field, value, reason string) error {
	return &InputError{Kind: ErrInvalidInputFormat, Field: field, Value: value, Reason: reason}
}

func invalidScenario(field Field, value, reason string) error {
	return &InputError{Kind: ErrInvalidScenario, Field: field, Value: value, Reason: reason}
}
